package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGCSURI(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantObject string
		wantErr    bool
	}{
		{name: "valid", uri: "gs://notes/2024/06/kas.txt", wantBucket: "notes", wantObject: "2024/06/kas.txt"},
		{name: "no object", uri: "gs://notes", wantErr: true},
		{name: "empty object", uri: "gs://notes/", wantErr: true},
		{name: "wrong scheme", uri: "s3://notes/kas.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, object, err := ParseGCSURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantObject, object)
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "kas.txt", Name("gs://notes/2024/kas.txt"))
	assert.Equal(t, "kas.txt", Name("/tmp/kas.txt"))
	assert.Equal(t, "stdin", Name("-"))
}

func TestReadLines(t *testing.T) {
	input := "beli kopi 15rb kemarin\n\n# catatan minggu ini\n  terima gaji 5jt hari ini  \n"

	lines, err := ReadLines(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{Number: 1, Text: "beli kopi 15rb kemarin"},
		{Number: 4, Text: "terima gaji 5jt hari ini"},
	}, lines)
}

func TestOpen_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kas.txt")
	require.NoError(t, os.WriteFile(path, []byte("bayar listrik 150000\n"), 0o644))

	rc, err := Open(context.Background(), path, Options{})
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "bayar listrik 150000\n", string(data))
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_InvalidGCSURI(t *testing.T) {
	_, err := Open(context.Background(), "gs://bucket-only", Options{Anonymous: true})
	assert.Error(t, err)
}
