// Package source opens batch input: a local file, stdin ("-") or a Cloud
// Storage object (gs://bucket/path).
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Options configure the Cloud Storage client.
type Options struct {
	Endpoint  string // custom endpoint, e.g. a local emulator
	Anonymous bool   // skip credentials
}

// Line is one utterance read from the input.
type Line struct {
	Number int
	Text   string
}

// Open returns a reader for uri. The caller must close it.
func Open(ctx context.Context, uri string, opts Options) (io.ReadCloser, error) {
	switch {
	case uri == "-":
		return io.NopCloser(os.Stdin), nil
	case strings.HasPrefix(uri, "gs://"):
		return openGCS(ctx, uri, opts)
	default:
		f, err := os.Open(uri)
		if err != nil {
			return nil, fmt.Errorf("Open: %w", err)
		}
		return f, nil
	}
}

// gcsReader closes the object reader and the client that owns it.
type gcsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gcsReader) Close() error {
	rerr := r.Reader.Close()
	cerr := r.client.Close()
	if rerr != nil {
		return rerr
	}
	return cerr
}

func openGCS(ctx context.Context, uri string, opts Options) (io.ReadCloser, error) {
	bucketName, objectPath, err := ParseGCSURI(uri)
	if err != nil {
		return nil, err
	}

	var clientOpts []option.ClientOption
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}
	if opts.Anonymous {
		clientOpts = append(clientOpts, option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("openGCS: creating storage client: %w", err)
	}

	rc, err := client.Bucket(bucketName).Object(objectPath).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("openGCS: reading object %s/%s: %w", bucketName, objectPath, err)
	}
	return &gcsReader{Reader: rc, client: client}, nil
}

// ParseGCSURI splits gs://bucket/path/to/object into bucket and object.
func ParseGCSURI(uri string) (bucket, object string, err error) {
	if !strings.HasPrefix(uri, "gs://") {
		return "", "", fmt.Errorf("invalid GCS URI: %s", uri)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, "gs://"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GCS URI (no object path): %s", uri)
	}
	return parts[0], parts[1], nil
}

// Name returns the file name part of uri for logging,
// e.g. "gs://bucket/folder/notes.txt" -> "notes.txt".
func Name(uri string) string {
	if uri == "-" {
		return "stdin"
	}
	if _, object, err := ParseGCSURI(uri); err == nil {
		return path.Base(object)
	}
	return path.Base(uri)
}

// ReadLines returns the non-blank lines of r. Lines starting with '#' are
// comments.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadLines: %w", err)
	}
	return lines, nil
}
