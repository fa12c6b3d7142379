package pipeline

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/dvloznov/dompet/internal/domain"
)

//go:generate mockgen -destination=mocks/mock_model.go -package=mocks -source=interfaces.go DraftModel

// DraftModel is the optional probabilistic collaborator. It returns its best
// structured guess for text, resolving relative dates against today.
// Errors should be *domain.ParseError of kind ModelUnavailable or
// ModelOutputInvalid; the extractor absorbs them either way.
type DraftModel interface {
	TryExtract(ctx context.Context, text string, today civil.Date) (*domain.Draft, error)
}
