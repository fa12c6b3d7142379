package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/dvloznov/dompet/internal/domain"
	"github.com/dvloznov/dompet/internal/logger"
)

// Extractor turns free-form text into a ParsedTransaction. It holds no
// per-call state and is safe for concurrent use.
type Extractor struct {
	model        DraftModel
	today        *civil.Date
	now          func() time.Time
	location     *time.Location
	modelTimeout time.Duration
	titleMaxLen  int
	pipeline     *Pipeline
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// WithToday pins the anchor date regardless of clock and location.
func WithToday(d civil.Date) Option {
	return func(e *Extractor) { e.today = &d }
}

// WithLocation sets the time zone "today" is computed in.
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) { e.location = loc }
}

// WithModelTimeout bounds each model call.
func WithModelTimeout(d time.Duration) Option {
	return func(e *Extractor) { e.modelTimeout = d }
}

// WithTitleMaxLen caps titles at n runes.
func WithTitleMaxLen(n int) Option {
	return func(e *Extractor) { e.titleMaxLen = n }
}

// NewExtractor creates an Extractor. model is optional; pass nil to run on
// rules alone.
func NewExtractor(model DraftModel, opts ...Option) *Extractor {
	e := &Extractor{
		model:        model,
		now:          time.Now,
		location:     time.UTC,
		modelTimeout: DefaultModelTimeout,
		titleMaxLen:  DefaultTitleMaxLen,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.titleMaxLen <= 0 {
		e.titleMaxLen = DefaultTitleMaxLen
	}
	if e.modelTimeout <= 0 {
		e.modelTimeout = DefaultModelTimeout
	}
	e.pipeline = NewExtractionPipeline(e.model, e.modelTimeout, e.titleMaxLen)
	return e
}

// Today returns the anchor date used for relative expressions.
func (e *Extractor) Today() civil.Date {
	if e.today != nil {
		return *e.today
	}
	loc := e.location
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(e.now().In(loc))
}

// Parse extracts one transaction from text. The error, if any, is a
// *domain.ParseError, or ctx.Err() when ctx ended before the result was
// assembled.
func (e *Extractor) Parse(ctx context.Context, text string, overrides domain.Overrides) (tx *domain.ParsedTransaction, err error) {
	log := logger.WithFields(logger.FromContext(ctx), map[string]interface{}{
		"parse_id": uuid.NewString(),
	})
	ctx = logger.WithContext(ctx, log)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Parse panicked")
			tx, err = nil, domain.NewInternalParseFailure(fmt.Errorf("Parse: panic: %v", r))
		}
	}()

	state := &State{
		Text:      text,
		Today:     e.Today(),
		Overrides: overrides,
	}
	if err := e.pipeline.Execute(ctx, state); err != nil {
		var pe *domain.ParseError
		if errors.As(err, &pe) {
			log.Info().Str("kind", string(pe.Kind)).Msg("Parse rejected")
			return nil, pe
		}
		return nil, err
	}

	log.Debug().
		Str("title", state.Result.Title).
		Int64("amount", state.Result.Amount).
		Str("date", state.Result.Date.String()).
		Str("category", string(state.Result.Category)).
		Str("type", string(state.Result.Type)).
		Msg("Parsed transaction")
	return state.Result, nil
}
