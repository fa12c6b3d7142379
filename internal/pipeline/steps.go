package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/sync/errgroup"

	"github.com/dvloznov/dompet/internal/domain"
	"github.com/dvloznov/dompet/internal/logger"
	"github.com/dvloznov/dompet/internal/rules"
)

// Step is a single stage of the extraction pipeline.
type Step interface {
	Execute(ctx context.Context, state *State) error
}

// State holds everything the steps learn about one utterance.
type State struct {
	Text      string
	Today     civil.Date
	Overrides domain.Overrides

	Amount     int64
	AmountRule string

	Date     civil.Date
	DateRule string
	HasDate  bool

	Category    domain.Category
	HasCategory bool

	Type    domain.TransactionType
	HasType bool

	Draft *domain.Draft

	Result *domain.ParsedTransaction
}

// Step 1: ValidateInputStep rejects blank input.
type ValidateInputStep struct{}

func (s *ValidateInputStep) Execute(ctx context.Context, state *State) error {
	if strings.TrimSpace(state.Text) == "" {
		return domain.ErrEmptyInput
	}
	return nil
}

// Step 2: ContentGateStep rejects text that only talks about dates.
type ContentGateStep struct{}

func (s *ContentGateStep) Execute(ctx context.Context, state *State) error {
	if !rules.HasTransactionContent(state.Text) {
		return domain.ErrNoTransactionContent
	}
	return nil
}

// Step 3: ExtractAmountStep finds the amount. Amount is the one field that has
// no default.
type ExtractAmountStep struct{}

func (s *ExtractAmountStep) Execute(ctx context.Context, state *State) error {
	amount, rule, ok := rules.MatchAmount(state.Text)
	if !ok {
		return domain.ErrAmountMissing
	}
	state.Amount, state.AmountRule = amount, rule
	log := logger.FromContext(ctx)
	log.Debug().Int64("amount", amount).Str("rule", rule).Msg("Detected amount")
	return nil
}

// Step 4: ExtractFieldsStep resolves date, category and type while the model,
// if any, drafts its guess. Model failures are logged and dropped.
type ExtractFieldsStep struct {
	Model   DraftModel
	Timeout time.Duration
}

func (s *ExtractFieldsStep) Execute(ctx context.Context, state *State) error {
	log := logger.FromContext(ctx)

	var (
		g        errgroup.Group
		date     civil.Date
		dateRule string
		hasDate  bool
		category domain.Category
		hasCat   bool
		txType   domain.TransactionType
		hasType  bool
		draft    *domain.Draft
	)

	g.Go(guard("MatchDate", func() {
		date, dateRule, hasDate = rules.MatchDate(state.Text, state.Today)
	}))
	g.Go(guard("Classify", func() {
		category, hasCat = rules.ClassifyCategory(state.Text)
		txType, hasType = rules.ClassifyType(state.Text)
	}))
	if s.Model != nil {
		g.Go(func() error {
			d, err := s.draft(ctx, state)
			if err != nil {
				log.Warn().Err(err).Msg("Model draft unavailable, using rules only")
				return nil
			}
			draft = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	state.Date, state.DateRule, state.HasDate = date, dateRule, hasDate
	state.Category, state.HasCategory = category, hasCat
	state.Type, state.HasType = txType, hasType
	state.Draft = draft

	log.Debug().
		Bool("has_date", hasDate).Str("date_rule", dateRule).
		Str("category", string(category)).Bool("has_category", hasCat).
		Str("type", string(txType)).Bool("has_type", hasType).
		Bool("has_draft", !draft.IsEmpty()).
		Msg("Extracted fields")
	return nil
}

// guard runs fn for an errgroup and turns a panic into InternalParseFailure,
// since Parse's recover does not reach other goroutines.
func guard(name string, fn func()) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = domain.NewInternalParseFailure(fmt.Errorf("%s: panic: %v", name, r))
			}
		}()
		fn()
		return nil
	}
}

// draft calls the model under the step timeout. A model that ignores its
// context is abandoned once the timeout fires.
func (s *ExtractFieldsStep) draft(ctx context.Context, state *State) (*domain.Draft, error) {
	mctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	type reply struct {
		draft *domain.Draft
		err   error
	}
	done := make(chan reply, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- reply{err: domain.NewModelUnavailableError(fmt.Errorf("draft: model panic: %v", r))}
			}
		}()
		d, err := s.Model.TryExtract(mctx, state.Text, state.Today)
		done <- reply{draft: d, err: err}
	}()

	select {
	case r := <-done:
		return r.draft, r.err
	case <-mctx.Done():
		return nil, domain.NewModelUnavailableError(fmt.Errorf("draft: %w", mctx.Err()))
	}
}

// Step 5: MergeStep starts from the model draft and lets every confident rule
// result replace it, then fills the remaining gaps with defaults.
type MergeStep struct {
	TitleMaxLen int
}

func (s *MergeStep) Execute(ctx context.Context, state *State) error {
	log := logger.FromContext(ctx)
	draft := state.Draft
	if draft == nil {
		draft = &domain.Draft{}
	}

	tx := &domain.ParsedTransaction{Amount: state.Amount}
	if draft.Amount != nil && *draft.Amount != state.Amount {
		log.Info().Int64("model", *draft.Amount).Int64("rules", state.Amount).Msg("Overriding model amount")
	}

	switch {
	case state.HasDate:
		tx.Date = state.Date
		if draft.Date != nil && *draft.Date != state.Date.String() {
			log.Info().Str("model", *draft.Date).Str("rules", state.Date.String()).Msg("Overriding model date")
		}
	case draft.Date != nil:
		// Validated by FinalizeStep.
		tx.Date, _ = civil.ParseDate(*draft.Date)
	default:
		tx.Date = state.Today
	}

	categoryName := string(domain.CategoryOther)
	switch {
	case state.HasCategory:
		categoryName = string(state.Category)
		if draft.Category != nil && !strings.EqualFold(*draft.Category, categoryName) {
			log.Info().Str("model", *draft.Category).Str("rules", categoryName).Msg("Overriding model category")
		}
	case draft.Category != nil:
		categoryName = *draft.Category
	}
	tx.Category = domain.CategoryOther
	if c, ok := domain.ParseCategory(categoryName); ok {
		tx.Category = c
	}

	tx.Type = state.Type
	if !state.HasType && draft.Type != nil {
		if t, ok := domain.ParseTransactionType(*draft.Type); ok {
			tx.Type = t
		}
	}
	if domain.IsIncomeCategory(categoryName) {
		tx.Type = domain.TypeIncome
	}

	tx.Title = s.title(state.Text, draft)
	state.Result = tx
	return nil
}

func (s *MergeStep) title(text string, draft *domain.Draft) string {
	if draft.Title != nil {
		return rules.TruncateTitle(*draft.Title, s.TitleMaxLen)
	}
	if t, ok := rules.DeriveTitle(text); ok {
		return rules.TruncateTitle(t, s.TitleMaxLen)
	}
	return rules.TruncateTitle(text, s.TitleMaxLen)
}

// Step 6: ApplyOverridesStep applies caller-supplied values.
type ApplyOverridesStep struct{}

func (s *ApplyOverridesStep) Execute(ctx context.Context, state *State) error {
	state.Overrides.Apply(state.Result)
	return nil
}

// Step 7: FinalizeStep enforces the record invariants.
type FinalizeStep struct{}

func (s *FinalizeStep) Execute(ctx context.Context, state *State) error {
	tx := state.Result
	if !domain.IsRecordableDate(tx.Date) {
		tx.Date = state.Today
	}
	if strings.TrimSpace(tx.Title) == "" {
		tx.Title = strings.TrimSpace(state.Text)
	}
	if tx.Amount <= 0 {
		return domain.AmountUndetectedError()
	}
	return nil
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a new pipeline with the given steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps sequentially. It stops at the first error or as
// soon as ctx is done.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	for i, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("pipeline step %d failed: %w", i+1, err)
		}
	}
	return nil
}

// NewExtractionPipeline creates the standard extraction pipeline. model may
// be nil.
func NewExtractionPipeline(model DraftModel, modelTimeout time.Duration, titleMaxLen int) *Pipeline {
	return NewPipeline(
		&ValidateInputStep{},
		&ContentGateStep{},
		&ExtractAmountStep{},
		&ExtractFieldsStep{Model: model, Timeout: modelTimeout},
		&MergeStep{TitleMaxLen: titleMaxLen},
		&ApplyOverridesStep{},
		&FinalizeStep{},
	)
}
