package pipeline

import (
	"time"

	"github.com/dvloznov/dompet/internal/rules"
)

// Default values for the extractor.
// These can be overridden via configuration or environment variables.
const (
	// DefaultModelName is the default Gemini model used for drafts.
	DefaultModelName = "gemini-2.5-flash"

	// DefaultModelTimeout bounds a single model call.
	DefaultModelTimeout = 8 * time.Second

	// DefaultModelTemperature keeps model drafts close to deterministic.
	DefaultModelTemperature = 0.1

	// DefaultTimezone anchors "today" for relative dates.
	DefaultTimezone = "Asia/Jakarta"

	// DefaultTitleMaxLen is the longest title, in runes, the extractor returns.
	DefaultTitleMaxLen = rules.MaxTitleRunes
)
