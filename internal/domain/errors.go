package domain

import (
	"fmt"
)

// FailureKind classifies why an utterance could not be turned into a
// ParsedTransaction.
type FailureKind string

const (
	KindEmptyInput           FailureKind = "EmptyInput"
	KindNoTransactionContent FailureKind = "NoTransactionContent"
	KindAmountMissing        FailureKind = "AmountMissing"
	KindModelUnavailable     FailureKind = "ModelUnavailable"
	KindModelOutputInvalid   FailureKind = "ModelOutputInvalid"
	KindInternalParseFailure FailureKind = "InternalParseFailure"
)

// ParseError is the typed failure returned by the extractor.
// Two ParseErrors match under errors.Is when their kinds are equal, so the
// sentinels below can be used directly:
//
//	if errors.Is(err, domain.ErrAmountMissing) { ... }
type ParseError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is matches on Kind only.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// UserFacing reports whether this failure is shown to the end user as a
// rejection. Model failures are absorbed internally and never surfaced.
func (e *ParseError) UserFacing() bool {
	switch e.Kind {
	case KindEmptyInput, KindNoTransactionContent, KindAmountMissing:
		return true
	}
	return false
}

// User-facing messages coach the user toward phrasing the rules understand.
const (
	msgEmptyInput           = "Teks kosong. Contoh: 'beli kopi 15rb kemarin'"
	msgNoTransactionContent = "Teks tidak mengandung informasi transaksi. Silakan sebutkan apa yang dibeli/dibayar dan nominalnya. Contoh: 'beli kopi 15rb kemarin'"
	msgAmountMissing        = "Nominal/harga tidak disebutkan dalam teks. Silakan tambahkan jumlah uang. Contoh: '15rb', 'Rp15.000', '15ribu', '10 juta'"
	msgAmountUndetected     = "Nominal/harga tidak dapat dideteksi. Pastikan format benar. Contoh: '15rb', 'Rp15.000', '15000', '10 juta'"
)

var (
	ErrEmptyInput           = &ParseError{Kind: KindEmptyInput, Message: msgEmptyInput}
	ErrNoTransactionContent = &ParseError{Kind: KindNoTransactionContent, Message: msgNoTransactionContent}
	ErrAmountMissing        = &ParseError{Kind: KindAmountMissing, Message: msgAmountMissing}
	ErrModelUnavailable     = &ParseError{Kind: KindModelUnavailable, Message: "text model unavailable"}
	ErrModelOutputInvalid   = &ParseError{Kind: KindModelOutputInvalid, Message: "text model returned invalid output"}
	ErrInternalParseFailure = &ParseError{Kind: KindInternalParseFailure, Message: "internal parse failure"}
)

// AmountUndetectedError is the AmountMissing failure raised by the final
// check, after the model stage had a chance to touch the amount.
func AmountUndetectedError() *ParseError {
	return &ParseError{Kind: KindAmountMissing, Message: msgAmountUndetected}
}

// NewModelUnavailableError wraps a transport or client error from the model.
func NewModelUnavailableError(err error) *ParseError {
	return &ParseError{Kind: KindModelUnavailable, Message: "text model unavailable", Err: err}
}

// NewModelOutputInvalidError wraps a decoding error of the model's reply.
func NewModelOutputInvalidError(err error) *ParseError {
	return &ParseError{Kind: KindModelOutputInvalid, Message: "text model returned invalid output", Err: err}
}

// NewInternalParseFailure wraps an unexpected fault.
func NewInternalParseFailure(err error) *ParseError {
	return &ParseError{Kind: KindInternalParseFailure, Message: "internal parse failure", Err: err}
}
