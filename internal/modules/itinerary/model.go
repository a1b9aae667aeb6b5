// README: Itinerary request/response value types.
package itinerary

import (
	"encoding/json"
	"unicode/utf8"
)

// Preferences is one user submission. Every field is free text and may be empty.
type Preferences struct {
	Location     string `json:"location"`
	Duration     string `json:"duration"`
	Budget       string `json:"budget"`
	TravelerType string `json:"travelerType"`
	Interests    string `json:"interests"`
}

// Kind classifies a failed generation.
type Kind string

const (
	// KindTransport covers network failures, remote error statuses and remote timeouts.
	KindTransport Kind = "transport_error"
	// KindMalformedPayload means the remote call succeeded but its body is not JSON.
	KindMalformedPayload Kind = "malformed_payload"
)

// ErrorInfo describes why a generation failed. Message is safe to show to the user.
type ErrorInfo struct {
	Kind    Kind
	Message string
	// Raw holds the unparsed body for malformed payloads.
	Raw string
}

func (e *ErrorInfo) Error() string {
	return e.Message
}

// Document is a decoded itinerary exactly as the service returned it.
type Document struct {
	// Raw is the body byte for byte.
	Raw json.RawMessage
	// Value is Raw decoded with json.Number for numbers.
	Value any
}

// MarshalJSON emits the document as received. A body with invalid UTF-8 is
// re-encoded from Value instead, where the decoder already replaced bad bytes with U+FFFD.
func (d Document) MarshalJSON() ([]byte, error) {
	if len(d.Raw) == 0 {
		return []byte("null"), nil
	}
	if !utf8.Valid(d.Raw) {
		return json.Marshal(d.Value)
	}
	return d.Raw, nil
}

// Recognition reports how much of the expected itinerary shape a document matched.
type Recognition string

const (
	WellFormed          Recognition = "well_formed"
	PartiallyRecognized Recognition = "partially_recognized"
)

// Result is either a Document or a Failure, never both.
type Result struct {
	Document *Document
	// Plan and Recognition are only set alongside Document.
	Plan        *Plan
	Recognition Recognition
	Failure     *ErrorInfo
}

// OK reports whether the result carries a document.
func (r Result) OK() bool {
	return r.Failure == nil && r.Document != nil
}

// Success wraps doc in a Result.
func Success(doc Document) Result {
	return Result{Document: &doc}
}

// Fail wraps a failure in a Result.
func Fail(kind Kind, message, raw string) Result {
	return Result{Failure: &ErrorInfo{Kind: kind, Message: message, Raw: raw}}
}
