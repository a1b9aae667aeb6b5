package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseResponse decodes raw as a single JSON value.
// The body is taken as-is: markdown fences, leading prose or trailing text make it malformed.
// Nothing is checked beyond JSON syntax; see Classify for shape inspection.
func ParseResponse(raw string) Result {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Fail(KindMalformedPayload, fmt.Sprintf("failed to parse JSON response: %v", err), raw)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Fail(KindMalformedPayload, "failed to parse JSON response: unexpected data after top-level value", raw)
	}

	return Success(Document{
		Raw:   json.RawMessage(raw),
		Value: value,
	})
}

// TransportFailure converts a failed remote call into a Result carrying the error's message.
func TransportFailure(err error) Result {
	msg := "remote service call failed"
	if err != nil {
		msg = err.Error()
	}
	return Fail(KindTransport, msg, "")
}
