package itinerary

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parisDocument = `{"hotels":[{"hotelName":"Hotel Lutetia","rating":4.7}],"itinerary":[{"day":1,"places":[{"name":"Louvre","meals":[{"name":"Cafe A"},{"name":"Cafe B"},{"name":"Cafe C"}]}]}]}`

func TestParseResponse_ValidObject(t *testing.T) {
	res := ParseResponse(parisDocument)

	require.True(t, res.OK())
	assert.Nil(t, res.Failure)
	assert.JSONEq(t, parisDocument, string(res.Document.Raw))

	var want any
	dec := json.NewDecoder(strings.NewReader(parisDocument))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&want))
	assert.Equal(t, want, res.Document.Value)

	days := res.Document.Value.(map[string]any)["itinerary"].([]any)
	places := days[0].(map[string]any)["places"].([]any)
	meals := places[0].(map[string]any)["meals"].([]any)
	assert.Len(t, meals, 3)
}

func TestParseResponse_KeepsNumbersExact(t *testing.T) {
	res := ParseResponse(`{"price":12345678901234567890}`)

	require.True(t, res.OK())
	assert.Equal(t, json.Number("12345678901234567890"), res.Document.Value.(map[string]any)["price"])
}

func TestParseResponse_Malformed(t *testing.T) {
	cases := map[string]string{
		"prose":          "Sorry, I cannot help",
		"empty":          "",
		"whitespace":     "  \n",
		"truncated":      `{"hotels":[{"hotelName":"A"`,
		"fenced":         "```json\n{\"hotels\":[]}\n```",
		"trailing prose": `{"hotels":[]} hope this helps`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			res := ParseResponse(raw)

			assert.False(t, res.OK())
			assert.Nil(t, res.Document)
			require.NotNil(t, res.Failure)
			assert.Equal(t, KindMalformedPayload, res.Failure.Kind)
			assert.Equal(t, raw, res.Failure.Raw)
			assert.Contains(t, res.Failure.Message, "failed to parse JSON response")
		})
	}
}

func TestParseResponse_TrailingWhitespaceIsFine(t *testing.T) {
	res := ParseResponse("{\"hotels\":[]}\n\n")
	assert.True(t, res.OK())
}

func TestTransportFailure(t *testing.T) {
	res := TransportFailure(errors.New("gemini generation error: deadline exceeded"))

	assert.False(t, res.OK())
	assert.Nil(t, res.Document)
	require.NotNil(t, res.Failure)
	assert.Equal(t, KindTransport, res.Failure.Kind)
	assert.Equal(t, "gemini generation error: deadline exceeded", res.Failure.Message)
	assert.EqualError(t, res.Failure, "gemini generation error: deadline exceeded")
}

func TestDocument_MarshalJSON(t *testing.T) {
	res := ParseResponse(parisDocument)
	require.True(t, res.OK())

	out, err := json.Marshal(map[string]any{"itinerary": res.Document})
	require.NoError(t, err)
	assert.JSONEq(t, `{"itinerary":`+parisDocument+`}`, string(out))
}

func TestDocument_MarshalJSON_InvalidUTF8(t *testing.T) {
	res := ParseResponse("{\"hotelName\":\"Caf\xe9 Lutetia\",\"rating\":4.70}")
	require.True(t, res.OK())

	out, err := json.Marshal(res.Document)
	require.NoError(t, err)
	assert.True(t, utf8.Valid(out))
	assert.JSONEq(t, `{"hotelName":"Caf\ufffd Lutetia","rating":4.70}`, string(out))
	assert.Contains(t, string(out), `4.70`)
}
