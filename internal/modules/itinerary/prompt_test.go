package itinerary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBuilder(t *testing.T) *PromptBuilder {
	t.Helper()
	b, err := NewPromptBuilder(DefaultTemplate())
	require.NoError(t, err)
	return b
}

func TestBuild_InterpolatesEachFieldOnce(t *testing.T) {
	b := defaultBuilder(t)
	p := Preferences{
		Location:     "Qx-location-71",
		Duration:     "Qx-duration-72",
		Budget:       "Qx-budget-73",
		TravelerType: "Qx-traveler-74",
		Interests:    "Qx-interests-75",
	}

	out := b.Build(p)
	for _, v := range []string{p.Location, p.Duration, p.Budget, p.TravelerType, p.Interests} {
		assert.Equal(t, 1, strings.Count(out, v), "value %q", v)
	}
	for _, ph := range append(inputPlaceholders, PlaceholderSchema) {
		assert.NotContains(t, out, ph)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := defaultBuilder(t)
	p := Preferences{Location: "Paris", Duration: "3 days", Budget: "medium", TravelerType: "couple", Interests: "art, food"}
	assert.Equal(t, b.Build(p), b.Build(p))
}

func TestBuild_EmptyPreferences(t *testing.T) {
	out := defaultBuilder(t).Build(Preferences{})

	assert.True(t, strings.HasPrefix(out, "Act as a travel itinerary planner"))
	assert.Contains(t, out, "Location: \n")
	assert.Contains(t, out, "Interests and preferred activities: \n")
	assert.True(t, strings.HasSuffix(out, "Generate a travel itinerary based on the provided preferences."))
}

func TestBuild_ValuesAreNotReexpanded(t *testing.T) {
	out := defaultBuilder(t).Build(Preferences{Location: "{budget}", Budget: "cheap"})

	assert.Contains(t, out, "Location: {budget}\n")
	assert.Contains(t, out, "Budget: cheap\n")
}

func TestBuild_EnumeratesEveryRequiredField(t *testing.T) {
	tmpl := DefaultTemplate()
	out := defaultBuilder(t).Build(Preferences{})

	for _, s := range tmpl.Schema {
		assert.Contains(t, out, s.Title+":")
		for _, f := range s.Fields {
			assert.Contains(t, out, "- "+f.Name)
		}
	}
	assert.Contains(t, out, "at least 3 recommended dining options")
}

func TestNewPromptBuilder_RejectsBadTemplates(t *testing.T) {
	base := DefaultTemplate()

	cases := map[string]PromptTemplate{
		"missing placeholder":   {Name: "x", Text: strings.Replace(base.Text, PlaceholderBudget, "", 1), Schema: base.Schema},
		"duplicate placeholder": {Name: "x", Text: base.Text + PlaceholderLocation, Schema: base.Schema},
		"missing schema slot":   {Name: "x", Text: strings.Replace(base.Text, PlaceholderSchema, "", 1), Schema: base.Schema},
		"empty schema":          {Name: "x", Text: base.Text},
	}
	for name, tmpl := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := NewPromptBuilder(tmpl)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, ErrInvalidTemplate), "got %v", err)
		})
	}
}

func TestLoadTemplate_YAML(t *testing.T) {
	data := `name: compact
text: |
  Plan {duration} in {location} for a {travelerType} on a {budget} budget who likes {interests}.
  {schema}
schema:
  - title: Hotels
    intro: key "hotels"
    fields:
      - name: hotelName
      - name: rating
        description: out of 5
`
	path := filepath.Join(t.TempDir(), "prompt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	tmpl, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "compact", tmpl.Name)

	b, err := NewPromptBuilder(tmpl)
	require.NoError(t, err)
	assert.Equal(t, "compact", b.Name())

	out := b.Build(Preferences{Location: "Kyoto", Duration: "2 days", Budget: "low", TravelerType: "solo", Interests: "temples"})
	assert.Equal(t, "Plan 2 days in Kyoto for a solo on a low budget who likes temples.\nHotels:\nkey \"hotels\"\n- hotelName\n- rating: out of 5\n\n", out)
}

func TestParseTemplate_UnknownKey(t *testing.T) {
	_, err := ParseTemplate([]byte("name: x\nprompt: nope\n"))
	assert.True(t, errors.Is(err, ErrInvalidTemplate))
}

func TestLoadTemplate_MissingFile(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
