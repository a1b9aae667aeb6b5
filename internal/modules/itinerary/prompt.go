package itinerary

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// ErrInvalidTemplate is returned when a prompt template cannot produce a usable prompt.
var ErrInvalidTemplate = errors.New("invalid prompt template")

// Placeholders substituted into PromptTemplate.Text.
const (
	PlaceholderLocation     = "{location}"
	PlaceholderDuration     = "{duration}"
	PlaceholderBudget       = "{budget}"
	PlaceholderTravelerType = "{travelerType}"
	PlaceholderInterests    = "{interests}"
	PlaceholderSchema       = "{schema}"
)

var inputPlaceholders = []string{
	PlaceholderLocation,
	PlaceholderDuration,
	PlaceholderBudget,
	PlaceholderTravelerType,
	PlaceholderInterests,
}

// Field is one attribute the model must emit.
type Field struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Section groups the fields of one level of the output document.
type Section struct {
	Title  string  `yaml:"title"`
	Intro  string  `yaml:"intro"`
	Fields []Field `yaml:"fields"`
}

// PromptTemplate is the prompt text plus the enumeration of required output fields.
// Listing every field at every nesting level is what steers the model toward a parseable shape.
type PromptTemplate struct {
	Name   string    `yaml:"name"`
	Text   string    `yaml:"text"`
	Schema []Section `yaml:"schema"`
}

// LoadTemplate reads a YAML prompt template from path.
func LoadTemplate(path string) (PromptTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PromptTemplate{}, fmt.Errorf("read prompt template %s: %w", path, err)
	}
	return ParseTemplate(data)
}

// ParseTemplate decodes a YAML prompt template.
func ParseTemplate(data []byte) (PromptTemplate, error) {
	var t PromptTemplate
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return PromptTemplate{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return t, nil
}

// PromptBuilder renders Preferences into prompt text.
type PromptBuilder struct {
	name string
	text string
}

// NewPromptBuilder validates t once so that Build never has an error path.
func NewPromptBuilder(t PromptTemplate) (*PromptBuilder, error) {
	if len(t.Schema) == 0 {
		return nil, fmt.Errorf("%w: %q has no schema sections", ErrInvalidTemplate, t.Name)
	}
	if n := strings.Count(t.Text, PlaceholderSchema); n != 1 {
		return nil, fmt.Errorf("%w: %q must contain %s once, found %d", ErrInvalidTemplate, t.Name, PlaceholderSchema, n)
	}

	text := strings.Replace(t.Text, PlaceholderSchema, renderSchema(t.Schema), 1)
	for _, ph := range inputPlaceholders {
		if n := strings.Count(text, ph); n != 1 {
			return nil, fmt.Errorf("%w: %q must contain %s once, found %d", ErrInvalidTemplate, t.Name, ph, n)
		}
	}

	return &PromptBuilder{name: t.Name, text: text}, nil
}

// Name returns the template name the builder was created from.
func (b *PromptBuilder) Name() string {
	return b.name
}

// Build interpolates the five preference fields verbatim.
// Replacement is single-pass, so a value that looks like a placeholder is left alone.
func (b *PromptBuilder) Build(p Preferences) string {
	r := strings.NewReplacer(
		PlaceholderLocation, p.Location,
		PlaceholderDuration, p.Duration,
		PlaceholderBudget, p.Budget,
		PlaceholderTravelerType, p.TravelerType,
		PlaceholderInterests, p.Interests,
	)
	return r.Replace(b.text)
}

func renderSchema(sections []Section) string {
	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.Title)
		sb.WriteString(":\n")
		if s.Intro != "" {
			sb.WriteString(s.Intro)
			sb.WriteString("\n")
		}
		for _, f := range s.Fields {
			sb.WriteString("- ")
			sb.WriteString(f.Name)
			if f.Description != "" {
				sb.WriteString(": ")
				sb.WriteString(f.Description)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// DefaultTemplate returns the built-in itinerary prompt.
func DefaultTemplate() PromptTemplate {
	return PromptTemplate{
		Name: "itinerary-v1",
		Text: `Act as a travel itinerary planner for a smart travel assistant app. The user is planning a trip and provides the following preferences:
Location: {location}
Duration: {duration}
Budget: {budget}
Type of traveler: {travelerType}
Interests and preferred activities: {interests}

Based on these inputs, generate a detailed JSON format response with exactly this structure:

{schema}
Generate a travel itinerary based on the provided preferences.`,
		Schema: []Section{
			{
				Title: "Hotel Options",
				Intro: `Top-level key "hotels": a list of hotel objects, each with:`,
				Fields: []Field{
					{Name: "hotelName", Description: "name of the hotel"},
					{Name: "hotelAddress", Description: "full street address"},
					{Name: "pricePerNight", Description: "price per night with currency"},
					{Name: "hotelImageUrl", Description: "actual image URL from online repositories or booking sites"},
					{Name: "geoCoordinates", Description: "object with latitude and longitude"},
					{Name: "rating", Description: "rating out of 5"},
					{Name: "description", Description: "description of the hotel and key amenities"},
				},
			},
			{
				Title: "Itinerary Plan",
				Intro: `Top-level key "itinerary": a day-by-day list covering the whole duration, each day with:`,
				Fields: []Field{
					{Name: "day", Description: "day number starting at 1"},
					{Name: "theme", Description: "short summary of the day"},
					{Name: "places", Description: "list of places to visit that day, in visiting order"},
				},
			},
			{
				Title: "For each place",
				Intro: "Plan the day with suggested timing and duration. Each place object has:",
				Fields: []Field{
					{Name: "placeName", Description: "name of the attraction"},
					{Name: "placeUrl", Description: "official URL of the attraction or tourism board"},
					{Name: "placeDetails", Description: "description of the attraction"},
					{Name: "placeImageUrl", Description: "actual image URL from tourism boards or verified sources"},
					{Name: "geoCoordinates", Description: "object with latitude and longitude"},
					{Name: "rating", Description: "rating out of 5 from Google Places"},
					{Name: "ticketPricing", Description: "ticket price if applicable"},
					{Name: "ticketUrl", Description: "ticket purchase URL if applicable"},
					{Name: "timeSlot", Description: "suggested start and end time"},
					{Name: "visitDuration", Description: "suggested duration of the visit"},
					{Name: "bestTimeToVisit", Description: "best time of day to visit"},
					{Name: "travelTimeToNext", Description: "object with publicTransport and privateTransport travel times to the next place"},
					{Name: "meals", Description: "at least 3 recommended dining options nearby"},
				},
			},
			{
				Title: "Meal Recommendations",
				Intro: "Each entry in meals is a nearby dining option with:",
				Fields: []Field{
					{Name: "restaurantName", Description: "name of the restaurant"},
					{Name: "cuisineType", Description: "cuisine type"},
					{Name: "priceRange", Description: "price range"},
					{Name: "specialtyDishes", Description: "specialty dishes"},
					{Name: "address", Description: "street address"},
					{Name: "imageUrl", Description: "actual image of the restaurant or food"},
					{Name: "establishmentUrl", Description: "Google Maps or official website URL"},
				},
			},
		},
	}
}
