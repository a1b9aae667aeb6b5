package itinerary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MinMealsPerPlace is the number of dining recommendations the prompt asks for at every place.
const MinMealsPerPlace = 3

// Text accepts any JSON scalar. Models are inconsistent about quoting numbers
// ("4.5" vs 4.5), so leaves are kept as their textual form.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}
	*t = Text(bytes.TrimSpace(data))
	return nil
}

type Hotel struct {
	Name           Text            `json:"hotelName"`
	Address        Text            `json:"hotelAddress"`
	PricePerNight  Text            `json:"pricePerNight"`
	ImageURL       Text            `json:"hotelImageUrl"`
	GeoCoordinates json.RawMessage `json:"geoCoordinates"`
	Rating         Text            `json:"rating"`
	Description    Text            `json:"description"`
}

type Meal struct {
	RestaurantName   Text `json:"restaurantName"`
	CuisineType      Text `json:"cuisineType"`
	PriceRange       Text `json:"priceRange"`
	SpecialtyDishes  Text `json:"specialtyDishes"`
	Address          Text `json:"address"`
	ImageURL         Text `json:"imageUrl"`
	EstablishmentURL Text `json:"establishmentUrl"`
}

type Place struct {
	Name             Text            `json:"placeName"`
	URL              Text            `json:"placeUrl"`
	Details          Text            `json:"placeDetails"`
	ImageURL         Text            `json:"placeImageUrl"`
	GeoCoordinates   json.RawMessage `json:"geoCoordinates"`
	Rating           Text            `json:"rating"`
	TicketPricing    Text            `json:"ticketPricing"`
	TicketURL        Text            `json:"ticketUrl"`
	TimeSlot         Text            `json:"timeSlot"`
	VisitDuration    Text            `json:"visitDuration"`
	BestTimeToVisit  Text            `json:"bestTimeToVisit"`
	TravelTimeToNext json.RawMessage `json:"travelTimeToNext"`
	Meals            []Meal          `json:"meals"`
}

type Day struct {
	Day    Text    `json:"day"`
	Theme  Text    `json:"theme"`
	Places []Place `json:"places"`
}

// Plan is a typed view over a Document.
type Plan struct {
	Hotels    []Hotel
	Itinerary []Day
}

// Classify reads doc into a Plan and reports whether it has the full expected shape:
// a hotels list, at least one day, places on every day and MinMealsPerPlace meals at every place.
// Sections that cannot be read are left empty. doc is never modified.
func Classify(doc Document) (Plan, Recognition) {
	var plan Plan

	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc.Raw, &top); err != nil {
		return plan, PartiallyRecognized
	}

	hotelsOK := decodeSection(top, "hotels", &plan.Hotels)
	daysOK := decodeSection(top, "itinerary", &plan.Itinerary)
	if !hotelsOK || !daysOK || len(plan.Itinerary) == 0 {
		return plan, PartiallyRecognized
	}

	for _, day := range plan.Itinerary {
		if len(day.Places) == 0 {
			return plan, PartiallyRecognized
		}
		for _, place := range day.Places {
			if len(place.Meals) < MinMealsPerPlace {
				return plan, PartiallyRecognized
			}
		}
	}
	return plan, WellFormed
}

func decodeSection(top map[string]json.RawMessage, key string, dst any) bool {
	raw, ok := top[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// Summary renders one line per hotel and per place, for terminal output.
func (p Plan) Summary() string {
	var sb strings.Builder
	for _, h := range p.Hotels {
		fmt.Fprintf(&sb, "Hotel: %s", orUnnamed(h.Name))
		if h.PricePerNight != "" {
			fmt.Fprintf(&sb, " (%s/night)", h.PricePerNight)
		}
		sb.WriteString("\n")
	}
	for i, day := range p.Itinerary {
		label := day.Day
		if label == "" {
			label = Text(fmt.Sprint(i + 1))
		}
		fmt.Fprintf(&sb, "Day %s", label)
		if day.Theme != "" {
			fmt.Fprintf(&sb, ": %s", day.Theme)
		}
		sb.WriteString("\n")
		for _, place := range day.Places {
			fmt.Fprintf(&sb, "  - %s", orUnnamed(place.Name))
			if place.TimeSlot != "" {
				fmt.Fprintf(&sb, " [%s]", place.TimeSlot)
			}
			fmt.Fprintf(&sb, ", %d meal options\n", len(place.Meals))
		}
	}
	return sb.String()
}

func orUnnamed(t Text) Text {
	if t == "" {
		return "(unnamed)"
	}
	return t
}
