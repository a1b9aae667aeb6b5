// README: One-shot CLI; generates an itinerary and prints either the document or the error message.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tidwall/pretty"

	"wanderplan/internal/ai"
	"wanderplan/internal/config"
	"wanderplan/internal/modules/itinerary"
	"wanderplan/internal/service"
)

func main() {
	var prefs itinerary.Preferences
	flag.StringVar(&prefs.Location, "location", "Paris", "destination")
	flag.StringVar(&prefs.Duration, "duration", "3 days", "trip length")
	flag.StringVar(&prefs.Budget, "budget", "medium", "budget")
	flag.StringVar(&prefs.TravelerType, "traveler", "couple", "type of traveler")
	flag.StringVar(&prefs.Interests, "interests", "art, food", "interests and preferred activities")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	builder, err := itinerary.NewPromptBuilder(itinerary.DefaultTemplate())
	if err != nil {
		log.Fatalf("prompt template: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Generating itinerary for %s (%s)...\n", prefs.Location, prefs.Duration)
	res := service.NewItineraryPlanner(builder, provider, nil).Generate(ctx, prefs)
	if !res.OK() {
		fmt.Println(res.Failure.Message)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Shape: %s\n", res.Recognition)
	if res.Plan != nil {
		fmt.Fprint(os.Stderr, res.Plan.Summary())
	}
	os.Stdout.Write(pretty.Pretty(res.Document.Raw))
}
