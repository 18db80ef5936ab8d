// README: CLI demo of the generation pipeline against a live Gemini key.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"tabi/internal/ai"
	"tabi/internal/modules/itinerary"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	completer, err := ai.NewGeminiCompleter(ctx, ai.Config{APIKey: apiKey})
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer completer.Close()

	params := itinerary.TripParams{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
		Cities:    []string{"Tokyo"},
		Interests: []string{"food", "temples"},
		Budget:    itinerary.BudgetModerate,
	}

	prompt := itinerary.BuildGenerationPrompt(params)
	raw, err := completer.Complete(ctx, prompt)
	if err != nil {
		log.Fatalf("Model call failed: %v", err)
	}

	plan, err := itinerary.ExtractPlan(raw)
	if err != nil {
		log.Fatalf("Reply rejected: %v", err)
	}

	out, _ := json.MarshalIndent(plan, "", "  ")
	fmt.Println(string(out))
}
