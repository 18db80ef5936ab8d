// README: Prompt rendering tests.
package itinerary

import (
	"strings"
	"testing"
)

func TestBuildGenerationPromptIncludesAllInputs(t *testing.T) {
	p := TripParams{
		StartDate:   "2025-04-01",
		EndDate:     "2025-04-05",
		Cities:      []string{"Tokyo", "Kyoto"},
		Interests:   []string{"food", "temples"},
		Budget:      BudgetLuxury,
		TravelStyle: StylePacked,
	}
	prompt := BuildGenerationPrompt(p)

	for _, want := range []string{
		"2025-04-01", "2025-04-05",
		"Tokyo, Kyoto",
		"food, temples",
		"luxury", "packed",
		"```json",
		"\"coordinates\": [longitude, latitude]",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildGenerationPromptDefaultsTravelStyle(t *testing.T) {
	p := TripParams{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
		Cities:    []string{"Osaka"},
		Interests: []string{"food"},
		Budget:    BudgetLow,
	}
	prompt := BuildGenerationPrompt(p)
	if !strings.Contains(prompt, "Travel Style: moderate") {
		t.Errorf("expected default travel style, got:\n%s", prompt)
	}
}

func TestBuildGenerationPromptDeterministic(t *testing.T) {
	p := TripParams{
		StartDate: "2025-04-01",
		EndDate:   "2025-04-03",
		Cities:    []string{"Tokyo"},
		Interests: []string{"food"},
		Budget:    BudgetModerate,
	}
	if BuildGenerationPrompt(p) != BuildGenerationPrompt(p) {
		t.Error("same params produced different prompts")
	}
}

func TestBuildAdjustmentPromptEmbedsCurrentDays(t *testing.T) {
	days := []DaySchedule{{
		Day:  1,
		Date: "2025-04-01",
		Activities: []Activity{{
			StartTime: "09:00",
			EndTime:   "11:00",
			Name:      "Senso-ji Temple",
			Type:      "culture",
			Location: Location{
				Name:        "Senso-ji",
				Address:     "Asakusa, Tokyo",
				Coordinates: [2]float64{139.7967, 35.7148},
			},
		}},
	}}
	prompt := BuildAdjustmentPrompt(days, "rain forecast for day 1", map[string]any{"indoor": true})

	for _, want := range []string{
		"Senso-ji Temple",
		"Reason for adjustment: rain forecast for day 1",
		`"indoor":true`,
		"```json",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildAdjustmentPromptNilPreferences(t *testing.T) {
	prompt := BuildAdjustmentPrompt(nil, "shorter days", nil)
	if !strings.Contains(prompt, "Preferences: {}") {
		t.Errorf("nil preferences should render as an empty object, got:\n%s", prompt)
	}
}
