// README: Prompt rendering for itinerary generation and adjustment.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// planFormat is the worked output example embedded in every prompt. The model
// reply is otherwise free text, so the exact shape has to be taught here.
const planFormat = `Return the itinerary as a single JSON object inside a fenced ` + "```json" + ` code block, with exactly this structure:
` + "```json" + `
{
  "days": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "activities": [
        {
          "startTime": "HH:mm",
          "endTime": "HH:mm",
          "name": "Activity name",
          "type": "attraction|restaurant|culture|nature|nightlife",
          "location": {
            "name": "Location name",
            "address": "Full address",
            "coordinates": [longitude, latitude]
          },
          "notes": "Helpful tips or information"
        }
      ]
    }
  ],
  "totalCost": estimated_total_cost_in_jpy
}
` + "```"

// BuildGenerationPrompt renders the instructions for a fresh itinerary.
// Pure function of its input; an absent travel style defaults to "moderate".
func BuildGenerationPrompt(p TripParams) string {
	style := p.TravelStyle
	if style == "" {
		style = StyleModerate
	}

	return fmt.Sprintf(`You are an expert Japan travel planner. Create a detailed day-by-day itinerary for a trip to Japan.

Travel Details:
- Start Date: %s
- End Date: %s
- Cities: %s
- Interests: %s
- Budget: %s
- Travel Style: %s

Create a comprehensive itinerary with:
1. Daily schedules with specific times
2. Activities matching the user's interests
3. Restaurant recommendations for each day
4. Cultural experiences and local tips
5. Realistic travel times between locations
6. Backup options for each day

%s`,
		p.StartDate,
		p.EndDate,
		strings.Join(p.Cities, ", "),
		strings.Join(p.Interests, ", "),
		p.Budget,
		style,
		planFormat,
	)
}

// BuildAdjustmentPrompt renders the instructions for revising an existing plan.
// The current days are serialized verbatim as context; a nil preferences map
// renders as an explicit empty object so the prompt stays well formed.
func BuildAdjustmentPrompt(existingDays []DaySchedule, reason string, preferences map[string]any) string {
	daysJSON, err := json.MarshalIndent(existingDays, "", "  ")
	if err != nil {
		daysJSON = []byte("[]")
	}
	if preferences == nil {
		preferences = map[string]any{}
	}
	prefsJSON, err := json.Marshal(preferences)
	if err != nil {
		prefsJSON = []byte("{}")
	}

	return fmt.Sprintf(`You are adjusting an existing Japan travel itinerary.

Current Itinerary:
%s

Reason for adjustment: %s

Preferences: %s

Adjust the itinerary accordingly while maintaining the overall structure and key activities.
Provide alternative activities that fit the new conditions (e.g., indoor activities for rainy weather,
more relaxed schedule if time is limited, etc.).

%s`,
		daysJSON,
		reason,
		prefsJSON,
		planFormat,
	)
}
