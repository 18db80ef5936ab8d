// README: Plan schema validation tests (totality and field-path precision).
package itinerary

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const validPlanJSON = `{
  "days": [
    {
      "day": 1,
      "date": "2025-04-01",
      "activities": [
        {
          "startTime": "09:00",
          "endTime": "11:00",
          "name": "Senso-ji Temple",
          "type": "culture",
          "location": {
            "name": "Senso-ji",
            "address": "2-3-1 Asakusa, Taito City, Tokyo",
            "coordinates": [139.7967, 35.7148]
          },
          "notes": "Arrive early to beat the crowds"
        },
        {
          "startTime": "12:00",
          "endTime": "13:30",
          "name": "Ramen lunch",
          "type": "restaurant",
          "location": {
            "name": "Ichiran Asakusa",
            "address": "1-1-1 Asakusa, Taito City, Tokyo",
            "coordinates": [139.7945, 35.7119]
          }
        }
      ]
    }
  ],
  "totalCost": 45000
}`

func parsePlanJSON(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("fixture does not parse: %v", err)
	}
	return v
}

func TestValidatePlanAcceptsValidSample(t *testing.T) {
	plan, err := ValidatePlan(parsePlanJSON(t, validPlanJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost := 45000.0
	want := &GeneratedPlan{
		Days: []DaySchedule{
			{
				Day:  1,
				Date: "2025-04-01",
				Activities: []Activity{
					{
						StartTime: "09:00",
						EndTime:   "11:00",
						Name:      "Senso-ji Temple",
						Type:      "culture",
						Location: Location{
							Name:        "Senso-ji",
							Address:     "2-3-1 Asakusa, Taito City, Tokyo",
							Coordinates: [2]float64{139.7967, 35.7148},
						},
						Notes: "Arrive early to beat the crowds",
					},
					{
						StartTime: "12:00",
						EndTime:   "13:30",
						Name:      "Ramen lunch",
						Type:      "restaurant",
						Location: Location{
							Name:        "Ichiran Asakusa",
							Address:     "1-1-1 Asakusa, Taito City, Tokyo",
							Coordinates: [2]float64{139.7945, 35.7119},
						},
					},
				},
			},
		},
		TotalCost: &cost,
	}
	if !reflect.DeepEqual(plan, want) {
		t.Errorf("validated plan differs from input:\n got %+v\nwant %+v", plan, want)
	}
}

func TestValidatePlanOmittedTotalCost(t *testing.T) {
	value := parsePlanJSON(t, validPlanJSON).(map[string]any)
	delete(value, "totalCost")

	plan, err := ValidatePlan(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.TotalCost != nil {
		t.Errorf("expected nil totalCost, got %v", *plan.TotalCost)
	}
}

// mutate applies fn to a fresh copy of the valid sample and returns it.
func mutate(t *testing.T, fn func(root map[string]any)) any {
	t.Helper()
	root := parsePlanJSON(t, validPlanJSON).(map[string]any)
	fn(root)
	return root
}

func firstActivity(root map[string]any) map[string]any {
	day := root["days"].([]any)[0].(map[string]any)
	return day["activities"].([]any)[0].(map[string]any)
}

func TestValidatePlanRejectsMalformedVariants(t *testing.T) {
	cases := []struct {
		name     string
		value    any
		wantPath string
	}{
		{
			name:     "not an object",
			value:    []any{"days"},
			wantPath: "$",
		},
		{
			name:     "missing days",
			value:    mutate(t, func(root map[string]any) { delete(root, "days") }),
			wantPath: "days",
		},
		{
			name:     "days wrong type",
			value:    mutate(t, func(root map[string]any) { root["days"] = "tomorrow" }),
			wantPath: "days",
		},
		{
			name:     "totalCost wrong type",
			value:    mutate(t, func(root map[string]any) { root["totalCost"] = "45000" }),
			wantPath: "totalCost",
		},
		{
			name: "day number wrong type",
			value: mutate(t, func(root map[string]any) {
				root["days"].([]any)[0].(map[string]any)["day"] = "one"
			}),
			wantPath: "days[0].day",
		},
		{
			name: "missing date",
			value: mutate(t, func(root map[string]any) {
				delete(root["days"].([]any)[0].(map[string]any), "date")
			}),
			wantPath: "days[0].date",
		},
		{
			name: "missing activity name",
			value: mutate(t, func(root map[string]any) {
				delete(firstActivity(root), "name")
			}),
			wantPath: "days[0].activities[0].name",
		},
		{
			name: "startTime wrong type",
			value: mutate(t, func(root map[string]any) {
				firstActivity(root)["startTime"] = 900
			}),
			wantPath: "days[0].activities[0].startTime",
		},
		{
			name: "missing location",
			value: mutate(t, func(root map[string]any) {
				delete(firstActivity(root), "location")
			}),
			wantPath: "days[0].activities[0].location",
		},
		{
			name: "coordinates with one element",
			value: mutate(t, func(root map[string]any) {
				firstActivity(root)["location"].(map[string]any)["coordinates"] = []any{139.7}
			}),
			wantPath: "days[0].activities[0].location.coordinates",
		},
		{
			name: "coordinates with three elements",
			value: mutate(t, func(root map[string]any) {
				firstActivity(root)["location"].(map[string]any)["coordinates"] = []any{139.7, 35.7, 0.0}
			}),
			wantPath: "days[0].activities[0].location.coordinates",
		},
		{
			name: "coordinates with non-numeric entry",
			value: mutate(t, func(root map[string]any) {
				firstActivity(root)["location"].(map[string]any)["coordinates"] = []any{"139.7", 35.7}
			}),
			wantPath: "days[0].activities[0].location.coordinates[0]",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidatePlan(tc.value)
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}
			found := false
			for _, fe := range verrs {
				if fe.Path == tc.wantPath {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected a violation at %q, got: %v", tc.wantPath, err)
			}
		})
	}
}

// A single pass should report every violation, not stop at the first.
func TestValidatePlanCollectsAllViolations(t *testing.T) {
	value := mutate(t, func(root map[string]any) {
		root["totalCost"] = true
		act := firstActivity(root)
		delete(act, "endTime")
		act["type"] = 5
	})

	_, err := ValidatePlan(value)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 violations, got %d: %v", len(verrs), err)
	}
	msg := err.Error()
	for _, want := range []string{"totalCost", "endTime", "type"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q: %s", want, msg)
		}
	}
}
