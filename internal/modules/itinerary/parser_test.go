// README: Reply-extraction tests against the kinds of text models actually emit.
package itinerary

import (
	"errors"
	"testing"
)

func TestExtractPlanBareJSON(t *testing.T) {
	plan, err := ExtractPlan(validPlanJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Days) != 1 || len(plan.Days[0].Activities) != 2 {
		t.Errorf("unexpected plan shape: %+v", plan)
	}
}

func TestExtractPlanFencedWithProse(t *testing.T) {
	raw := "Sure! Here is your itinerary {} as requested.\n\n```json\n" +
		validPlanJSON + "\n```\n\nLet me know if you'd like any changes."

	plan, err := ExtractPlan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Days[0].Activities[0].Name != "Senso-ji Temple" {
		t.Errorf("wrong payload extracted: %+v", plan.Days[0])
	}
}

func TestExtractPlanFenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n" + validPlanJSON + "\n```"
	if _, err := ExtractPlan(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractPlanUnfencedWithTrailingCommentary(t *testing.T) {
	raw := validPlanJSON + "\n\nNote: prices are estimates and may vary by season."
	if _, err := ExtractPlan(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractPlanBracesInsideStrings(t *testing.T) {
	raw := `The plan below uses "{" and "}" in notes.` + "\n```json\n" +
		`{"days":[{"day":1,"date":"2025-04-01","activities":[{"startTime":"09:00","endTime":"10:00","name":"Walk {old town}","type":"culture","location":{"name":"Gion","address":"Gion, Kyoto","coordinates":[135.7755,35.0037]},"notes":"Look for the \"{hidden}\" alley"}]}]}` +
		"\n```"

	plan, err := ExtractPlan(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Days[0].Activities[0].Name != "Walk {old town}" {
		t.Errorf("brace-aware scan mangled the payload: %+v", plan.Days[0].Activities[0])
	}
}

func TestExtractPlanNoJSON(t *testing.T) {
	_, err := ExtractPlan("Sorry, I can't produce an itinerary for those dates.")
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtractPlanTruncatedReply(t *testing.T) {
	// A reply cut off mid-object never balances; the greedy slice still finds
	// a candidate, which must fail as malformed rather than as "no JSON".
	raw := `{"days": [{"day": 1, "date": "2025-04-01", "activities": [{"name": "x"}`
	_, err := ExtractPlan(raw)
	if !errors.Is(err, ErrMalformedJSON) {
		t.Errorf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestExtractPlanValidJSONWrongShape(t *testing.T) {
	_, err := ExtractPlan(`{"days": "see attached PDF"}`)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Errorf("expected ValidationErrors, got %v", err)
	}
	if errors.Is(err, ErrNoJSON) || errors.Is(err, ErrMalformedJSON) {
		t.Errorf("schema failure must stay distinct from extraction failures: %v", err)
	}
}
