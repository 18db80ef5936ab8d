// README: Structural validation of model-generated plans, reporting every bad field path.
package itinerary

import (
	"fmt"
	"strings"
)

// FieldError reports one schema violation at a JSON path.
type FieldError struct {
	Path    string
	Message string
}

// ValidationErrors is the full set of violations found in one pass.
// A plan is accepted only when this is empty; there is no partial acceptance.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Path + ": " + fe.Message
	}
	return "invalid plan: " + strings.Join(parts, "; ")
}

type planValidator struct {
	errs ValidationErrors
}

func (pv *planValidator) add(path, format string, args ...any) {
	pv.errs = append(pv.errs, FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (pv *planValidator) str(obj map[string]any, path, key string, required bool) (string, bool) {
	raw, ok := obj[key]
	if !ok {
		if required {
			pv.add(path+"."+key, "required field is missing")
		}
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		pv.add(path+"."+key, "expected a string, got %T", raw)
		return "", false
	}
	return s, true
}

// ValidatePlan checks an arbitrary parsed JSON value against the generated-plan
// shape and returns the strongly typed plan. Any violation fails the whole
// value; the returned ValidationErrors names every offending field path.
func ValidatePlan(value any) (*GeneratedPlan, error) {
	pv := &planValidator{}

	root, ok := value.(map[string]any)
	if !ok {
		pv.add("$", "expected a JSON object, got %T", value)
		return nil, pv.errs
	}

	plan := &GeneratedPlan{}

	rawDays, ok := root["days"]
	if !ok {
		pv.add("days", "required field is missing")
	} else if daysArr, ok := rawDays.([]any); !ok {
		pv.add("days", "expected an array, got %T", rawDays)
	} else {
		for i, rawDay := range daysArr {
			plan.Days = append(plan.Days, pv.validateDay(fmt.Sprintf("days[%d]", i), rawDay))
		}
	}

	if rawCost, ok := root["totalCost"]; ok {
		cost, ok := rawCost.(float64)
		if !ok {
			pv.add("totalCost", "expected a number, got %T", rawCost)
		} else {
			plan.TotalCost = &cost
		}
	}

	if len(pv.errs) > 0 {
		return nil, pv.errs
	}
	return plan, nil
}

func (pv *planValidator) validateDay(path string, raw any) DaySchedule {
	var out DaySchedule

	day, ok := raw.(map[string]any)
	if !ok {
		pv.add(path, "expected an object, got %T", raw)
		return out
	}

	if rawNum, ok := day["day"]; !ok {
		pv.add(path+".day", "required field is missing")
	} else if num, ok := rawNum.(float64); !ok {
		pv.add(path+".day", "expected a number, got %T", rawNum)
	} else {
		out.Day = int(num)
	}

	out.Date, _ = pv.str(day, path, "date", true)

	rawActs, ok := day["activities"]
	if !ok {
		pv.add(path+".activities", "required field is missing")
		return out
	}
	acts, ok := rawActs.([]any)
	if !ok {
		pv.add(path+".activities", "expected an array, got %T", rawActs)
		return out
	}
	for i, rawAct := range acts {
		out.Activities = append(out.Activities, pv.validateActivity(fmt.Sprintf("%s.activities[%d]", path, i), rawAct))
	}
	return out
}

func (pv *planValidator) validateActivity(path string, raw any) Activity {
	var out Activity

	act, ok := raw.(map[string]any)
	if !ok {
		pv.add(path, "expected an object, got %T", raw)
		return out
	}

	out.StartTime, _ = pv.str(act, path, "startTime", true)
	out.EndTime, _ = pv.str(act, path, "endTime", true)
	out.Name, _ = pv.str(act, path, "name", true)
	out.Type, _ = pv.str(act, path, "type", true)
	if rawNotes, ok := act["notes"]; ok {
		if notes, ok := rawNotes.(string); ok {
			out.Notes = notes
		} else {
			pv.add(path+".notes", "expected a string, got %T", rawNotes)
		}
	}

	rawLoc, ok := act["location"]
	if !ok {
		pv.add(path+".location", "required field is missing")
		return out
	}
	loc, ok := rawLoc.(map[string]any)
	if !ok {
		pv.add(path+".location", "expected an object, got %T", rawLoc)
		return out
	}
	out.Location.Name, _ = pv.str(loc, path+".location", "name", true)
	out.Location.Address, _ = pv.str(loc, path+".location", "address", true)

	coordPath := path + ".location.coordinates"
	rawCoords, ok := loc["coordinates"]
	if !ok {
		pv.add(coordPath, "required field is missing")
		return out
	}
	coords, ok := rawCoords.([]any)
	if !ok {
		pv.add(coordPath, "expected an array, got %T", rawCoords)
		return out
	}
	if len(coords) != 2 {
		pv.add(coordPath, "expected exactly 2 numbers [longitude, latitude], got %d elements", len(coords))
		return out
	}
	for i, c := range coords {
		num, ok := c.(float64)
		if !ok {
			pv.add(fmt.Sprintf("%s[%d]", coordPath, i), "expected a number, got %T", c)
			continue
		}
		out.Location.Coordinates[i] = num
	}
	return out
}
