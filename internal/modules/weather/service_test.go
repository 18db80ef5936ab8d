// README: Weather fallback tests (no key, no cache).
package weather

import (
	"context"
	"testing"
)

func TestGetFallsBackWithoutAPIKey(t *testing.T) {
	svc := NewService(NewClient(""), nil)

	d, err := svc.Get(context.Background(), 35.68, 139.69)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Condition != "Partly Cloudy" || d.Temperature != 22 {
		t.Errorf("unexpected fallback payload: %+v", d)
	}
}
