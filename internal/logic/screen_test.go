package logic

import "testing"

func TestNextScreenTransitions(t *testing.T) {
	tests := []struct {
		current Screen
		button  ButtonID
		want    Screen
		changed bool
	}{
		{ScreenHumidity, ButtonNext, ScreenTemperature, true},
		{ScreenTemperature, ButtonNext, ScreenTemperature, false},
		{ScreenTemperature, ButtonPrevious, ScreenHumidity, true},
		{ScreenHumidity, ButtonPrevious, ScreenHumidity, false},
	}

	for _, tt := range tests {
		got, changed := NextScreen(tt.current, tt.button)
		if got != tt.want || changed != tt.changed {
			t.Errorf("NextScreen(%s, %s) = (%s, %v), want (%s, %v)",
				tt.current, tt.button, got, changed, tt.want, tt.changed)
		}
	}
}

func TestNextScreenUnknownButton(t *testing.T) {
	got, changed := NextScreen(ScreenHumidity, ButtonID(0))
	if got != ScreenHumidity || changed {
		t.Errorf("unknown button should be a no-op, got (%s, %v)", got, changed)
	}
}

func TestNextScreenAlwaysValid(t *testing.T) {
	// Every press sequence up to length 8 keeps the selector in the two-state set.
	buttons := []ButtonID{ButtonNext, ButtonPrevious}
	for seq := 0; seq < 1<<8; seq++ {
		s := ScreenHumidity
		for i := 0; i < 8; i++ {
			s, _ = NextScreen(s, buttons[(seq>>i)&1])
			if !s.Valid() {
				t.Fatalf("sequence %08b step %d: invalid screen %d", seq, i, s)
			}
		}
	}
}

func TestScreenQuantity(t *testing.T) {
	if ScreenHumidity.Quantity() != QuantityHumidity {
		t.Error("humidity screen should show humidity")
	}
	if ScreenTemperature.Quantity() != QuantityTemperature {
		t.Error("temperature screen should show temperature")
	}
}

func TestStringers(t *testing.T) {
	if ScreenHumidity.String() != "HUMIDITY" {
		t.Errorf("got %q", ScreenHumidity.String())
	}
	if Screen(7).String() != "Screen(7)" {
		t.Errorf("got %q", Screen(7).String())
	}
	if ButtonPrevious.String() != "PREVIOUS" {
		t.Errorf("got %q", ButtonPrevious.String())
	}
	if QuantityTemperature.String() != "temperature" {
		t.Errorf("got %q", QuantityTemperature.String())
	}
}
