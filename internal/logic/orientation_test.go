package logic

import "testing"

func TestClassifierStartsUpright(t *testing.T) {
	c := NewClassifier(DefaultTiltThreshold)
	if c.Inverted() {
		t.Error("new classifier should be upright")
	}
}

func TestClassifierSequence(t *testing.T) {
	c := NewClassifier(DefaultTiltThreshold)

	samples := []int16{50, 50, 250, 250, 199, 200}
	wantInverted := []bool{false, false, true, true, false, true}
	wantChanged := []bool{false, false, true, false, true, true}

	for i, y := range samples {
		inv, changed := c.Process(Acceleration{Y: y})
		if inv != wantInverted[i] {
			t.Errorf("sample %d (y=%d): inverted=%v, want %v", i, y, inv, wantInverted[i])
		}
		if changed != wantChanged[i] {
			t.Errorf("sample %d (y=%d): changed=%v, want %v", i, y, changed, wantChanged[i])
		}
	}
}

func TestClassifierIgnoresOtherAxes(t *testing.T) {
	c := NewClassifier(DefaultTiltThreshold)
	inv, changed := c.Process(Acceleration{X: 1000, Y: 0, Z: 1000})
	if inv || changed {
		t.Errorf("only Y should be classified, got inverted=%v changed=%v", inv, changed)
	}
}

func TestClassifierNegativeY(t *testing.T) {
	c := NewClassifier(DefaultTiltThreshold)
	c.Process(Acceleration{Y: 300})
	inv, changed := c.Process(Acceleration{Y: -300})
	if inv || !changed {
		t.Errorf("expected upright change, got inverted=%v changed=%v", inv, changed)
	}
}
