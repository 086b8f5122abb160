package tone

import (
	"errors"
	"testing"
	"time"
)

type recordingOutput struct {
	values []int
	failAt int // 1-based call that fails; 0 = never
}

func (o *recordingOutput) SetValue(v int) error {
	o.values = append(o.values, v)
	if o.failAt != 0 && len(o.values) == o.failAt {
		return errors.New("set value failed")
	}
	return nil
}

func TestBuzzerPattern(t *testing.T) {
	out := &recordingOutput{}
	var slept []time.Duration
	b := NewBuzzer(out, []Step{
		{On: 50 * time.Millisecond, Off: 10 * time.Millisecond},
		{On: 30 * time.Millisecond, Off: 0},
	})
	b.sleep = func(d time.Duration) { slept = append(slept, d) }

	if err := b.Emit(); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	// on, off per step, plus the final forced off
	wantValues := []int{1, 0, 1, 0, 0}
	if len(out.values) != len(wantValues) {
		t.Fatalf("values: got %v, want %v", out.values, wantValues)
	}
	for i := range wantValues {
		if out.values[i] != wantValues[i] {
			t.Errorf("value %d: got %d, want %d", i, out.values[i], wantValues[i])
		}
	}

	wantSleeps := []time.Duration{50 * time.Millisecond, 10 * time.Millisecond, 30 * time.Millisecond, 0}
	for i := range wantSleeps {
		if slept[i] != wantSleeps[i] {
			t.Errorf("sleep %d: got %v, want %v", i, slept[i], wantSleeps[i])
		}
	}
}

func TestBuzzerDefaultPattern(t *testing.T) {
	b := NewBuzzer(&recordingOutput{}, nil)
	if b.Duration() != 100*time.Millisecond {
		t.Errorf("Duration: got %v, want 100ms", b.Duration())
	}
}

func TestBuzzerLeavesLineOffOnError(t *testing.T) {
	out := &recordingOutput{failAt: 1}
	b := NewBuzzer(out, nil)
	b.sleep = func(time.Duration) {}

	if err := b.Emit(); err == nil {
		t.Fatal("expected error")
	}
	last := out.values[len(out.values)-1]
	if last != 0 {
		t.Errorf("buzzer left at %d after error", last)
	}
}
