package gpio

import (
	"testing"

	"github.com/sweeney/climate-panel/internal/logic"
)

func TestButtonFor(t *testing.T) {
	tests := []struct {
		offset int
		want   logic.ButtonID
		ok     bool
	}{
		{DefaultPins.Next, logic.ButtonNext, true},
		{DefaultPins.Previous, logic.ButtonPrevious, true},
		{DefaultPins.Buzzer, 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		got, ok := DefaultPins.ButtonFor(tt.offset)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ButtonFor(%d) = (%v, %v), want (%v, %v)", tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEnablesOrder(t *testing.T) {
	got := DefaultPins.Enables()
	want := []int{32, 5, 23}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Enables()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFakeOutput(t *testing.T) {
	f := &FakeOutput{}
	_ = f.SetValue(1)
	_ = f.SetValue(0)
	_ = f.SetValue(1)
	_ = f.Close()

	got := f.Values()
	want := []int{1, 0, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("values: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("values[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if !f.Closed() {
		t.Error("expected Closed")
	}
}
