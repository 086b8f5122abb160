package sensor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sweeney/climate-panel/internal/logic"
)

func writeChannel(t *testing.T, dir, name, value string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(value), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIIOReader(t *testing.T) {
	dir := t.TempDir()
	writeChannel(t, dir, iioTemperature, "23000\n")
	writeChannel(t, dir, iioHumidity, "41600\n")

	r, err := NewIIOReader(dir)
	if err != nil {
		t.Fatalf("NewIIOReader: %v", err)
	}

	temp, err := r.Read(logic.QuantityTemperature)
	if err != nil || temp != 23 {
		t.Errorf("temperature: got (%d, %v), want (23, nil)", temp, err)
	}
	hum, err := r.Read(logic.QuantityHumidity)
	if err != nil || hum != 42 {
		t.Errorf("humidity: got (%d, %v), want (42, nil)", hum, err)
	}
}

func TestIIOReaderMissingChannel(t *testing.T) {
	dir := t.TempDir()
	writeChannel(t, dir, iioTemperature, "23000")

	if _, err := NewIIOReader(dir); err == nil {
		t.Error("expected error for missing humidity channel")
	}
}

func TestIIOReaderFailedRead(t *testing.T) {
	dir := t.TempDir()
	writeChannel(t, dir, iioTemperature, "23000")
	writeChannel(t, dir, iioHumidity, "41000")

	r, err := NewIIOReader(dir)
	if err != nil {
		t.Fatal(err)
	}
	os.Remove(filepath.Join(dir, iioHumidity))

	if _, err := r.Read(logic.QuantityHumidity); !errors.Is(err, ErrReadFailed) {
		t.Errorf("expected ErrReadFailed, got %v", err)
	}
}

func TestParseMilli(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"21499", 21, false},
		{"21500", 22, false},
		{"-1500", -2, false},
		{"  7000\n", 7, false},
		{"garbage", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseMilli(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseMilli(%q): err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrReadFailed) {
			t.Errorf("parseMilli(%q): error should wrap ErrReadFailed", tt.in)
		}
		if got != tt.want {
			t.Errorf("parseMilli(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
