package keymap

import "testing"

func TestLookupKeyTiers(t *testing.T) {
	table := New(
		map[uint16]string{10: "KeyA", 20: "Shift", 21: "Shift"},
		map[uint16]string{30: ";"},
	)

	tests := []struct {
		name   string
		raw    uint16
		want   string
		wantOK bool
	}{
		{name: "named key", raw: 10, want: "KeyA", wantOK: true},
		{name: "left variant", raw: 20, want: "Shift", wantOK: true},
		{name: "right variant", raw: 21, want: "Shift", wantOK: true},
		{name: "fallback punctuation", raw: 30, want: ";", wantOK: true},
		{name: "unmapped key", raw: 99, want: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.LookupKey(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LookupKey(%d) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLookupKeyNamedWinsOverFallback(t *testing.T) {
	table := New(
		map[uint16]string{10: "KeyA"},
		map[uint16]string{10: ","},
	)
	got, ok := table.LookupKey(10)
	if !ok || got != "KeyA" {
		t.Errorf("LookupKey(10) = %q, %v; want exact tier to win", got, ok)
	}
}

func TestButtonName(t *testing.T) {
	tests := []struct {
		code uint16
		want string
	}{
		{1, "Mouse1"},
		{2, "Mouse2"},
		{3, "Mouse3"},
		{8, "Mouse8"},
		{42, "Mouse42"},
	}
	for _, tt := range tests {
		if got := ButtonName(tt.code); got != tt.want {
			t.Errorf("ButtonName(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
