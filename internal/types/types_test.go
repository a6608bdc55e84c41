package types

import (
	"encoding/json"
	"testing"
)

func TestActionWireFormat(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   string
	}{
		{
			name:   "keyboard press",
			action: Key(KeyboardPress, "KeyA"),
			want:   `{"kind":"KeyboardPress","value":"KeyA"}`,
		},
		{
			name:   "keyboard release",
			action: Key(KeyboardRelease, "Shift"),
			want:   `{"kind":"KeyboardRelease","value":"Shift"}`,
		},
		{
			name:   "mouse press",
			action: Button(MousePress, "Mouse1"),
			want:   `{"kind":"MousePress","value":"Mouse1"}`,
		},
		{
			name:   "mouse release",
			action: Button(MouseRelease, "Mouse9"),
			want:   `{"kind":"MouseRelease","value":"Mouse9"}`,
		},
		{
			name:   "mouse move carries coordinates",
			action: Move(10.5, -3),
			want:   `{"kind":"MouseMove","value":{"x":10.5,"y":-3}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.action)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestActionUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Action
	}{
		{
			name: "token value",
			in:   `{"kind":"KeyboardPress","value":"Control"}`,
			want: Key(KeyboardPress, "Control"),
		},
		{
			name: "coordinate value",
			in:   `{"kind":"MouseMove","value":{"x":1,"y":2}}`,
			want: Move(1, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Action
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestActionUnmarshalUnknownKind(t *testing.T) {
	var got Action
	if err := json.Unmarshal([]byte(`{"kind":"Scroll","value":"up"}`), &got); err == nil {
		t.Error("expected error for unknown kind")
	}
}
