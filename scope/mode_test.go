package scope

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		want    Mode
		wantErr bool
	}{
		{name: "global", want: ModeGlobal},
		{name: "local", want: ModeLocal},
		{name: "pure", want: ModePure},
		{name: "scoped", wantErr: true},
		{name: "", wantErr: true},
		{name: "Local", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) expected error, got none", tt.name)
				}
				if !errors.Is(err, ErrInvalidMode) {
					t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeGlobal, "global"},
		{ModeLocal, "local"},
		{ModePure, "pure"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMode_MarshalRoundTrip(t *testing.T) {
	for _, name := range ModeNames() {
		t.Run(name, func(t *testing.T) {
			mode, err := ParseMode(name)
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", name, err)
			}

			data, err := mode.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error = %v", err)
			}

			var back Mode
			if err := back.UnmarshalText(data); err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", data, err)
			}
			if back != mode {
				t.Errorf("round trip = %v, want %v", back, mode)
			}
		})
	}
}

func TestMode_IsValid(t *testing.T) {
	if !ModeLocal.IsValid() {
		t.Error("ModeLocal should be valid")
	}
	if Mode(99).IsValid() {
		t.Error("Mode(99) should not be valid")
	}
}
