package terminal

import (
	"bytes"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"256", ColorMode256, false},
		{"truecolor", ColorModeTrueColor, false},
		{"24bit", ColorModeTrueColor, false},
		{"true", ColorModeTrueColor, false},
		{"mono", ColorMode256, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColorMode(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, key := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(key, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("COLORTERM=truecolor should detect truecolor")
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if DetectColorMode() != ColorMode256 {
		t.Error("plain xterm-256color should detect 256")
	}

	t.Setenv("TERM", "xterm-direct")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("xterm-direct should detect truecolor")
	}
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.Bytes()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiSGR0, csiRIS} {
		if !bytes.Contains(out, seq) {
			t.Errorf("reset output missing %q", seq)
		}
	}
}
