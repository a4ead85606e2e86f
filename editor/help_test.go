package editor

import (
	"strings"
	"testing"
)

func TestHelpText(t *testing.T) {
	text := HelpText()
	for _, want := range []string{"Drawing:", "space", "Generate a maze", "q, ESC"} {
		if !strings.Contains(text, want) {
			t.Errorf("help text is missing %q", want)
		}
	}
	if !strings.HasSuffix(Status{}.String(), CompactHelp()) {
		t.Error("status line should end with the compact help")
	}
}
