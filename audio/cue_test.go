package audio

import "testing"

func TestToneLength(t *testing.T) {
	tests := []struct {
		name  string
		found bool
		notes []note
	}{
		{"found", true, foundNotes},
		{"no path", false, noPathNotes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tone, err := Tone(tt.found)
			if err != nil {
				t.Fatalf("Tone failed: %v", err)
			}

			want := 0
			for _, n := range tt.notes {
				want += SampleRate.N(n.duration)
			}

			got := 0
			buf := make([][2]float64, 512)
			for {
				n, ok := tone.Stream(buf)
				got += n
				if !ok || n == 0 {
					break
				}
			}
			if got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
		})
	}
}

func TestMutedPlayerIsSilent(t *testing.T) {
	p, err := NewPlayer(true)
	if err != nil {
		t.Fatalf("NewPlayer(mute) failed: %v", err)
	}
	if p.Enabled() {
		t.Error("muted player should be disabled")
	}

	// must not touch the speaker
	p.SearchFinished(true)
	p.Close()

	var zero *Player
	zero.SearchFinished(false)
	if zero.Enabled() {
		t.Error("nil player should be disabled")
	}
}
