// Package audio plays short tones when a search finishes.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate used for the speaker and every generated tone.
const SampleRate = beep.SampleRate(44100)

type note struct {
	freq     float64
	duration time.Duration
}

var (
	foundNotes  = []note{{880, 80 * time.Millisecond}, {1320, 120 * time.Millisecond}}
	noPathNotes = []note{{330, 120 * time.Millisecond}, {220, 200 * time.Millisecond}}
)

// Player sends cues to the system speaker. A zero Player is silent.
type Player struct {
	enabled bool
}

// NewPlayer initialises the speaker. When mute is set, or the speaker cannot
// be opened, the returned Player stays silent; the error is still reported
// so the caller can log it.
func NewPlayer(mute bool) (*Player, error) {
	if mute {
		return &Player{}, nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return &Player{}, fmt.Errorf("audio init: %w", err)
	}
	return &Player{enabled: true}, nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// SearchFinished plays a rising pair of notes when a path was found and a
// falling pair when it was not.
func (p *Player) SearchFinished(found bool) {
	if !p.Enabled() {
		return
	}
	tone, err := Tone(found)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.Enabled() {
		speaker.Close()
		p.enabled = false
	}
}

// Tone builds the cue for a search outcome.
func Tone(found bool) (beep.Streamer, error) {
	notes := noPathNotes
	if found {
		notes = foundNotes
	}

	seq := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", n.freq, err)
		}
		seq = append(seq, beep.Take(SampleRate.N(n.duration), sine))
	}
	return beep.Seq(seq...), nil
}
