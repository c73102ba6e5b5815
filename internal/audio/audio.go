// Package audio plays the CHIP-8 beep while the sound timer is active.
package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate beep.SampleRate = 44100
	toneFreq                   = 392.0
	toneVolume                 = 0.08
)

// Speaker owns the output device and a paused looping beep stream.
type Speaker struct {
	ctrl   *beep.Ctrl
	active bool
}

// NewSpeaker initializes the speaker. When path is empty a square wave tone
// is generated, otherwise the mp3 file at path is looped while the beep is on.
func NewSpeaker(path string) (*Speaker, error) {
	rate := sampleRate
	var streamer beep.Streamer = squareWave(rate, toneFreq, toneVolume)

	if path != "" {
		s, format, err := loadMP3(path)
		if err != nil {
			return nil, err
		}
		streamer, rate = s, format.SampleRate
	}

	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	ctrl := &beep.Ctrl{Streamer: streamer, Paused: true}
	speaker.Play(ctrl)
	return &Speaker{ctrl: ctrl}, nil
}

// SetStatus turns the beep on or off.
func (s *Speaker) SetStatus(active bool) {
	if s.active == active {
		return
	}
	s.active = active
	speaker.Lock()
	s.ctrl.Paused = !active
	speaker.Unlock()
}

// Close stops all playback.
func (s *Speaker) Close() {
	speaker.Clear()
}

// loadMP3 decodes the whole file into memory and returns an endless loop of it.
func loadMP3(path string) (beep.Streamer, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("opening beep file: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decoding beep file: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return beep.Loop(-1, buffer.Streamer(0, buffer.Len())), format, nil
}

// squareWave returns an endless square wave of the given frequency and volume.
func squareWave(rate beep.SampleRate, freq, volume float64) beep.Streamer {
	phase := 0.0
	step := freq / float64(rate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := volume
			if phase > 0.5 {
				v = -volume
			}
			samples[i][0], samples[i][1] = v, v
			phase = math.Mod(phase+step, 1)
		}
		return len(samples), true
	})
}
