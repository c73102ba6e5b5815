package chip8

import "time"

// TimerRate is the frequency at which the delay and sound timers count down.
const TimerRate = 60

// TimerInterval is the wall clock time between two timer ticks.
const TimerInterval = time.Second / TimerRate

// Timers holds the 8-bit delay and sound timers. Both count down to 0 and stay there.
type Timers struct {
	Delay byte
	Sound byte
}

// Tick decrements both timers once. It returns true if the sound timer
// reached 0 on this tick.
func (t *Timers) Tick() (soundStopped bool) {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
		return t.Sound == 0
	}
	return false
}

// SoundActive reports whether the beep should currently be audible.
func (t *Timers) SoundActive() bool {
	return t.Sound > 0
}
