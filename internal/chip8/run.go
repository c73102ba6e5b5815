package chip8

import (
	"context"
	"fmt"
	"time"
)

// DefaultClockRate is the default number of instructions executed per second.
const DefaultClockRate = 500

// Host is the collaborator that feeds input to the VM and presents its output.
type Host interface {
	// Keys returns the current keypad state. It is called once per cycle.
	Keys() Keys
	// Draw presents the frame buffer. It is called at most once per frame
	// and only when the buffer changed.
	Draw(d *Display) error
	// Beep is called whenever the sound signal turns on or off.
	Beep(active bool)
}

// Run executes instructions at clockRate per second and ticks the timers at
// 60Hz until ctx is cancelled or a fatal error occurs. Both clocks are served
// from the calling goroutine, so instructions and timer ticks never overlap.
// clockRate is a target: ticks missed while the host draws are dropped, so a
// host whose Draw blocks lowers the effective rate.
func (vm *VM) Run(ctx context.Context, host Host, clockRate int) error {
	if clockRate <= 0 {
		return fmt.Errorf("invalid clock rate %d", clockRate)
	}

	clock := time.NewTicker(time.Second / time.Duration(clockRate))
	defer clock.Stop()
	frame := time.NewTicker(TimerInterval)
	defer frame.Stop()

	beeping := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-clock.C:
			vm.SetKeys(host.Keys())
			if err := vm.Step(); err != nil {
				return err
			}

		case <-frame.C:
			// the signal is sampled before the tick so that a sound timer
			// of N stays audible for N frames
			if active := vm.SoundActive(); active != beeping {
				beeping = active
				host.Beep(active)
			}
			vm.TickTimers()
			if vm.display.Dirty() {
				if err := host.Draw(&vm.display); err != nil {
					return fmt.Errorf("drawing frame: %w", err)
				}
				vm.display.ClearDirty()
			}
		}
	}
}
