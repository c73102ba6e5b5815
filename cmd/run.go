package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/bradford-hamilton/chippy/internal/audio"
	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/bradford-hamilton/chippy/internal/config"
	"github.com/bradford-hamilton/chippy/internal/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

var runOpts = config.DefaultRun()

// runCmd runs the chippy virtual machine until the window is closed or the program faults
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  runChippy,
}

func init() {
	flags := runCmd.Flags()
	flags.IntVar(&runOpts.ClockRate, "clock", runOpts.ClockRate, "instructions executed per second")
	flags.Float64Var(&runOpts.Scale, "scale", runOpts.Scale, "window pixels per display pixel")
	flags.Uint16Var(&runOpts.LoadAddress, "load-address", runOpts.LoadAddress, "address the rom is loaded at")
	flags.StringVar(&runOpts.BeepFile, "beep", "", "mp3 file to play as beep instead of the built-in tone")
	flags.BoolVar(&runOpts.Trace, "trace", false, "log every executed instruction (needs --debug)")
	flags.BoolVar(&runOpts.Quirks.ShiftUsesVY, "quirk-shift-vy", false, "8xy6/8xyE shift VY into VX (COSMAC VIP)")
	flags.BoolVar(&runOpts.Quirks.JumpUsesV0, "quirk-jump-v0", false, "Bnnn jumps to nnn + V0 (COSMAC VIP)")
	flags.BoolVar(&runOpts.Quirks.LoadStoreIncrementsI, "quirk-increment-i", false, "Fx55/Fx65 advance I (COSMAC VIP)")
}

func runChippy(cmd *cobra.Command, args []string) error {
	runOpts.ROM = args[0]
	runOpts.Debug, runOpts.Quiet = debug, quiet
	if err := runOpts.Validate(); err != nil {
		return err
	}
	logger := config.CreateLogger(runOpts.Debug, runOpts.Quiet)

	rom, err := os.ReadFile(runOpts.ROM)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}
	vm, err := chip8.New(rom, runOpts.VMOptions(logger)...)
	if err != nil {
		return fmt.Errorf("error creating a new chip-8 VM: %w", err)
	}
	logger.Info("Starting emulation",
		log.String("rom", runOpts.ROM),
		log.Int("size", len(rom)),
		log.Int("clock", runOpts.ClockRate))

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	// pixelgl needs the main thread, the emulation runs inside of it
	var runErr error
	pixelgl.Run(func() {
		runErr = emulate(ctx, cancel, logger, vm)
	})
	return runErr
}

func emulate(ctx context.Context, stop context.CancelFunc, logger *log.Logger, vm *chip8.VM) error {
	spk, err := audio.NewSpeaker(runOpts.BeepFile)
	if err != nil {
		logger.Warn("Audio disabled", log.Err(err))
	}

	var beeper pixel.Beeper
	if spk != nil {
		defer spk.Close()
		beeper = spk
	}

	window, err := pixel.NewWindow(runOpts.Scale, beeper, stop)
	if err != nil {
		return err
	}
	defer window.Destroy()

	return finishRun(logger, vm, vm.Run(ctx, window, runOpts.ClockRate))
}

// finishRun logs how the emulation ended. A fault is logged once here and
// returned marked as reported.
func finishRun(logger *log.Logger, vm *chip8.VM, err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		logger.Info("Emulation stopped", log.Int("cycles", int(vm.Cycles())))
		return nil
	}
	logger.Error("Emulation failed", err, log.Int("cycles", int(vm.Cycles())))
	logger.Debug("Machine state", log.String("registers", vm.String()))
	return fmt.Errorf("%w: %w", errReported, err)
}
