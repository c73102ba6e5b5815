package config

import (
	"testing"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestRunValidate(t *testing.T) {
	valid := DefaultRun()
	valid.ROM = "pong.ch8"

	tests := []struct {
		name    string
		modify  func(r *Run)
		wantErr string
	}{
		{"defaults", func(r *Run) {}, ""},
		{"no rom", func(r *Run) { r.ROM = "" }, "no rom given"},
		{"zero clock", func(r *Run) { r.ClockRate = 0 }, "invalid clock rate 0"},
		{"negative scale", func(r *Run) { r.Scale = -1 }, "invalid scale -1"},
		{"load address in font", func(r *Run) { r.LoadAddress = 0x010 }, "load address 0x010 outside of 0x050-0xFFE"},
		{"load address at end", func(r *Run) { r.LoadAddress = 0xFFF }, "load address 0xFFF outside of 0x050-0xFFE"},
		{"eti 660 load address", func(r *Run) { r.LoadAddress = 0x600 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.modify(&r)
			err := r.Validate()
			if tt.wantErr != "" {
				assert.Error(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVMOptions(t *testing.T) {
	r := DefaultRun()
	r.LoadAddress = 0x300
	r.Quirks.JumpUsesV0 = true

	vm, err := chip8.New([]byte{0x13, 0x00}, r.VMOptions(log.NewTestLogger(t))...)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x300), vm.PC())
}

func TestCreateLogger(t *testing.T) {
	assert.Equal(t, log.DebugLevel, CreateLogger(true, false).Level())
	assert.Equal(t, log.ErrorLevel, CreateLogger(false, true).Level())
	assert.Equal(t, log.InfoLevel, CreateLogger(false, false).Level())
}
