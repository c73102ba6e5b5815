package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func bufferLogger(buf *bytes.Buffer) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.DebugLevel
	cfg.Output = buf
	return log.NewWithConfig(cfg)
}

func TestFinishRunFault(t *testing.T) {
	vm, err := chip8.New([]byte{0xFF, 0xFF}, chip8.WithLogger(log.NewTestLogger(t)))
	assert.NoError(t, err)
	stepErr := vm.Step()

	var buf bytes.Buffer
	err = finishRun(bufferLogger(&buf), vm, stepErr)
	assert.Error(t, err, "error reported: invalid opcode 0xFFFF at 0x200")
	assert.True(t, errors.Is(err, errReported))
	var opErr *chip8.InvalidOpcodeError
	assert.True(t, errors.As(err, &opErr))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "Emulation failed"))
	assert.Equal(t, 1, strings.Count(out, "invalid opcode 0xFFFF"))
	assert.False(t, strings.Contains(out, "VM halted"))
}

func TestFinishRunCancelled(t *testing.T) {
	vm, err := chip8.New([]byte{0x12, 0x00}, chip8.WithLogger(log.NewTestLogger(t)))
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, finishRun(bufferLogger(&buf), vm, context.Canceled))
	assert.True(t, strings.Contains(buf.String(), "Emulation stopped"))
	assert.False(t, strings.Contains(buf.String(), "Emulation failed"))
}
