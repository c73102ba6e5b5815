// Package chip8 implements the CHIP-8 virtual machine: memory, registers,
// display buffer, keypad and timers, and the interpreter that executes
// programs against them.
package chip8

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16
	// StackSize is the maximum depth of the call stack.
	StackSize = 16
)

// VM represents the chip-8 virtual machine
type VM struct {
	memory  *Memory
	v       [RegisterCount]byte // 8-bit general purpose registers, VF doubles as flag register
	i       uint16              // index register (0x000 to 0xFFF)
	pc      uint16              // program counter (0x000 to 0xFFF)
	stack   [StackSize]uint16   // return addresses pushed by CALL
	sp      byte                // number of entries on the stack
	timers  Timers
	display Display
	keypad  keypad

	loadAddress uint16
	quirks      Quirks
	rand        io.ByteReader
	logger      *log.Logger
	trace       bool

	cycles uint64
	err    error // first fatal error, the VM is halted once set
}

// Option configures a VM.
type Option func(*VM)

// WithLoadAddress sets the address the ROM is copied to and execution starts at.
func WithLoadAddress(addr uint16) Option {
	return func(vm *VM) {
		vm.loadAddress = addr
	}
}

// WithRandom sets the byte source used by the RND instruction.
func WithRandom(r io.ByteReader) Option {
	return func(vm *VM) {
		vm.rand = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// WithQuirks selects the behavior of ambiguous opcodes.
func WithQuirks(q Quirks) Option {
	return func(vm *VM) {
		vm.quirks = q
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace(enabled bool) Option {
	return func(vm *VM) {
		vm.trace = enabled
	}
}

// New handles initializing a VM, loading the font set into memory, and loading the ROM into memory
func New(rom []byte, opts ...Option) (*VM, error) {
	vm := &VM{
		memory:      newMemory(),
		loadAddress: DefaultLoadAddress,
		rand:        randomSource{},
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.logger == nil {
		vm.logger = log.NewWithConfig(log.DefaultConfig())
	}

	if int(vm.loadAddress) < fontEnd || int(vm.loadAddress) >= MemorySize {
		return nil, &MemoryError{Address: vm.loadAddress, ReadOnly: int(vm.loadAddress) < fontEnd}
	}
	if err := vm.memory.load(vm.loadAddress, rom); err != nil {
		return nil, fmt.Errorf("loading rom (%d bytes) at 0x%03X: %w", len(rom), vm.loadAddress, err)
	}
	vm.pc = vm.loadAddress
	vm.display.Clear()

	vm.logger.Debug("Rom loaded",
		log.String("address", fmt.Sprintf("0x%03X", vm.loadAddress)),
		log.Int("size", len(rom)))
	return vm, nil
}

// Step fetches, decodes and executes a single instruction. While the VM waits
// for a key press it returns without executing anything. Once a fatal error
// occurred every call returns that error.
func (vm *VM) Step() error {
	if vm.err != nil {
		return vm.err
	}
	if vm.keypad.waiting {
		return nil
	}

	// One opcode is 2 bytes long, the byte at pc is the high byte.
	opcode, err := vm.memory.ReadWord(vm.pc)
	if err != nil {
		return vm.halt(err)
	}
	ins, err := Decode(vm.pc, opcode)
	if err != nil {
		return vm.halt(err)
	}

	if vm.trace {
		vm.logger.Debug("exec",
			log.String("pc", fmt.Sprintf("0x%03X", vm.pc)),
			log.String("opcode", fmt.Sprintf("0x%04X", opcode)),
			log.String("instruction", ins.String()))
	}

	if err := vm.execute(ins); err != nil {
		return vm.halt(&ExecError{Address: vm.pc, Opcode: opcode, Err: err})
	}
	vm.cycles++
	return nil
}

// halt records the fatal error. Reporting it is left to the host.
func (vm *VM) halt(err error) error {
	vm.err = err
	vm.logger.Debug("VM halted", log.Err(err))
	return err
}

// SetKeys replaces the keypad state. It resolves a pending key wait when a key
// is down that was up in the previous state.
func (vm *VM) SetKeys(keys Keys) {
	if key, ok := vm.keypad.set(keys); ok {
		vm.v[vm.keypad.register] = key
	}
}

// TickTimers advances the delay and sound timers by one 60Hz tick.
// It returns true if the sound timer reached 0 on this tick.
func (vm *VM) TickTimers() bool {
	return vm.timers.Tick()
}

// SoundActive reports whether the beep signal is on.
func (vm *VM) SoundActive() bool {
	return vm.timers.SoundActive()
}

// Timers returns a copy of the delay and sound timers.
func (vm *VM) Timers() Timers {
	return vm.timers
}

// Display returns the frame buffer.
func (vm *VM) Display() *Display {
	return &vm.display
}

// Memory returns the address space.
func (vm *VM) Memory() *Memory {
	return vm.memory
}

// PC returns the program counter.
func (vm *VM) PC() uint16 {
	return vm.pc
}

// I returns the index register.
func (vm *VM) I() uint16 {
	return vm.i
}

// V returns the value of register Vx.
func (vm *VM) V(x byte) byte {
	return vm.v[x&0xF]
}

// Registers returns a copy of V0-VF.
func (vm *VM) Registers() [RegisterCount]byte {
	return vm.v
}

// StackDepth returns the number of return addresses on the call stack.
func (vm *VM) StackDepth() int {
	return int(vm.sp)
}

// Waiting reports whether execution is suspended until a key is pressed.
func (vm *VM) Waiting() bool {
	return vm.keypad.waiting
}

// Cycles returns the number of instructions executed.
func (vm *VM) Cycles() uint64 {
	return vm.cycles
}

// Err returns the fatal error that halted the VM, or nil.
func (vm *VM) Err() error {
	return vm.err
}

// String dumps the register state.
func (vm *VM) String() string {
	return fmt.Sprintf(`pc: 0x%03X
sp: %d
i: 0x%03X
dt: %d
st: %d
---Registers---
V0: %02X V1: %02X V2: %02X V3: %02X
V4: %02X V5: %02X V6: %02X V7: %02X
V8: %02X V9: %02X VA: %02X VB: %02X
VC: %02X VD: %02X VE: %02X VF: %02X`,
		vm.pc, vm.sp, vm.i, vm.timers.Delay, vm.timers.Sound,
		vm.v[0], vm.v[1], vm.v[2], vm.v[3],
		vm.v[4], vm.v[5], vm.v[6], vm.v[7],
		vm.v[8], vm.v[9], vm.v[10], vm.v[11],
		vm.v[12], vm.v[13], vm.v[14], vm.v[15],
	)
}

// randomSource is the default RND source.
type randomSource struct{}

func (randomSource) ReadByte() (byte, error) {
	return byte(rand.UintN(256)), nil
}
