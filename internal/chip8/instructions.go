package chip8

import "fmt"

// execute runs a decoded instruction. On error the VM state is left as it
// was before the instruction.
func (vm *VM) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCLS:
		vm.cls()
	case OpRET:
		return vm.ret()
	case OpJP:
		vm.pc = ins.NNN
	case OpCALL:
		return vm.call(ins.NNN)
	case OpSEImm:
		vm.skipIf(vm.v[x] == ins.KK)
	case OpSNEImm:
		vm.skipIf(vm.v[x] != ins.KK)
	case OpSEReg:
		vm.skipIf(vm.v[x] == vm.v[y])
	case OpLDImm:
		vm.v[x] = ins.KK
		vm.pc += 2
	case OpADDImm:
		vm.v[x] += ins.KK
		vm.pc += 2
	case OpLDReg:
		vm.v[x] = vm.v[y]
		vm.pc += 2
	case OpOR:
		vm.v[x] |= vm.v[y]
		vm.pc += 2
	case OpAND:
		vm.v[x] &= vm.v[y]
		vm.pc += 2
	case OpXOR:
		vm.v[x] ^= vm.v[y]
		vm.pc += 2
	case OpADDReg:
		vm.add(x, y)
	case OpSUB:
		vm.sub(x, vm.v[x], vm.v[y])
	case OpSUBN:
		vm.sub(x, vm.v[y], vm.v[x])
	case OpSHR:
		vm.shr(x, y)
	case OpSHL:
		vm.shl(x, y)
	case OpSNEReg:
		vm.skipIf(vm.v[x] != vm.v[y])
	case OpLDI:
		vm.i = ins.NNN
		vm.pc += 2
	case OpJPOffset:
		vm.jumpOffset(ins)
	case OpRND:
		return vm.rnd(x, ins.KK)
	case OpDRW:
		return vm.drw(x, y, ins.N)
	case OpSKP:
		vm.skipIf(vm.keypad.pressed(vm.v[x]))
	case OpSKNP:
		vm.skipIf(!vm.keypad.pressed(vm.v[x]))
	case OpLDVxDT:
		vm.v[x] = vm.timers.Delay
		vm.pc += 2
	case OpLDVxK:
		vm.keypad.waiting = true
		vm.keypad.register = x
		vm.pc += 2
	case OpLDDTVx:
		vm.timers.Delay = vm.v[x]
		vm.pc += 2
	case OpLDSTVx:
		vm.timers.Sound = vm.v[x]
		vm.pc += 2
	case OpADDI:
		vm.addI(x)
	case OpLDF:
		vm.i = fontSprite(vm.v[x])
		vm.pc += 2
	case OpLDB:
		return vm.bcd(x)
	case OpLDStore:
		return vm.store(x)
	case OpLDLoad:
		return vm.load(x)
	default:
		return fmt.Errorf("unhandled instruction %s", ins)
	}
	return nil
}

func (vm *VM) skipIf(cond bool) {
	if cond {
		vm.pc += 4
	} else {
		vm.pc += 2
	}
}

func (vm *VM) cls() {
	vm.display.Clear()
	vm.pc += 2
}

func (vm *VM) ret() error {
	if vm.sp == 0 {
		return ErrStackUnderflow
	}
	vm.sp--
	vm.pc = vm.stack[vm.sp]
	return nil
}

func (vm *VM) call(nnn uint16) error {
	if int(vm.sp) == StackSize {
		return ErrStackOverflow
	}
	vm.stack[vm.sp] = vm.pc + 2
	vm.sp++
	vm.pc = nnn
	return nil
}

// Set VF to 01 if a carry occurs
// Set VF to 00 if a carry does not occur
func (vm *VM) add(x, y byte) {
	sum := uint16(vm.v[x]) + uint16(vm.v[y])
	vm.v[x] = byte(sum)
	vm.v[0xF] = byte(sum >> 8)
	vm.pc += 2
}

// sub stores a - b in Vx.
// Set VF to 00 if a borrow occurs
// Set VF to 01 if a borrow does not occur
func (vm *VM) sub(x, a, b byte) {
	vm.v[x] = a - b
	if a >= b {
		vm.v[0xF] = 1
	} else {
		vm.v[0xF] = 0
	}
	vm.pc += 2
}

// Set register VF to the least significant bit prior to the shift
func (vm *VM) shr(x, y byte) {
	src := vm.v[x]
	if vm.quirks.ShiftUsesVY {
		src = vm.v[y]
	}
	vm.v[x] = src >> 1
	vm.v[0xF] = src & 0x01
	vm.pc += 2
}

// Set register VF to the most significant bit prior to the shift
func (vm *VM) shl(x, y byte) {
	src := vm.v[x]
	if vm.quirks.ShiftUsesVY {
		src = vm.v[y]
	}
	vm.v[x] = src << 1
	vm.v[0xF] = src >> 7
	vm.pc += 2
}

func (vm *VM) jumpOffset(ins Instruction) {
	offset := vm.v[ins.X]
	if vm.quirks.JumpUsesV0 {
		offset = vm.v[0]
	}
	vm.pc = ins.NNN + uint16(offset)
}

func (vm *VM) rnd(x, kk byte) error {
	b, err := vm.rand.ReadByte()
	if err != nil {
		return fmt.Errorf("reading random byte: %w", err)
	}
	vm.v[x] = b & kk
	vm.pc += 2
	return nil
}

// Draw a sprite at position VX, VY with N bytes of sprite data starting at the address stored in I
// Set VF to 01 if any set pixels are changed to unset, and 00 otherwise
func (vm *VM) drw(x, y, n byte) error {
	sprite, err := vm.memory.Slice(vm.i, int(n))
	if err != nil {
		return err
	}
	if vm.display.Draw(vm.v[x], vm.v[y], sprite) {
		vm.v[0xF] = 1
	} else {
		vm.v[0xF] = 0
	}
	vm.pc += 2
	return nil
}

// I wraps to 12 bits, VF reports whether the sum left the address space.
func (vm *VM) addI(x byte) {
	sum := vm.i + uint16(vm.v[x])
	vm.i = sum & 0x0FFF
	if sum > 0x0FFF {
		vm.v[0xF] = 1
	} else {
		vm.v[0xF] = 0
	}
	vm.pc += 2
}

// Store the binary-coded decimal equivalent of the value stored in register VX at addresses I, I+1, and I+2
func (vm *VM) bcd(x byte) error {
	val := vm.v[x]
	if err := vm.writeMemory(vm.i, []byte{val / 100, (val / 10) % 10, val % 10}); err != nil {
		return err
	}
	vm.pc += 2
	return nil
}

// Store the values of registers V0 to VX inclusive in memory starting at address I
func (vm *VM) store(x byte) error {
	if err := vm.writeMemory(vm.i, vm.v[:x+1]); err != nil {
		return err
	}
	if vm.quirks.LoadStoreIncrementsI {
		vm.i += uint16(x) + 1
	}
	vm.pc += 2
	return nil
}

// Fill registers V0 to VX inclusive with the values stored in memory starting at address I
func (vm *VM) load(x byte) error {
	data, err := vm.memory.Slice(vm.i, int(x)+1)
	if err != nil {
		return err
	}
	copy(vm.v[:], data)
	if vm.quirks.LoadStoreIncrementsI {
		vm.i += uint16(x) + 1
	}
	vm.pc += 2
	return nil
}

// writeMemory checks the whole range before writing so that a fault leaves memory untouched.
func (vm *VM) writeMemory(addr uint16, data []byte) error {
	last := int(addr) + len(data) - 1
	if last >= MemorySize {
		return &MemoryError{Address: uint16(max(int(addr), MemorySize))}
	}
	if int(addr) < fontEnd {
		return &MemoryError{Address: addr, ReadOnly: true}
	}
	for k, b := range data {
		if err := vm.memory.Write(addr+uint16(k), b); err != nil {
			return err
		}
	}
	return nil
}
