package chip8

import "fmt"

// Op identifies a decoded instruction.
type Op uint8

// Instruction set.
const (
	OpCLS     Op = iota + 1 // 00E0
	OpRET                   // 00EE
	OpJP                    // 1nnn
	OpCALL                  // 2nnn
	OpSEImm                 // 3xkk
	OpSNEImm                // 4xkk
	OpSEReg                 // 5xy0
	OpLDImm                 // 6xkk
	OpADDImm                // 7xkk
	OpLDReg                 // 8xy0
	OpOR                    // 8xy1
	OpAND                   // 8xy2
	OpXOR                   // 8xy3
	OpADDReg                // 8xy4
	OpSUB                   // 8xy5
	OpSHR                   // 8xy6
	OpSUBN                  // 8xy7
	OpSHL                   // 8xyE
	OpSNEReg                // 9xy0
	OpLDI                   // Annn
	OpJPOffset              // Bnnn
	OpRND                   // Cxkk
	OpDRW                   // Dxyn
	OpSKP                   // Ex9E
	OpSKNP                  // ExA1
	OpLDVxDT                // Fx07
	OpLDVxK                 // Fx0A
	OpLDDTVx                // Fx15
	OpLDSTVx                // Fx18
	OpADDI                  // Fx1E
	OpLDF                   // Fx29
	OpLDB                   // Fx33
	OpLDStore               // Fx55
	OpLDLoad                // Fx65
)

var opNames = map[Op]string{
	OpCLS: "CLS", OpRET: "RET", OpJP: "JP", OpCALL: "CALL",
	OpSEImm: "SE", OpSNEImm: "SNE", OpSEReg: "SE", OpLDImm: "LD",
	OpADDImm: "ADD", OpLDReg: "LD", OpOR: "OR", OpAND: "AND",
	OpXOR: "XOR", OpADDReg: "ADD", OpSUB: "SUB", OpSHR: "SHR",
	OpSUBN: "SUBN", OpSHL: "SHL", OpSNEReg: "SNE", OpLDI: "LD",
	OpJPOffset: "JP", OpRND: "RND", OpDRW: "DRW", OpSKP: "SKP",
	OpSKNP: "SKNP", OpLDVxDT: "LD", OpLDVxK: "LD", OpLDDTVx: "LD",
	OpLDSTVx: "LD", OpADDI: "ADD", OpLDF: "LD", OpLDB: "LD",
	OpLDStore: "LD", OpLDLoad: "LD",
}

// Name returns the assembler mnemonic of the operation.
func (o Op) Name() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "???"
}

// Instruction is a decoded opcode word. Only the fields used by Op are meaningful.
type Instruction struct {
	Op     Op
	Opcode uint16
	X      byte   // register identifier from the second nibble
	Y      byte   // register identifier from the third nibble
	N      byte   // last nibble
	KK     byte   // last 8 bits
	NNN    uint16 // last 12 bits
}

// Decode maps the opcode word fetched at address to an instruction.
func Decode(address, opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode: opcode,
		X:      byte((opcode & 0x0F00) >> 8),
		Y:      byte((opcode & 0x00F0) >> 4),
		N:      byte(opcode & 0x000F),
		KK:     byte(opcode & 0x00FF),
		NNN:    opcode & 0x0FFF,
	}

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			ins.Op = OpCLS
		case 0x00EE:
			ins.Op = OpRET
		}
	case 0x1000:
		ins.Op = OpJP
	case 0x2000:
		ins.Op = OpCALL
	case 0x3000:
		ins.Op = OpSEImm
	case 0x4000:
		ins.Op = OpSNEImm
	case 0x5000:
		if ins.N == 0 {
			ins.Op = OpSEReg
		}
	case 0x6000:
		ins.Op = OpLDImm
	case 0x7000:
		ins.Op = OpADDImm
	case 0x8000:
		switch ins.N {
		case 0x0:
			ins.Op = OpLDReg
		case 0x1:
			ins.Op = OpOR
		case 0x2:
			ins.Op = OpAND
		case 0x3:
			ins.Op = OpXOR
		case 0x4:
			ins.Op = OpADDReg
		case 0x5:
			ins.Op = OpSUB
		case 0x6:
			ins.Op = OpSHR
		case 0x7:
			ins.Op = OpSUBN
		case 0xE:
			ins.Op = OpSHL
		}
	case 0x9000:
		if ins.N == 0 {
			ins.Op = OpSNEReg
		}
	case 0xA000:
		ins.Op = OpLDI
	case 0xB000:
		ins.Op = OpJPOffset
	case 0xC000:
		ins.Op = OpRND
	case 0xD000:
		ins.Op = OpDRW
	case 0xE000:
		switch ins.KK {
		case 0x9E:
			ins.Op = OpSKP
		case 0xA1:
			ins.Op = OpSKNP
		}
	case 0xF000:
		switch ins.KK {
		case 0x07:
			ins.Op = OpLDVxDT
		case 0x0A:
			ins.Op = OpLDVxK
		case 0x15:
			ins.Op = OpLDDTVx
		case 0x18:
			ins.Op = OpLDSTVx
		case 0x1E:
			ins.Op = OpADDI
		case 0x29:
			ins.Op = OpLDF
		case 0x33:
			ins.Op = OpLDB
		case 0x55:
			ins.Op = OpLDStore
		case 0x65:
			ins.Op = OpLDLoad
		}
	}

	if ins.Op == 0 {
		return Instruction{}, &InvalidOpcodeError{Opcode: opcode, Address: address}
	}
	return ins, nil
}

// String formats the instruction in the common Cowgod assembler syntax.
func (ins Instruction) String() string {
	name := ins.Op.Name()
	switch ins.Op {
	case OpCLS, OpRET:
		return name
	case OpJP, OpCALL:
		return fmt.Sprintf("%s 0x%03X", name, ins.NNN)
	case OpSEImm, OpSNEImm, OpLDImm, OpADDImm, OpRND:
		return fmt.Sprintf("%s V%X, 0x%02X", name, ins.X, ins.KK)
	case OpSEReg, OpLDReg, OpOR, OpAND, OpXOR, OpADDReg, OpSUB, OpSUBN, OpSNEReg:
		return fmt.Sprintf("%s V%X, V%X", name, ins.X, ins.Y)
	case OpSHR, OpSHL, OpSKP, OpSKNP:
		return fmt.Sprintf("%s V%X", name, ins.X)
	case OpLDI:
		return fmt.Sprintf("%s I, 0x%03X", name, ins.NNN)
	case OpJPOffset:
		return fmt.Sprintf("%s V%X, 0x%03X", name, ins.X, ins.NNN)
	case OpDRW:
		return fmt.Sprintf("%s V%X, V%X, %d", name, ins.X, ins.Y, ins.N)
	case OpLDVxDT:
		return fmt.Sprintf("%s V%X, DT", name, ins.X)
	case OpLDVxK:
		return fmt.Sprintf("%s V%X, K", name, ins.X)
	case OpLDDTVx:
		return fmt.Sprintf("%s DT, V%X", name, ins.X)
	case OpLDSTVx:
		return fmt.Sprintf("%s ST, V%X", name, ins.X)
	case OpADDI:
		return fmt.Sprintf("%s I, V%X", name, ins.X)
	case OpLDF:
		return fmt.Sprintf("%s F, V%X", name, ins.X)
	case OpLDB:
		return fmt.Sprintf("%s B, V%X", name, ins.X)
	case OpLDStore:
		return fmt.Sprintf("%s [I], V%X", name, ins.X)
	case OpLDLoad:
		return fmt.Sprintf("%s V%X, [I]", name, ins.X)
	default:
		return fmt.Sprintf("DW 0x%04X", ins.Opcode)
	}
}
