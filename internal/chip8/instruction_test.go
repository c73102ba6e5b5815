package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		op     Op
		text   string
	}{
		{0x00E0, OpCLS, "CLS"},
		{0x00EE, OpRET, "RET"},
		{0x1123, OpJP, "JP 0x123"},
		{0x2ABC, OpCALL, "CALL 0xABC"},
		{0x3A42, OpSEImm, "SE VA, 0x42"},
		{0x4B01, OpSNEImm, "SNE VB, 0x01"},
		{0x5120, OpSEReg, "SE V1, V2"},
		{0x6122, OpLDImm, "LD V1, 0x22"},
		{0x73FF, OpADDImm, "ADD V3, 0xFF"},
		{0x8120, OpLDReg, "LD V1, V2"},
		{0x8121, OpOR, "OR V1, V2"},
		{0x8122, OpAND, "AND V1, V2"},
		{0x8123, OpXOR, "XOR V1, V2"},
		{0x8124, OpADDReg, "ADD V1, V2"},
		{0x8125, OpSUB, "SUB V1, V2"},
		{0x8126, OpSHR, "SHR V1"},
		{0x8127, OpSUBN, "SUBN V1, V2"},
		{0x812E, OpSHL, "SHL V1"},
		{0x9120, OpSNEReg, "SNE V1, V2"},
		{0xABCD, OpLDI, "LD I, 0xBCD"},
		{0xB210, OpJPOffset, "JP V2, 0x210"},
		{0xC30F, OpRND, "RND V3, 0x0F"},
		{0xD12A, OpDRW, "DRW V1, V2, 10"},
		{0xE59E, OpSKP, "SKP V5"},
		{0xE5A1, OpSKNP, "SKNP V5"},
		{0xF607, OpLDVxDT, "LD V6, DT"},
		{0xF60A, OpLDVxK, "LD V6, K"},
		{0xF615, OpLDDTVx, "LD DT, V6"},
		{0xF618, OpLDSTVx, "LD ST, V6"},
		{0xF61E, OpADDI, "ADD I, V6"},
		{0xF629, OpLDF, "LD F, V6"},
		{0xF633, OpLDB, "LD B, V6"},
		{0xF655, OpLDStore, "LD [I], V6"},
		{0xF665, OpLDLoad, "LD V6, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ins, err := Decode(0x200, tt.opcode)
			assert.NoError(t, err)
			assert.Equal(t, tt.op, ins.Op)
			assert.Equal(t, tt.opcode, ins.Opcode)
			assert.Equal(t, tt.text, ins.String())
		})
	}
}

func TestDecodeFields(t *testing.T) {
	ins, err := Decode(0x200, 0xD12A)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x1), ins.X)
	assert.Equal(t, byte(0x2), ins.Y)
	assert.Equal(t, byte(0xA), ins.N)
	assert.Equal(t, byte(0x2A), ins.KK)
	assert.Equal(t, uint16(0x12A), ins.NNN)
}

func TestDecodeInvalid(t *testing.T) {
	invalid := []uint16{
		0xFFFF, // the classic invalid.ch8 word
		0x0000,
		0x0123, // SYS nnn is not supported
		0x00E1,
		0x5121,
		0x812F,
		0x8128,
		0x9121,
		0xE19F,
		0xF100,
		0xF175,
	}

	for _, opcode := range invalid {
		_, err := Decode(0x2F0, opcode)
		var opErr *InvalidOpcodeError
		assert.True(t, errors.As(err, &opErr))
		assert.Equal(t, opcode, opErr.Opcode)
		assert.Equal(t, uint16(0x2F0), opErr.Address)
	}
}

func TestInvalidOpcodeErrorMessage(t *testing.T) {
	err := &InvalidOpcodeError{Opcode: 0xFFFF, Address: 0x200}
	assert.Equal(t, "invalid opcode 0xFFFF at 0x200", err.Error())
}
