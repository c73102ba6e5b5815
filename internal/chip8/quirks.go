package chip8

// Quirks selects the behavior of the historically ambiguous opcodes.
// The zero value is the Super-CHIP convention.
type Quirks struct {
	// ShiftUsesVY makes 8xy6 and 8xyE shift VY into VX, as on the COSMAC VIP.
	ShiftUsesVY bool
	// JumpUsesV0 makes Bnnn jump to nnn + V0, as on the COSMAC VIP,
	// instead of nnn + VX with X taken from the top nibble of nnn.
	JumpUsesV0 bool
	// LoadStoreIncrementsI makes Fx55 and Fx65 leave I at I + X + 1.
	LoadStoreIncrementsI bool
}
