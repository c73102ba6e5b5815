package chip8

// system memory map
// 0x000-0x04F - built in 4x5 pixel font set (0-F), read-only once loaded
// 0x050-0x1FF - reserved for the interpreter
// 0x200-0xFFF - Program ROM and work RAM

// Chip-8 used to be implemented on 4k systems like the Telmac 1800 and Cosmac VIP where the chip-8 interpreter
// itself occupied the first 512 bytes of memory (up to 0x200). Here the interpreter runs natively outside the
// 4K memory space, so the low region only holds the font set.

const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096
	// DefaultLoadAddress is where programs are loaded and start executing.
	DefaultLoadAddress uint16 = 0x200
)

// Memory is the VM's flat address space. Every access is range checked.
type Memory struct {
	data [MemorySize]byte
}

func newMemory() *Memory {
	m := &Memory{}
	copy(m.data[fontAddress:], FontSet[:])
	return m
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, &MemoryError{Address: addr}
	}
	return m.data[addr], nil
}

// ReadWord returns the big endian word stored at addr and addr+1.
func (m *Memory) ReadWord(addr uint16) (uint16, error) {
	if int(addr)+1 >= MemorySize {
		return 0, &MemoryError{Address: addr}
	}
	return uint16(m.data[addr])<<8 | uint16(m.data[addr+1]), nil
}

// Slice returns n bytes starting at addr. The returned slice aliases memory.
func (m *Memory) Slice(addr uint16, n int) ([]byte, error) {
	end := int(addr) + n
	if end > MemorySize {
		return nil, &MemoryError{Address: uint16(max(int(addr), MemorySize))}
	}
	return m.data[addr:end], nil
}

// Write stores b at addr. The font region is read-only.
func (m *Memory) Write(addr uint16, b byte) error {
	if int(addr) >= MemorySize {
		return &MemoryError{Address: addr}
	}
	if int(addr) < fontEnd {
		return &MemoryError{Address: addr, ReadOnly: true}
	}
	m.data[addr] = b
	return nil
}

// load copies rom verbatim to addr.
func (m *Memory) load(addr uint16, rom []byte) error {
	if len(rom) == 0 {
		return ErrEmptyROM
	}
	if len(rom) > MemorySize-int(addr) {
		return ErrROMTooLarge
	}
	copy(m.data[addr:], rom)
	return nil
}
