package chip8

const (
	// DisplayWidth is the number of pixel columns.
	DisplayWidth = 64
	// DisplayHeight is the number of pixel rows.
	DisplayHeight = 32
)

// The graphics system: The chip 8 has one instruction that draws sprite to the screen.
// Drawing is done in XOR mode and if a pixel is turned off as a result of drawing, the VF register is set.
// This is used for collision detection.

// Display is the monochrome frame buffer, stored row-major.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]bool
	dirty  bool
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]bool{}
	d.dirty = true
}

// Pixel reports whether the pixel at (x, y) is set. Coordinates wrap.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[index(x, y)]
}

// Pixels returns a copy of the frame buffer.
func (d *Display) Pixels() [DisplayWidth * DisplayHeight]bool {
	return d.pixels
}

// Dirty reports whether the buffer changed since the last ClearDirty.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty marks the current buffer as presented.
func (d *Display) ClearDirty() {
	d.dirty = false
}

// Draw XORs the sprite rows onto the buffer with its top left corner at (x, y),
// wrapping around both edges. It returns true if any set pixel was cleared.
func (d *Display) Draw(x, y byte, sprite []byte) bool {
	collision := false
	for row, bits := range sprite {
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			i := index(int(x)+col, int(y)+row)
			if d.pixels[i] {
				collision = true
			}
			d.pixels[i] = !d.pixels[i]
		}
	}
	d.dirty = true
	return collision
}

func index(x, y int) int {
	x %= DisplayWidth
	y %= DisplayHeight
	if x < 0 {
		x += DisplayWidth
	}
	if y < 0 {
		y += DisplayHeight
	}
	return y*DisplayWidth + x
}

// String renders the buffer as text, one line per row.
func (d *Display) String() string {
	buf := make([]byte, 0, (DisplayWidth+1)*DisplayHeight)
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if d.pixels[y*DisplayWidth+x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
