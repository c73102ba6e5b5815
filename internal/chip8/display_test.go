package chip8

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayDrawTwiceRestores(t *testing.T) {
	var d Display
	sprite := []byte{0xFF, 0x81, 0xA5, 0x81, 0xFF}

	// prefill part of the area so the first draw collides
	d.Draw(10, 5, []byte{0x80})
	before := d.Pixels()

	assert.True(t, d.Draw(10, 5, sprite))
	assert.False(t, d.Pixel(10, 5))

	// the second draw clears the pixels set by the first one
	assert.True(t, d.Draw(10, 5, sprite))
	assert.Equal(t, before, d.Pixels())
}

func TestDisplayCollisionOnBlank(t *testing.T) {
	var d Display
	assert.False(t, d.Draw(0, 0, []byte{0xFF}))
	assert.True(t, d.Draw(0, 0, []byte{0xFF}))
}

func TestDisplayWraps(t *testing.T) {
	var d Display
	d.Draw(DisplayWidth+60, DisplayHeight*3+31, []byte{0xFF, 0x01})

	for x := 60; x < 64; x++ {
		assert.True(t, d.Pixel(x, 31))
	}
	for x := 0; x < 4; x++ {
		assert.True(t, d.Pixel(x, 31))
	}
	assert.True(t, d.Pixel(3, 0))
	assert.False(t, d.Pixel(2, 0))
	assert.True(t, d.Pixel(-1, -1))
}

func TestDisplayDirty(t *testing.T) {
	var d Display
	assert.False(t, d.Dirty())
	d.Draw(0, 0, []byte{0x80})
	assert.True(t, d.Dirty())
	d.ClearDirty()
	assert.False(t, d.Dirty())
	d.Clear()
	assert.True(t, d.Dirty())
	assert.False(t, d.Pixel(0, 0))
}

func TestDisplayString(t *testing.T) {
	var d Display
	d.Draw(0, 0, []byte{0xC0})

	lines := strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n")
	assert.Equal(t, DisplayHeight, len(lines))
	assert.Equal(t, "##"+strings.Repeat(".", DisplayWidth-2), lines[0])
}
