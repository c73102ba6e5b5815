package pixel

import (
	"testing"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/assert"
)

func TestKeyMapCoversKeypad(t *testing.T) {
	var covered chip8.Keys
	for _, key := range KeyMap {
		assert.True(t, key < chip8.KeyCount)
		covered[key] = true
	}
	for _, ok := range covered {
		assert.True(t, ok, "key not mapped")
	}
}

func TestKeyMapArrows(t *testing.T) {
	assert.Equal(t, KeyMap[pixelgl.KeyW], KeyMap[pixelgl.KeyUp])
	assert.Equal(t, KeyMap[pixelgl.KeyA], KeyMap[pixelgl.KeyLeft])
	assert.Equal(t, KeyMap[pixelgl.KeyS], KeyMap[pixelgl.KeyDown])
	assert.Equal(t, KeyMap[pixelgl.KeyD], KeyMap[pixelgl.KeyRight])
}

func TestWindowConfig(t *testing.T) {
	cfg := windowConfig(10)
	assert.False(t, cfg.VSync, "vsync blocks the emulation loop")
	assert.Equal(t, float64(chip8.DisplayWidth*10), cfg.Bounds.W())
	assert.Equal(t, float64(chip8.DisplayHeight*10), cfg.Bounds.H())
}
