// Package pixel presents the VM on a pixelgl window and reads the keypad from the keyboard.
package pixel

import (
	"context"
	"fmt"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// KeyMap maps keyboard buttons to keypad keys. The left hand block of the
// keyboard mirrors the layout of the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
//
// The arrow keys double as 5/7/8/9, which most games use for movement.
var KeyMap = map[pixelgl.Button]byte{
	pixelgl.Key1: 0x1, pixelgl.Key2: 0x2,
	pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
	pixelgl.KeyQ: 0x4, pixelgl.KeyW: 0x5,
	pixelgl.KeyE: 0x6, pixelgl.KeyR: 0xD,
	pixelgl.KeyA: 0x7, pixelgl.KeyS: 0x8,
	pixelgl.KeyD: 0x9, pixelgl.KeyF: 0xE,
	pixelgl.KeyZ: 0xA, pixelgl.KeyX: 0x0,
	pixelgl.KeyC: 0xB, pixelgl.KeyV: 0xF,

	pixelgl.KeyUp: 0x5, pixelgl.KeyLeft: 0x7,
	pixelgl.KeyDown: 0x8, pixelgl.KeyRight: 0x9,
}

// Beeper turns the sound on and off.
type Beeper interface {
	SetStatus(active bool)
}

// Window embeds a pixelgl window and implements chip8.Host.
type Window struct {
	*pixelgl.Window
	scale  float64
	beeper Beeper
	stop   context.CancelFunc
}

var _ chip8.Host = (*Window)(nil)

// NewWindow creates a window sized to the display at the given scale.
// stop is called when the window is closed or Escape is pressed.
// beeper may be nil to run without sound.
func NewWindow(scale float64, beeper Beeper, stop context.CancelFunc) (*Window, error) {
	w, err := pixelgl.NewWindow(windowConfig(scale))
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %w", err)
	}
	return &Window{
		Window: w,
		scale:  scale,
		beeper: beeper,
		stop:   stop,
	}, nil
}

// windowConfig leaves VSync off: Draw runs on the same loop as the CPU clock
// and must not block until the next vertical blank.
func windowConfig(scale float64) pixelgl.WindowConfig {
	return pixelgl.WindowConfig{
		Title:  "chippy",
		Bounds: pixel.R(0, 0, chip8.DisplayWidth*scale, chip8.DisplayHeight*scale),
		VSync:  false,
	}
}

// Keys polls the keyboard and returns the keypad state.
func (w *Window) Keys() chip8.Keys {
	w.UpdateInput()
	if w.Closed() || w.JustPressed(pixelgl.KeyEscape) {
		w.stop()
	}

	var keys chip8.Keys
	for button, key := range KeyMap {
		if w.Pressed(button) {
			keys[key] = true
		}
	}
	return keys
}

// Draw renders the frame buffer, set pixels in white on black.
func (w *Window) Draw(d *chip8.Display) error {
	w.Clear(colornames.Black)
	imDraw := imdraw.New(nil)
	imDraw.Color = colornames.White

	for y := 0; y < chip8.DisplayHeight; y++ {
		// pixel's origin is the bottom left corner
		top := float64(chip8.DisplayHeight-y) * w.scale
		for x := 0; x < chip8.DisplayWidth; x++ {
			if !d.Pixel(x, y) {
				continue
			}
			left := float64(x) * w.scale
			imDraw.Push(pixel.V(left, top-w.scale), pixel.V(left+w.scale, top))
			imDraw.Rectangle(0)
		}
	}

	imDraw.Draw(w)
	w.Update()
	return nil
}

// Beep forwards the sound signal to the beeper.
func (w *Window) Beep(active bool) {
	if w.beeper != nil {
		w.beeper.SetStatus(active)
	}
}
