package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/retroenv/retrogolib/assert"
)

func TestSquareWave(t *testing.T) {
	// 4 samples per period, the sample at half phase is still high
	wave := squareWave(beep.SampleRate(400), 100, 0.5)

	samples := make([][2]float64, 8)
	n, ok := wave.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 8, n)

	want := []float64{0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, -0.5}
	for i, s := range samples {
		assert.Equal(t, want[i], s[0])
		assert.Equal(t, s[0], s[1])
	}
}

func TestLoadMP3MissingFile(t *testing.T) {
	_, _, err := loadMP3("does-not-exist.mp3")
	assert.Error(t, err, "opening beep file: open does-not-exist.mp3: no such file or directory")
}
