// internal/audio/tones.go
package audio

import (
	"encoding/binary"
	"math"
)

const SampleRate = 44100

// Tone — прямоугольный сигнал фиксированной частоты.
type Tone struct {
	Freq       float64
	DurationMs float64
}

// Sounds is the fixed tone table keyed by sound name.
var Sounds = map[string]Tone{
	"shoot":       {Freq: 200, DurationMs: 50},
	"hit":         {Freq: 150, DurationMs: 100},
	"kill":        {Freq: 100, DurationMs: 150},
	"coin":        {Freq: 800, DurationMs: 80},
	"powerup":     {Freq: 600, DurationMs: 200},
	"achievement": {Freq: 1000, DurationMs: 300},
	"combo":       {Freq: 700, DurationMs: 120},
}

const (
	startGain = 0.1
	endGain   = 0.01
)

// Render synthesizes the tone as 16-bit little-endian stereo PCM. Громкость
// спадает экспоненциально от startGain до endGain.
func (t Tone) Render(sampleRate int) []byte {
	n := int(float64(sampleRate) * t.DurationMs / 1000)
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	inc := t.Freq / float64(sampleRate)
	decay := math.Log(endGain / startGain)
	for i := 0; i < n; i++ {
		v := -1.0
		if phase < 0.5 {
			v = 1.0
		}
		gain := startGain * math.Exp(decay*float64(i)/float64(n))
		s := int16(v * gain * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
		phase += inc
		if phase >= 1 {
			phase--
		}
	}
	return out
}
