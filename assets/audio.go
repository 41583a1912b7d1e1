package assets

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/pong/ecs"
)

const (
	sampleRate   = 44100
	cueDuration  = 0.06
	cueFadeShare = 0.3
)

var cueFrequencies = map[ecs.EventKind]float64{
	ecs.EventPaddleHit: 440,
	ecs.EventWallHit:   330,
	ecs.EventReset:     220,
}

// Cues plays a generated blip per simulation event kind.
type Cues struct {
	players map[ecs.EventKind]*audio.Player
}

// NewCues creates the audio context and one player per cue at volume.
func NewCues(volume float64) *Cues {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	c := &Cues{players: make(map[ecs.EventKind]*audio.Player, len(cueFrequencies))}
	for kind, freq := range cueFrequencies {
		p := ctx.NewPlayerFromBytes(Tone(freq, cueDuration, ctx.SampleRate()))
		p.SetVolume(volume)
		c.players[kind] = p
	}
	return c
}

// Play restarts the cue for kind. Unknown kinds are ignored.
func (c *Cues) Play(kind ecs.EventKind) {
	if c == nil {
		return
	}
	p, ok := c.players[kind]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// Close releases every player.
func (c *Cues) Close() {
	if c == nil {
		return
	}
	for kind, p := range c.players {
		_ = p.Close()
		delete(c.players, kind)
	}
}

// Tone renders a sine wave as 16-bit little-endian stereo PCM, the format
// audio players expect. The tail fades out to avoid a click.
func Tone(freq, seconds float64, rate int) []byte {
	n := int(seconds * float64(rate))
	if n <= 0 || freq <= 0 {
		return nil
	}
	fadeFrom := int(float64(n) * (1 - cueFadeShare))

	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := 0.3
		if i >= fadeFrom {
			amp *= float64(n-i) / float64(n-fadeFrom)
		}
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
