package assets

import (
	"encoding/binary"
	"strings"
	"testing"
)

func TestLoadShaderSource(t *testing.T) {
	for _, name := range []string{"fill.kage", "shaders/fill.kage", "assets/shaders/fill.kage"} {
		t.Run(name, func(t *testing.T) {
			src, err := LoadShaderSource(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !strings.Contains(string(src), "func Fragment") {
				t.Fatalf("shader source missing Fragment entry point")
			}
		})
	}

	if _, err := LoadShaderSource("missing.kage"); err == nil {
		t.Fatalf("expected error for missing shader")
	}
}

func TestTone(t *testing.T) {
	const rate = 44100
	pcm := Tone(440, 0.01, rate)

	frames := int(0.01 * rate)
	if len(pcm) != frames*4 {
		t.Fatalf("len = %d, want %d", len(pcm), frames*4)
	}
	for i := 0; i < frames; i++ {
		l := binary.LittleEndian.Uint16(pcm[i*4:])
		r := binary.LittleEndian.Uint16(pcm[i*4+2:])
		if l != r {
			t.Fatalf("frame %d: channels differ", i)
		}
	}
	if last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:])); last > 1000 || last < -1000 {
		t.Fatalf("tail sample %d should be faded out", last)
	}

	if Tone(0, 1, rate) != nil || Tone(440, 0, rate) != nil {
		t.Fatalf("degenerate tones should be empty")
	}
}
