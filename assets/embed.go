package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shadersFS embed.FS

// FillShader is the shader every body is drawn with.
const FillShader = "fill.kage"

// LoadShaderSource reads an embedded Kage source by name.
func LoadShaderSource(name string) ([]byte, error) {
	return shadersFS.ReadFile(cleanShaderPath(name))
}

// LoadShader reads and compiles an embedded Kage shader. A failure means the
// game cannot draw at all.
func LoadShader(name string) (*ebiten.Shader, error) {
	src, err := LoadShaderSource(name)
	if err != nil {
		return nil, fmt.Errorf("assets: read shader %s: %w", name, err)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("assets: compile shader %s: %w", name, err)
	}
	return shader, nil
}

func cleanShaderPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		s = after
	}
	if !strings.HasPrefix(s, "shaders/") {
		s = "shaders/" + s
	}
	return s
}
