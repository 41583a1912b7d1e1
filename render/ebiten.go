package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

type slot struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// Ebiten draws body triangles onto an ebiten image with a single fill shader.
type Ebiten struct {
	shader *ebiten.Shader
	slots  []*slot
	target *ebiten.Image
	opts   ebiten.DrawTrianglesShaderOptions
}

// NewEbiten creates a backend that fills every triangle with fill.
func NewEbiten(shader *ebiten.Shader, fill color.Color) *Ebiten {
	r, g, b, a := fill.RGBA()
	return &Ebiten{
		shader: shader,
		opts: ebiten.DrawTrianglesShaderOptions{
			Uniforms: map[string]any{
				"Color": []float32{
					float32(r) / 0xffff,
					float32(g) / 0xffff,
					float32(b) / 0xffff,
					float32(a) / 0xffff,
				},
			},
		},
	}
}

// Allocate reserves vertex and index storage for vertexCount points.
func (e *Ebiten) Allocate(vertexCount int) (Handle, error) {
	if vertexCount <= 0 || vertexCount%3 != 0 {
		return 0, ErrInvalidVertexCount
	}
	if vertexCount > math.MaxUint16 {
		return 0, fmt.Errorf("render: allocate %d vertices: exceeds uint16 index range", vertexCount)
	}

	s := &slot{
		vertices: make([]ebiten.Vertex, vertexCount),
		indices:  make([]uint16, vertexCount),
	}
	for i := range s.indices {
		s.indices[i] = uint16(i)
		v := &s.vertices[i]
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = 1, 1, 1, 1
	}
	e.slots = append(e.slots, s)
	return Handle(len(e.slots)), nil
}

// Release frees the storage behind h. Releasing twice is a no-op.
func (e *Ebiten) Release(h Handle) {
	if e == nil || !h.Valid() || int(h) > len(e.slots) {
		return
	}
	e.slots[h-1] = nil
}

// Begin sets the image that subsequent UploadAndDraw calls render into.
func (e *Ebiten) Begin(target *ebiten.Image) {
	if e == nil {
		return
	}
	e.target = target
}

// UploadAndDraw copies ndc into the handle's vertices and draws them.
func (e *Ebiten) UploadAndDraw(h Handle, ndc []cp.Vector) {
	if e == nil || e.target == nil || e.shader == nil {
		return
	}
	s := e.lookup(h)
	if s == nil {
		return
	}

	bounds := e.target.Bounds()
	w := float64(bounds.Dx())
	ht := float64(bounds.Dy())

	n := min(len(ndc), len(s.vertices))
	for i := 0; i < n; i++ {
		v := &s.vertices[i]
		// Device space has y up, images have y down.
		v.DstX = float32((ndc[i].X + 1) / 2 * w)
		v.DstY = float32((1 - ndc[i].Y) / 2 * ht)
	}

	e.target.DrawTrianglesShader(s.vertices[:n], s.indices[:n], e.shader, &e.opts)
}

func (e *Ebiten) lookup(h Handle) *slot {
	if !h.Valid() || int(h) > len(e.slots) {
		return nil
	}
	return e.slots[h-1]
}
