package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmbeddedSpecs(t *testing.T) {
	field, err := LoadPlayfieldSpec()
	if err != nil {
		t.Fatalf("playfield: %v", err)
	}
	if field.Width != 1280 || field.Height != 768 {
		t.Fatalf("playfield = %vx%v, want 1280x768", field.Width, field.Height)
	}
	if field.Respawn.X != 512 || field.Respawn.Y != 512 {
		t.Fatalf("respawn = %+v", field.Respawn)
	}

	geo, err := LoadGeometrySpec()
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	for _, name := range []string{"paddle", "ball"} {
		pts, ok := geo.Templates[name]
		if !ok {
			t.Fatalf("missing template %q", name)
		}
		if len(pts)%3 != 0 {
			t.Fatalf("template %q has %d points", name, len(pts))
		}
	}

	cases := []struct {
		file  string
		geo   string
		x, y  float64
		w, h  float64
		speed float64
	}{
		{"right_paddle.yaml", "paddle", 1024, 320, 48, 128, 0},
		{"left_paddle.yaml", "paddle", 128, 320, 48, 128, 0},
		{"ball.yaml", "ball", 512, 368, 32, 32, 16},
	}
	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			spec, err := LoadBodySpec(c.file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if spec.Geometry != c.geo {
				t.Fatalf("geometry = %q, want %q", spec.Geometry, c.geo)
			}
			if spec.Transform.X != c.x || spec.Transform.Y != c.y {
				t.Fatalf("transform = %+v", spec.Transform)
			}
			if spec.Collider.Width != c.w || spec.Collider.Height != c.h {
				t.Fatalf("collider = %+v", spec.Collider)
			}
			if spec.Speed != c.speed {
				t.Fatalf("speed = %v, want %v", spec.Speed, c.speed)
			}
		})
	}

	controls, err := LoadControlsSpec()
	if err != nil {
		t.Fatalf("controls: %v", err)
	}
	if controls.PaddleSpeed != 8 || len(controls.Bindings) != 4 {
		t.Fatalf("controls = %+v", controls)
	}
}

func TestLoadSpecMissing(t *testing.T) {
	if _, err := LoadBodySpec("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"follow_ball", "follow_ball.tengo", "scripts/follow_ball.tengo", "prefabs/scripts/follow_ball"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "controls.yaml"), []byte("paddle_speed: 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != "controls.yaml" {
			t.Fatalf("event for %q, want controls.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watch event")
	}
}
