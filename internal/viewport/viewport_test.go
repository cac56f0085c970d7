package viewport

import (
	"testing"

	"github.com/san-kum/pointmorph/internal/layout"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		px, py     float64
	}{
		{"origin", 0, 0, 800, 600, 400, 300},
		{"unit corner", 1, 1, 800, 600, 700, 600},
		{"negative corner", -1, -1, 800, 600, 100, 0},
		{"portrait", 1, 0, 300, 900, 300, 450},
		{"square", 0.5, -0.5, 100, 100, 75, 25},
		{"empty", 1, 1, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := Project(tt.x, tt.y, tt.w, tt.h)
			if px != tt.px || py != tt.py {
				t.Errorf("Project(%v, %v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, tt.w, tt.h, px, py, tt.px, tt.py)
			}
		})
	}
}

func TestSize_TracksResize(t *testing.T) {
	v := layout.Vec{X: 1, Y: 0}

	s := Size{Width: 800, Height: 600}
	if px, _ := s.Project(v); px != 700 {
		t.Errorf("got %v, want 700", px)
	}

	s.Width, s.Height = 200, 600
	if px, _ := s.Project(v); px != 200 {
		t.Errorf("after resize got %v, want 200", px)
	}
}

func TestSize_Unproject(t *testing.T) {
	s := Size{Width: 640, Height: 480}
	v := layout.Vec{X: 0.25, Y: -0.75}
	px, py := s.Project(v)
	if got := s.Unproject(px, py); got != v {
		t.Errorf("Unproject(Project(%v)) = %v", v, got)
	}

	if got := (Size{}).Unproject(10, 10); got != (layout.Vec{}) {
		t.Errorf("zero viewport should unproject to origin, got %v", got)
	}
}
