package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Count: 100, NumSteps: 120, TransitionShare: 0.8, FPS: 60,
		Rotation: []string{"phyllotaxis", "spiral", "phyllotaxis", "grid", "wave"},
		Colormap: "viridis", Easing: "linear", Theme: "cyberpunk",
		Viewport: ViewportConfig{Width: 800, Height: 600},
	},
	"dense": {
		Count: 5000, NumSteps: 120, TransitionShare: 0.8, FPS: 60,
		Rotation: []string{"phyllotaxis", "spiral", "phyllotaxis", "grid", "wave"},
		Colormap: "viridis", Easing: "linear", Theme: "minimal",
		Viewport: ViewportConfig{Width: 1024, Height: 1024},
	},
	"smooth": {
		Count: 1000, NumSteps: 180, TransitionShare: 0.7, FPS: 60,
		Rotation: []string{"phyllotaxis", "spiral", "phyllotaxis", "grid", "wave"},
		Colormap: "plasma", Easing: "in-out-cubic", Theme: "sunset",
		Viewport: ViewportConfig{Width: 800, Height: 600},
	},
	"tour": {
		Count: 800, NumSteps: 90, TransitionShare: 0.9, FPS: 30,
		Rotation: []string{"grid", "wave", "spiral", "phyllotaxis"},
		Colormap: "magma", Easing: "in-out-sine", Theme: "ocean",
		Viewport: ViewportConfig{Width: 640, Height: 480},
	},
	"retro": {
		Count: 400, NumSteps: 60, TransitionShare: 1, FPS: 30,
		Rotation: []string{"grid", "spiral"},
		Colormap: "inferno", Easing: "out-quad", Theme: "retro",
		Viewport: ViewportConfig{Width: 480, Height: 480},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Rotation = append([]string(nil), p.Rotation...)
	return &cfg
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
