package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PointerSample is one frame of pointing-device state: a world-space ray
// plus the primary button level and its edges.
type PointerSample struct {
	Ray      rl.Ray
	Down     bool // button held this frame
	Pressed  bool // button went down this frame
	Released bool // button went up this frame
}

// Source produces one PointerSample per frame for the given camera.
type Source interface {
	Sample(cam rl.Camera3D) PointerSample
}

// Mouse samples the raylib mouse as the pointer device.
type Mouse struct {
	Button rl.MouseButton
}

func NewMouse() *Mouse {
	return &Mouse{Button: rl.MouseLeftButton}
}

func (m *Mouse) Sample(cam rl.Camera3D) PointerSample {
	return PointerSample{
		Ray:      rl.GetScreenToWorldRay(rl.GetMousePosition(), cam),
		Down:     rl.IsMouseButtonDown(m.Button),
		Pressed:  rl.IsMouseButtonPressed(m.Button),
		Released: rl.IsMouseButtonReleased(m.Button),
	}
}
