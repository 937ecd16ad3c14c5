package components

import (
	"robotlab/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target object. Right mouse drag orbits, the wheel zooms.
type OrbitCamera struct {
	engine.BaseComponent
	Target      *engine.GameObject
	Yaw         float32 // degrees around Y
	Pitch       float32 // degrees above horizon
	Distance    float32
	MinDistance float32
	MaxDistance float32
	LookSpeed   float32
	ZoomSpeed   float32
	FOV         float32
}

func NewOrbitCamera(target *engine.GameObject) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Yaw:         -135.0,
		Pitch:       25.0,
		Distance:    8.0,
		MinDistance: 3.0,
		MaxDistance: 25.0,
		LookSpeed:   0.25,
		ZoomSpeed:   0.8,
		FOV:         45.0,
	}
}

func (c *OrbitCamera) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		c.Yaw += delta.X * c.LookSpeed
		c.Pitch += delta.Y * c.LookSpeed
	}

	// Clamp pitch so the camera never flips over the pole
	if c.Pitch > 85 {
		c.Pitch = 85
	}
	if c.Pitch < -85 {
		c.Pitch = -85
	}

	c.Distance -= rl.GetMouseWheelMove() * c.ZoomSpeed
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Camera builds the raylib camera for the current orbit state.
func (c *OrbitCamera) Camera() rl.Camera3D {
	target := rl.Vector3{}
	if c.Target != nil {
		target = c.Target.WorldPosition()
	}

	yawRad := c.Yaw * rl.Deg2rad
	pitchRad := c.Pitch * rl.Deg2rad

	offset := rl.Vector3{
		X: math32.Cos(pitchRad) * math32.Cos(yawRad),
		Y: math32.Sin(pitchRad),
		Z: math32.Cos(pitchRad) * math32.Sin(yawRad),
	}

	return rl.Camera3D{
		Position:   rl.Vector3Add(target, rl.Vector3Scale(offset, c.Distance)),
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
