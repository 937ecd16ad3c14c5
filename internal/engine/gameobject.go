package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

var uidCounter uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    atomic.AddUint64(&uidCounter, 1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of the given concrete type, or the
// zero value if none is attached.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent returns the first component satisfying the given interface.
func FindComponent[T any](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := any(c).(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// IsDescendantOf reports whether g sits anywhere below ancestor in the hierarchy.
func (g *GameObject) IsDescendantOf(ancestor *GameObject) bool {
	for p := g.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// TransformPoint converts a point in g's local space to world space,
// applying world scale, then rotation (X then Y then Z, matching the
// renderer convention), then translation.
func (g *GameObject) TransformPoint(local rl.Vector3) rl.Vector3 {
	scale := g.WorldScale()
	scaled := rl.Vector3{
		X: local.X * scale.X,
		Y: local.Y * scale.Y,
		Z: local.Z * scale.Z,
	}

	rot := g.WorldRotation()
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	rotated := rl.Vector3Transform(scaled, rotMatrix)
	return rl.Vector3Add(g.WorldPosition(), rotated)
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	return g.Parent.TransformPoint(g.Transform.Position)
}

// SetWorldPosition moves g so that its world position equals world,
// converting through the parent's inverse transform when parented.
func (g *GameObject) SetWorldPosition(world rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Position = world
		return
	}

	rel := rl.Vector3Subtract(world, g.Parent.WorldPosition())

	// Inverse rotation order: Z, Y, X (reverse of forward)
	rot := g.Parent.WorldRotation()
	rotZ := rl.MatrixRotateZ(-rot.Z * rl.Deg2rad)
	rotY := rl.MatrixRotateY(-rot.Y * rl.Deg2rad)
	rotX := rl.MatrixRotateX(-rot.X * rl.Deg2rad)
	invRot := rl.MatrixMultiply(rl.MatrixMultiply(rotZ, rotY), rotX)

	local := rl.Vector3Transform(rel, invRot)

	scale := g.Parent.WorldScale()
	if scale.X != 0 {
		local.X /= scale.X
	}
	if scale.Y != 0 {
		local.Y /= scale.Y
	}
	if scale.Z != 0 {
		local.Z /= scale.Z
	}
	g.Transform.Position = local
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
