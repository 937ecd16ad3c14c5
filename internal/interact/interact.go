// Package interact holds the hover/drag/attach state machines for the
// robot's interactive bodies. The package does no rendering, no hit-test
// geometry and no input polling of its own; all of that arrives through
// the interfaces below, so the components can be driven by the game loop
// or by a test harness alike.
package interact

import (
	"robotlab/internal/engine"
	"robotlab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Attachment status strings reported to the StatusSink.
const (
	StatusAttached = "Attached"
	StatusDetached = "Detached"
)

// HitTester resolves a pointer ray to the nearest collidable object.
type HitTester interface {
	PickObject(ray rl.Ray) (*engine.GameObject, bool)
}

// Highlighter is told when a body's hover state changes. Rendering the
// highlight is entirely the implementer's business.
type Highlighter interface {
	SetHighlighted(g *engine.GameObject, on bool)
}

// StatusSink receives the attachment status string on every transition.
type StatusSink interface {
	SetStatus(text string)
}

// PointerHandler is implemented by components that consume one pointer
// sample per frame.
type PointerHandler interface {
	HandlePointer(p input.PointerSample)
}

// pointAtDepth returns the point the given distance along the ray.
func pointAtDepth(ray rl.Ray, depth float32) rl.Vector3 {
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, depth))
}

// pointerDrag is the hover/drag state shared by the selectable body and the
// detachable limb. The drag keeps the body on a fixed pointer depth and
// preserves the grab point through an anchor offset.
type pointerDrag struct {
	hovered  bool
	dragging bool
	depth    float32
	offset   rl.Vector3
}

// ownerOf maps a hit object to the body that owns it: the nearest object,
// walking up from the hit itself, that carries a PointerHandler. A hit on a
// passive child (the robot's head, say) belongs to the root body; a hit on a
// limb with its own handler belongs to the limb alone, never to both.
func ownerOf(hit *engine.GameObject) *engine.GameObject {
	for o := hit; o != nil; o = o.Parent {
		if h := engine.FindComponent[PointerHandler](o); h != nil {
			return o
		}
	}
	return nil
}

// updateHover re-runs the hit test and fires the highlight callback on change.
func (d *pointerDrag) updateHover(g *engine.GameObject, ray rl.Ray, hits HitTester, highlight Highlighter) {
	hovered := false
	if obj, ok := hits.PickObject(ray); ok {
		hovered = ownerOf(obj) == g
	}
	if hovered == d.hovered {
		return
	}
	d.hovered = hovered
	if highlight != nil {
		highlight.SetHighlighted(g, hovered)
	}
}

func (d *pointerDrag) begin(g *engine.GameObject, ray rl.Ray) {
	pos := g.WorldPosition()
	d.depth = rl.Vector3DotProduct(rl.Vector3Subtract(pos, ray.Position), ray.Direction)
	d.offset = rl.Vector3Subtract(pos, pointAtDepth(ray, d.depth))
	d.dragging = true
}

// target is where the body belongs this frame: the pointer projected to the
// captured depth, plus the grab anchor offset.
func (d *pointerDrag) target(ray rl.Ray) rl.Vector3 {
	return rl.Vector3Add(pointAtDepth(ray, d.depth), d.offset)
}
