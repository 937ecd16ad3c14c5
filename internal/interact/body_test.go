package interact

import (
	"testing"

	"robotlab/internal/engine"
	"robotlab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakePicker returns a fixed hit regardless of the ray.
type fakePicker struct {
	hit *engine.GameObject
	ok  bool
}

func (f *fakePicker) PickObject(ray rl.Ray) (*engine.GameObject, bool) {
	return f.hit, f.ok
}

type highlightCall struct {
	obj *engine.GameObject
	on  bool
}

type highlightRecorder struct {
	calls []highlightCall
}

func (h *highlightRecorder) SetHighlighted(g *engine.GameObject, on bool) {
	h.calls = append(h.calls, highlightCall{g, on})
}

type statusRecorder struct {
	history []string
}

func (s *statusRecorder) SetStatus(text string) {
	s.history = append(s.history, text)
}

// rayAt builds a pointer ray parallel to -Z from above the scene, so a body
// dragged under it lands exactly at (x, y, 0).
func rayAt(x, y float32) rl.Ray {
	return rl.Ray{
		Position:  rl.Vector3{X: x, Y: y, Z: 10},
		Direction: rl.Vector3{Z: -1},
	}
}

func hoverAt(x, y float32) input.PointerSample {
	return input.PointerSample{Ray: rayAt(x, y)}
}

func pressAt(x, y float32) input.PointerSample {
	return input.PointerSample{Ray: rayAt(x, y), Down: true, Pressed: true}
}

func holdAt(x, y float32) input.PointerSample {
	return input.PointerSample{Ray: rayAt(x, y), Down: true}
}

func releaseAt(x, y float32) input.PointerSample {
	return input.PointerSample{Ray: rayAt(x, y), Released: true}
}

func vecNear(a, b rl.Vector3, eps float32) bool {
	return rl.Vector3Distance(a, b) < eps
}

func newTestBody(hl Highlighter) (*engine.GameObject, *SelectableBody, *fakePicker) {
	obj := engine.NewGameObject("Robot")
	picker := &fakePicker{hit: obj, ok: true}
	body := NewSelectableBody(picker, hl)
	obj.AddComponent(body)
	obj.Start()
	return obj, body, picker
}

func TestBodyHoverHighlightOnChange(t *testing.T) {
	hl := &highlightRecorder{}
	obj, body, picker := newTestBody(hl)

	body.HandlePointer(hoverAt(0, 0))
	body.HandlePointer(hoverAt(0, 0))

	if !body.Hovered() {
		t.Error("Body should be hovered while the hit test reports it")
	}
	if len(hl.calls) != 1 {
		t.Fatalf("Expected 1 highlight call for repeated hover, got %d", len(hl.calls))
	}
	if hl.calls[0].obj != obj || !hl.calls[0].on {
		t.Errorf("Expected highlight on for %s, got %+v", obj.Name, hl.calls[0])
	}

	picker.ok = false
	body.HandlePointer(hoverAt(0, 0))

	if body.Hovered() {
		t.Error("Body should not be hovered after the hit test misses")
	}
	if len(hl.calls) != 2 || hl.calls[1].on {
		t.Errorf("Expected a highlight-off call, got %+v", hl.calls)
	}
}

func TestBodyHoverClaimsPassiveChild(t *testing.T) {
	obj, body, picker := newTestBody(nil)

	head := engine.NewGameObject("Head")
	obj.AddChild(head)
	picker.hit = head

	body.HandlePointer(hoverAt(0, 0))

	if !body.Hovered() {
		t.Error("A hit on a passive child should hover the owning body")
	}
}

func TestBodyDoesNotClaimChildWithOwnHandler(t *testing.T) {
	obj, body, picker := newTestBody(nil)

	arm := engine.NewGameObject("LeftArm")
	status := NewStatusLine()
	limb := NewDetachableLimb(obj, LimbConfig{
		DetachDistance:   0.3,
		ReattachDistance: 0.2,
		HomePosition:     rl.Vector3{X: 1},
	}, picker, nil, status)
	arm.AddComponent(limb)
	arm.Start()
	picker.hit = arm

	body.HandlePointer(hoverAt(1, 0))
	limb.HandlePointer(hoverAt(1, 0))

	if body.Hovered() {
		t.Error("A hit on a limb with its own handler should not hover the root body")
	}
	if !limb.Hovered() {
		t.Error("The limb should claim the hit on itself")
	}
}

func TestBodyDragMovesWholeAssembly(t *testing.T) {
	obj, body, _ := newTestBody(nil)
	obj.Transform.Position = rl.Vector3{Y: 1}

	head := engine.NewGameObject("Head")
	head.Transform.Position = rl.Vector3{Y: 1}
	obj.AddChild(head)

	body.HandlePointer(pressAt(0, 1))
	if !body.Dragging() {
		t.Fatal("Press while hovered should start a drag")
	}

	body.HandlePointer(holdAt(2, 1))

	if !vecNear(obj.WorldPosition(), rl.Vector3{X: 2, Y: 1}, 1e-5) {
		t.Errorf("Body position = %v, want (2,1,0)", obj.WorldPosition())
	}
	if !vecNear(head.WorldPosition(), rl.Vector3{X: 2, Y: 2}, 1e-5) {
		t.Errorf("Child position = %v, want (2,2,0); children must move rigidly", head.WorldPosition())
	}
}

func TestBodyDragKeepsGrabOffset(t *testing.T) {
	obj, body, _ := newTestBody(nil)
	obj.Transform.Position = rl.Vector3{Y: 1}

	// Grab off-center: pointer at (0.3, 1.2), body at (0, 1, 0)
	body.HandlePointer(pressAt(0.3, 1.2))
	body.HandlePointer(holdAt(1.3, 1.2))

	if !vecNear(obj.WorldPosition(), rl.Vector3{X: 1, Y: 1}, 1e-5) {
		t.Errorf("Body position = %v, want (1,1,0); grab offset must be preserved", obj.WorldPosition())
	}
}

func TestBodyPressWithoutHoverIgnored(t *testing.T) {
	_, body, picker := newTestBody(nil)
	picker.ok = false

	body.HandlePointer(pressAt(0, 0))

	if body.Dragging() {
		t.Error("Press without hover should not start a drag")
	}
}

func TestBodyReleaseEndsDrag(t *testing.T) {
	obj, body, _ := newTestBody(nil)

	body.HandlePointer(pressAt(0, 0))
	body.HandlePointer(holdAt(1, 0))
	body.HandlePointer(releaseAt(1, 0))

	if body.Dragging() {
		t.Error("Release should end the drag")
	}

	before := obj.WorldPosition()
	body.HandlePointer(holdAt(5, 5))
	if !vecNear(obj.WorldPosition(), before, 1e-6) {
		t.Error("Body must not move after the drag ended")
	}
}

func TestBodyUnmatchedReleaseNoOp(t *testing.T) {
	obj, body, _ := newTestBody(nil)
	before := obj.WorldPosition()

	body.HandlePointer(releaseAt(3, 3))

	if body.Dragging() || !vecNear(obj.WorldPosition(), before, 1e-6) {
		t.Error("Release without a prior press should be a no-op")
	}
}
