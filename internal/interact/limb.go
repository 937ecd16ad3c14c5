package interact

import (
	"fmt"

	"robotlab/internal/engine"
	"robotlab/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LimbConfig is fixed at construction.
type LimbConfig struct {
	// DetachDistance is how far the limb must be pulled from its attach
	// point, while attached and dragging, before it pops off. Strict `>`.
	DetachDistance float32
	// ReattachDistance is how close to the attach point the limb must be
	// released, while detached, to snap back. Strict `<`, and conventionally
	// smaller than DetachDistance.
	ReattachDistance float32
	// HomePosition and HomeRotation are the limb's pose relative to the
	// parent while attached. Reattaching restores them exactly.
	HomePosition rl.Vector3
	HomeRotation rl.Vector3
}

// DetachableLimb is a draggable body that can be torn off its parent and
// snapped back on. Detach is evaluated continuously while dragging, so the
// limb pops off the instant it is pulled far enough; reattach is evaluated
// only at release, so holding a detached limb near the socket does not snap
// it back mid-drag. That asymmetry is the feel of the whole interaction and
// must stay.
type DetachableLimb struct {
	engine.BaseComponent
	cfg       LimbConfig
	parent    *engine.GameObject
	hits      HitTester
	highlight Highlighter
	status    StatusSink
	drag      pointerDrag
	attached  bool

	// OnAttachmentChanged fires with the new attached state on every
	// detach/reattach transition.
	OnAttachmentChanged engine.EventWithArg[bool]
}

// NewDetachableLimb builds a limb belonging to parent. The parent reference,
// the hit tester and the status sink are required; highlight may be nil.
func NewDetachableLimb(parent *engine.GameObject, cfg LimbConfig, hits HitTester, highlight Highlighter, status StatusSink) *DetachableLimb {
	if parent == nil {
		panic("interact: detachable limb requires a parent body")
	}
	if cfg.DetachDistance <= 0 || cfg.ReattachDistance <= 0 {
		panic(fmt.Sprintf("interact: limb thresholds must be positive, got detach=%v reattach=%v",
			cfg.DetachDistance, cfg.ReattachDistance))
	}
	return &DetachableLimb{
		cfg:       cfg,
		parent:    parent,
		hits:      hits,
		highlight: highlight,
		status:    status,
		attached:  true,
	}
}

// Start parents the limb and snaps it to its home pose.
func (l *DetachableLimb) Start() {
	g := l.GetGameObject()
	if g.Parent != l.parent {
		l.parent.AddChild(g)
	}
	g.Transform.Position = l.cfg.HomePosition
	g.Transform.Rotation = l.cfg.HomeRotation
}

func (l *DetachableLimb) Attached() bool { return l.attached }

func (l *DetachableLimb) Hovered() bool { return l.drag.hovered }

func (l *DetachableLimb) Dragging() bool { return l.drag.dragging }

func (l *DetachableLimb) Config() LimbConfig { return l.cfg }

// AttachPointWorld is the world-space socket location, recomputed from the
// parent's current transform so a moved parent carries its socket along.
func (l *DetachableLimb) AttachPointWorld() rl.Vector3 {
	if l.parent == nil {
		panic("interact: detachable limb lost its parent")
	}
	return l.parent.TransformPoint(l.cfg.HomePosition)
}

// HandlePointer consumes one pointer sample and advances the
// {Attached,Detached} x {Idle,Dragging} state machine.
func (l *DetachableLimb) HandlePointer(p input.PointerSample) {
	g := l.GetGameObject()

	if !l.drag.dragging {
		l.drag.updateHover(g, p.Ray, l.hits, l.highlight)
		if p.Pressed && l.drag.hovered {
			l.drag.begin(g, p.Ray)
		}
		return
	}

	if p.Released {
		l.drag.dragging = false
		if !l.attached {
			l.tryReattach(g)
		}
		return
	}

	if p.Down {
		g.SetWorldPosition(l.drag.target(p.Ray))
		if l.attached && rl.Vector3Distance(g.WorldPosition(), l.AttachPointWorld()) > l.cfg.DetachDistance {
			l.detach(g)
		}
	}
}

// detach unparents the limb in place, keeping its world pose.
func (l *DetachableLimb) detach(g *engine.GameObject) {
	pos := g.WorldPosition()
	rot := g.WorldRotation()
	l.parent.RemoveChild(g)
	g.Transform.Position = pos
	g.Transform.Rotation = rot
	l.attached = false
	l.status.SetStatus(StatusDetached)
	l.OnAttachmentChanged.Invoke(false)
}

func (l *DetachableLimb) tryReattach(g *engine.GameObject) {
	if rl.Vector3Distance(g.WorldPosition(), l.AttachPointWorld()) < l.cfg.ReattachDistance {
		l.reattach(g)
	}
}

// reattach re-parents the limb and snaps it exactly to the home pose.
func (l *DetachableLimb) reattach(g *engine.GameObject) {
	l.parent.AddChild(g)
	g.Transform.Position = l.cfg.HomePosition
	g.Transform.Rotation = l.cfg.HomeRotation
	l.attached = true
	l.status.SetStatus(StatusAttached)
	l.OnAttachmentChanged.Invoke(true)
}

// SetAttachedForTest forces the attachment state from test code, bypassing
// the drag-driven transition path. Setting the current value is a no-op.
// Not for production call sites.
func (l *DetachableLimb) SetAttachedForTest(attached bool) {
	if attached == l.attached {
		return
	}
	g := l.GetGameObject()
	if attached {
		l.reattach(g)
	} else {
		l.detach(g)
	}
}
