package interact

import (
	"robotlab/internal/engine"
	"robotlab/internal/input"
)

// SelectableBody makes a GameObject hoverable and draggable. Dragging moves
// the object itself, so children parented under it follow rigidly. There is
// no attachment concept here; see DetachableLimb for that.
type SelectableBody struct {
	engine.BaseComponent
	hits      HitTester
	highlight Highlighter
	drag      pointerDrag
}

func NewSelectableBody(hits HitTester, highlight Highlighter) *SelectableBody {
	return &SelectableBody{
		hits:      hits,
		highlight: highlight,
	}
}

func (b *SelectableBody) Hovered() bool { return b.drag.hovered }

func (b *SelectableBody) Dragging() bool { return b.drag.dragging }

// HandlePointer consumes one pointer sample. Hover is only re-evaluated
// while not dragging; a press while hovered starts a drag, and the drag
// follows the pointer at the depth captured at grab time until release.
func (b *SelectableBody) HandlePointer(p input.PointerSample) {
	g := b.GetGameObject()

	if !b.drag.dragging {
		b.drag.updateHover(g, p.Ray, b.hits, b.highlight)
		if p.Pressed && b.drag.hovered {
			b.drag.begin(g, p.Ray)
		}
		return
	}

	if p.Released {
		b.drag.dragging = false
		return
	}
	if p.Down {
		g.SetWorldPosition(b.drag.target(p.Ray))
	}
}
