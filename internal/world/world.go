package world

import (
	"fmt"

	"robotlab/internal/components"
	"robotlab/internal/config"
	"robotlab/internal/engine"
	"robotlab/internal/input"
	"robotlab/internal/interact"
	"robotlab/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the scene, the pick registry and the interaction wiring.
// It implements interact.Highlighter by tinting the renderers of a body
// and everything below it.
type World struct {
	Scene  *engine.Scene
	Pick   *physics.PickWorld
	Status *interact.StatusLine

	// Root is the first draggable object of the scene, used as the camera
	// orbit target.
	Root  *engine.GameObject
	Limbs []*interact.DetachableLimb

	HighlightColor rl.Color

	// handlers in scene-file order; a parent body always precedes its
	// limbs, so a limb reads its parent's same-frame transform.
	handlers []interact.PointerHandler
}

func New() *World {
	return &World{
		Scene:          engine.NewScene("Main"),
		Pick:           physics.NewPickWorld(),
		Status:         interact.NewStatusLine(),
		HighlightColor: rl.Gold,
	}
}

// Build instantiates the scene file. Limb thresholds default to the
// configured interaction values where the scene leaves them zero.
func (w *World) Build(sf *SceneFile, defaults config.Interaction) error {
	for i := range sf.Objects {
		if _, err := w.buildObject(&sf.Objects[i], nil, defaults); err != nil {
			return err
		}
	}
	w.Scene.Start()
	return nil
}

func (w *World) buildObject(def *ObjectDef, parent *engine.GameObject, defaults config.Interaction) (*engine.GameObject, error) {
	obj := engine.NewGameObject(def.Name)
	obj.Tags = def.Tags
	obj.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	obj.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}
	if def.Scale != [3]float32{} {
		obj.Transform.Scale = rl.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
	}

	if parent != nil {
		parent.AddChild(obj)
	}
	w.Scene.AddGameObject(obj)

	if def.Renderer != nil {
		renderer, err := w.makeRenderer(def)
		if err != nil {
			return nil, err
		}
		obj.AddComponent(renderer)
	}

	collidable := false
	if def.BoxCollider != nil {
		collider := components.NewBoxCollider(rl.Vector3{
			X: def.BoxCollider.Size[0],
			Y: def.BoxCollider.Size[1],
			Z: def.BoxCollider.Size[2],
		})
		collider.Offset = rl.Vector3{
			X: def.BoxCollider.Offset[0],
			Y: def.BoxCollider.Offset[1],
			Z: def.BoxCollider.Offset[2],
		}
		obj.AddComponent(collider)
		collidable = true
	}
	if def.SphereCollider != nil {
		obj.AddComponent(components.NewSphereCollider(def.SphereCollider.Radius))
		collidable = true
	}
	if collidable {
		w.Pick.Add(obj)
	}

	if def.Draggable {
		body := interact.NewSelectableBody(w.Pick, w)
		obj.AddComponent(body)
		w.handlers = append(w.handlers, body)
		if w.Root == nil {
			w.Root = obj
		}
	}

	if def.Limb != nil {
		if parent == nil {
			return nil, fmt.Errorf("object %q: limb requires a parent object", def.Name)
		}
		cfg := interact.LimbConfig{
			DetachDistance:   def.Limb.DetachDistance,
			ReattachDistance: def.Limb.ReattachDistance,
			HomePosition:     obj.Transform.Position,
			HomeRotation:     obj.Transform.Rotation,
		}
		if cfg.DetachDistance == 0 {
			cfg.DetachDistance = defaults.DetachDistance
		}
		if cfg.ReattachDistance == 0 {
			cfg.ReattachDistance = defaults.ReattachDistance
		}
		limb := interact.NewDetachableLimb(parent, cfg, w.Pick, w, w.Status)
		obj.AddComponent(limb)
		w.handlers = append(w.handlers, limb)
		w.Limbs = append(w.Limbs, limb)
	}

	for i := range def.Children {
		if _, err := w.buildObject(&def.Children[i], obj, defaults); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func (w *World) makeRenderer(def *ObjectDef) (*components.ModelRenderer, error) {
	rd := def.Renderer

	var mesh rl.Mesh
	switch rd.Mesh {
	case "cube":
		mesh = rl.GenMeshCube(rd.Size[0], rd.Size[1], rd.Size[2])
	case "sphere":
		mesh = rl.GenMeshSphere(rd.Radius, 16, 16)
	case "cylinder":
		mesh = rl.GenMeshCylinder(rd.Radius, rd.Height, 16)
	default:
		return nil, fmt.Errorf("object %q: unknown mesh %q", def.Name, rd.Mesh)
	}

	color, ok := lookupColor(rd.Color)
	if !ok {
		return nil, fmt.Errorf("object %q: unknown color %q", def.Name, rd.Color)
	}

	model := rl.LoadModelFromMesh(mesh)
	renderer := components.NewModelRenderer(model, color)
	renderer.HighlightColor = w.HighlightColor
	return renderer, nil
}

// SetHighlighted implements interact.Highlighter for a body and its children.
func (w *World) SetHighlighted(g *engine.GameObject, on bool) {
	if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
		renderer.Highlighted = on
	}
	for _, child := range g.Children {
		w.SetHighlighted(child, on)
	}
}

// Update runs the component lifecycle, then feeds the pointer sample to the
// interactive bodies in their fixed order.
func (w *World) Update(deltaTime float32, p input.PointerSample) {
	w.Scene.Update(deltaTime)
	for _, h := range w.handlers {
		h.HandlePointer(p)
	}
}

// Draw renders the scene. Must run inside BeginMode3D.
func (w *World) Draw() {
	rl.DrawGrid(24, 1)

	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}

	// Show the reattach radius around the empty socket while a limb is off
	for _, limb := range w.Limbs {
		if !limb.Attached() {
			rl.DrawSphereWires(limb.AttachPointWorld(), limb.Config().ReattachDistance, 8, 8, rl.SkyBlue)
		}
	}
}

func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Unload()
		}
	}
}
