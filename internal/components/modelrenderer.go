package components

import (
	"robotlab/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a model at its GameObject's world transform.
// While Highlighted, the model is tinted with HighlightColor instead of Color.
type ModelRenderer struct {
	engine.BaseComponent
	Model          rl.Model
	Color          rl.Color
	HighlightColor rl.Color
	Highlighted    bool
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:          model,
		Color:          color,
		HighlightColor: rl.Gold,
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	// Build world matrix from the composed transform: scale -> rotate -> translate
	scale := g.WorldScale()
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	rot := g.WorldRotation()
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	pos := g.WorldPosition()
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	m.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	tint := m.Color
	if m.Highlighted {
		tint = m.HighlightColor
	}
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, tint)
}

func (m *ModelRenderer) Unload() {
	rl.UnloadModel(m.Model)
}
