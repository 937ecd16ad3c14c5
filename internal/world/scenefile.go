package world

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name     string     `json:"name"`
	Tags     []string   `json:"tags,omitempty"`
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation,omitempty"`
	Scale    [3]float32 `json:"scale,omitempty"`

	Renderer       *RendererDef       `json:"renderer,omitempty"`
	BoxCollider    *BoxColliderDef    `json:"boxCollider,omitempty"`
	SphereCollider *SphereColliderDef `json:"sphereCollider,omitempty"`
	Limb           *LimbDef           `json:"limb,omitempty"`

	// Draggable marks the object as a selectable body: hovering highlights
	// it and dragging moves it together with all of its children.
	Draggable bool `json:"draggable,omitempty"`

	Children []ObjectDef `json:"children,omitempty"`
}

type RendererDef struct {
	Mesh   string     `json:"mesh"` // cube, sphere or cylinder
	Size   [3]float32 `json:"size,omitempty"`
	Radius float32    `json:"radius,omitempty"`
	Height float32    `json:"height,omitempty"`
	Color  string     `json:"color"`
}

type BoxColliderDef struct {
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type SphereColliderDef struct {
	Radius float32 `json:"radius"`
}

// LimbDef makes the object a detachable limb of its parent. Zero thresholds
// fall back to the configured interaction defaults.
type LimbDef struct {
	DetachDistance   float32 `json:"detachDistance,omitempty"`
	ReattachDistance float32 `json:"reattachDistance,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Beige":     rl.Beige,
	"Brown":     rl.Brown,
	"DarkBlue":  rl.DarkBlue,
}

func lookupColor(name string) (rl.Color, bool) {
	c, ok := colorByName[name]
	return c, ok
}

// --- Loading ---

func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseSceneFile(data)
}

func ParseSceneFile(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	for i := range sf.Objects {
		if err := validateObject(&sf.Objects[i], false); err != nil {
			return nil, err
		}
	}
	return &sf, nil
}

func validateObject(def *ObjectDef, hasParent bool) error {
	if def.Name == "" {
		return fmt.Errorf("scene object without a name")
	}
	if def.Renderer != nil {
		switch def.Renderer.Mesh {
		case "cube", "sphere", "cylinder":
		default:
			return fmt.Errorf("object %q: unknown mesh %q", def.Name, def.Renderer.Mesh)
		}
		if _, ok := lookupColor(def.Renderer.Color); !ok {
			return fmt.Errorf("object %q: unknown color %q", def.Name, def.Renderer.Color)
		}
	}
	if def.Limb != nil {
		if !hasParent {
			return fmt.Errorf("object %q: limb requires a parent object", def.Name)
		}
		if def.Limb.DetachDistance < 0 || def.Limb.ReattachDistance < 0 {
			return fmt.Errorf("object %q: limb thresholds must not be negative", def.Name)
		}
	}
	for i := range def.Children {
		if err := validateObject(&def.Children[i], true); err != nil {
			return err
		}
	}
	return nil
}
