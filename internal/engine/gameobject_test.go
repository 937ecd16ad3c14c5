package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"robot", "limb"}

	if !obj.HasTag("robot") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("pedestal") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	if parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectIsDescendantOf(t *testing.T) {
	root := NewGameObject("Root")
	mid := NewGameObject("Mid")
	leaf := NewGameObject("Leaf")

	root.AddChild(mid)
	mid.AddChild(leaf)

	if !leaf.IsDescendantOf(root) {
		t.Error("Leaf should be a descendant of Root")
	}
	if !leaf.IsDescendantOf(mid) {
		t.Error("Leaf should be a descendant of Mid")
	}
	if root.IsDescendantOf(leaf) {
		t.Error("Root should not be a descendant of Leaf")
	}
	if root.IsDescendantOf(root) {
		t.Error("An object is not a descendant of itself")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	obj.Start() // Should not panic or re-run component Start
}

func vecNear(a, b rl.Vector3, eps float32) bool {
	return rl.Vector3Distance(a, b) < eps
}

func TestWorldPositionWithParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 2, Y: 1, Z: 0}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 0}
	parent.AddChild(child)

	got := child.WorldPosition()
	want := rl.Vector3{X: 3, Y: 1, Z: 0}
	if !vecNear(got, want, 1e-5) {
		t.Errorf("WorldPosition = %v, want %v", got, want)
	}
}

func TestWorldPositionWithRotatedParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Rotation = rl.Vector3{Y: 90}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 0}
	parent.AddChild(child)

	// 90 degrees around Y carries +X onto -Z
	got := child.WorldPosition()
	want := rl.Vector3{X: 0, Y: 0, Z: -1}
	if !vecNear(got, want, 1e-5) {
		t.Errorf("WorldPosition = %v, want %v", got, want)
	}
}

func TestWorldPositionWithScaledParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 1, Z: 0}
	parent.AddChild(child)

	got := child.WorldPosition()
	want := rl.Vector3{X: 2, Y: 2, Z: 0}
	if !vecNear(got, want, 1e-5) {
		t.Errorf("WorldPosition = %v, want %v", got, want)
	}
}

func TestTransformPoint(t *testing.T) {
	obj := NewGameObject("Obj")
	obj.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}

	got := obj.TransformPoint(rl.Vector3{X: 0, Y: 1, Z: 0})
	want := rl.Vector3{X: 1, Y: 3, Z: 3}
	if !vecNear(got, want, 1e-5) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestSetWorldPositionRoundTrip(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: -2}
	parent.Transform.Rotation = rl.Vector3{Y: 45}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 1, Z: 1}

	child := NewGameObject("Child")
	parent.AddChild(child)

	want := rl.Vector3{X: 3, Y: 1.5, Z: 0.5}
	child.SetWorldPosition(want)

	got := child.WorldPosition()
	if !vecNear(got, want, 1e-4) {
		t.Errorf("WorldPosition after SetWorldPosition = %v, want %v", got, want)
	}
}

func TestSetWorldPositionWithoutParent(t *testing.T) {
	obj := NewGameObject("Obj")
	want := rl.Vector3{X: -4, Y: 2, Z: 9}

	obj.SetWorldPosition(want)

	if obj.Transform.Position != want {
		t.Errorf("Transform.Position = %v, want %v", obj.Transform.Position, want)
	}
}
