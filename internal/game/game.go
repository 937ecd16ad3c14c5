package game

import (
	"errors"
	"fmt"

	"robotlab/internal/audio"
	"robotlab/internal/components"
	"robotlab/internal/config"
	"robotlab/internal/engine"
	"robotlab/internal/input"
	"robotlab/internal/interact"
	"robotlab/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	cfg   config.Config
	World *world.World

	rig        *engine.GameObject
	orbit      *components.OrbitCamera
	mouse      *input.Mouse
	statusText *components.UIText
}

func New(cfg config.Config) *Game {
	return &Game{
		cfg:   cfg,
		World: world.New(),
		mouse: input.NewMouse(),
	}
}

func (g *Game) Run(scenePath string) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.cfg.Window.TargetFPS)

	audio.Init()
	defer audio.Shutdown()

	if err := g.setup(scenePath); err != nil {
		return err
	}
	defer g.World.Unload()

	for !rl.WindowShouldClose() {
		g.update()
		g.draw()
	}
	return nil
}

func (g *Game) setup(scenePath string) error {
	hl := g.cfg.Highlight.Color
	g.World.HighlightColor = rl.NewColor(hl[0], hl[1], hl[2], hl[3])

	sf, err := world.LoadSceneFile(scenePath)
	if err != nil {
		return err
	}
	if err := g.World.Build(sf, g.cfg.Interaction); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	if g.World.Root == nil {
		return errors.New("scene has no draggable root object")
	}

	// Camera rig lives outside the scene: it must update before the pointer
	// is sampled, so the ray comes from this frame's camera.
	g.rig = engine.NewGameObject("CameraRig")
	g.orbit = components.NewOrbitCamera(g.World.Root)
	g.orbit.Distance = g.cfg.Camera.Distance
	g.orbit.Yaw = g.cfg.Camera.Yaw
	g.orbit.Pitch = g.cfg.Camera.Pitch
	g.orbit.LookSpeed = g.cfg.Camera.LookSpeed
	g.orbit.ZoomSpeed = g.cfg.Camera.ZoomSpeed
	g.rig.AddComponent(g.orbit)
	g.rig.Start()

	for _, limb := range g.World.Limbs {
		limb.OnAttachmentChanged.AddListener(func(attached bool) {
			if attached {
				audio.PlayAttach()
			} else {
				audio.PlayDetach()
			}
		})
	}

	g.statusText = components.NewUIText()
	g.statusText.Text = g.World.Status.Status()
	g.statusText.FontSize = 24
	return nil
}

func (g *Game) update() {
	deltaTime := rl.GetFrameTime()

	g.rig.Update(deltaTime)
	cam := g.orbit.Camera()

	sample := g.mouse.Sample(cam)
	g.World.Update(deltaTime, sample)

	g.statusText.Text = g.World.Status.Status()
	if g.statusText.Text == interact.StatusAttached {
		g.statusText.Color = rl.Green
	} else {
		g.statusText.Color = rl.Orange
	}
}

func (g *Game) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(g.orbit.Camera())
	g.World.Draw()
	rl.EndMode3D()

	g.drawHUD()
	rl.EndDrawing()
}
