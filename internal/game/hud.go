package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	hudColorPanel  = rl.NewColor(18, 18, 24, 245)
	hudColorText   = rl.NewColor(200, 200, 208, 255)
	hudColorBorder = rl.NewColor(50, 50, 65, 255)
)

var hudStyled bool

func initHUDStyle() {
	if hudStyled {
		return
	}
	hudStyled = true
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(hudColorPanel))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(hudColorText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(hudColorBorder))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
}

func (g *Game) drawHUD() {
	initHUDStyle()

	panel := rl.Rectangle{X: 10, Y: 10, Width: 270, Height: 120}
	gui.Panel(panel, "Robot Lab")

	g.statusText.Draw(rl.Rectangle{X: panel.X + 12, Y: panel.Y + 30, Width: panel.Width - 24, Height: 30})

	gui.Label(rl.Rectangle{X: panel.X + 12, Y: panel.Y + 62, Width: panel.Width - 24, Height: 18},
		"Left drag: move robot or arm")
	gui.Label(rl.Rectangle{X: panel.X + 12, Y: panel.Y + 80, Width: panel.Width - 24, Height: 18},
		"Right drag: orbit  Wheel: zoom")
	gui.Label(rl.Rectangle{X: panel.X + 12, Y: panel.Y + 98, Width: panel.Width - 24, Height: 18},
		fmt.Sprintf("Pull the arm past %.1f to detach", g.cfg.Interaction.DetachDistance))

	rl.DrawFPS(10, int32(panel.Y+panel.Height)+10)
}
