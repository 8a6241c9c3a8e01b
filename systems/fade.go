package systems

import (
	"image/color"

	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateFade(ecs *ecs.ECS) {
	if entry, ok := components.Fade.First(ecs.World); ok {
		components.Fade.Get(entry).Update(deltaTime())
	}
}

func fadeTo(w donburi.World, alpha float32, seconds float64) {
	if entry, ok := components.Fade.First(w); ok {
		components.Fade.Get(entry).FadeTo(alpha, seconds)
	}
}

// DrawFade covers the screen with the fade colour at the current alpha.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(ecs.World)
	if !ok {
		return
	}
	alpha := components.Fade.Get(entry).Alpha
	if alpha <= 0 {
		return
	}
	c := cfg.Fade.Color
	a := alpha * float32(c.A) / 255
	overlay := color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(255 * a),
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), overlay, false)
}
