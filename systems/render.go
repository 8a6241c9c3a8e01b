package systems

import (
	"image/color"

	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidColor      = color.RGBA{R: 90, G: 88, B: 110, A: 255}
	ledgeColor      = cfg.Yellow
	platformColor   = cfg.DarkBlue
	hazardColor     = cfg.LightRed
	checkpointColor = cfg.Green
	activeColor     = cfg.LightGreen
	playerColor     = cfg.LightBlue
)

// DrawPlayer renders the player's body and facing.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	body := components.Body.Get(playerEntry)
	flat := viewIsFlat(ecs.World)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawBox(screen, camera, body.Box(), playerColor, flat)

	// Facing
	centre := body.Location()
	tip := centre.Add(body.Rotation().Forward().Flat().Normalize().Scale(body.Box().Size().X))
	x0, y0 := project(camera, centre, w, h, flat)
	x1, y1 := project(camera, tip, w, h, flat)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.White, false)
}

// drawBox fills the front face of b. Outside the side view the back face
// and its edges are outlined to show depth.
func drawBox(screen *ebiten.Image, camera *components.CameraData, b gm.Box3, c color.RGBA, flat bool) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if !flat {
		back := c
		back.A = 120
		strokeFace(screen, camera, b, b.Max.Y, back, flat)
		for _, corner := range [][2]float64{{b.Min.X, b.Min.Z}, {b.Max.X, b.Min.Z}, {b.Min.X, b.Max.Z}, {b.Max.X, b.Max.Z}} {
			x0, y0 := project(camera, gm.V(corner[0], b.Min.Y, corner[1]), w, h, flat)
			x1, y1 := project(camera, gm.V(corner[0], b.Max.Y, corner[1]), w, h, flat)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, back, false)
		}
	}
	x0, y0 := project(camera, gm.V(b.Min.X, b.Min.Y, b.Max.Z), w, h, flat)
	x1, y1 := project(camera, gm.V(b.Max.X, b.Min.Y, b.Min.Z), w, h, flat)
	vector.FillRect(screen, x0, y0, x1-x0, y1-y0, c, false)
}

func drawOutline(screen *ebiten.Image, camera *components.CameraData, b gm.Box3, c color.RGBA, flat bool) {
	strokeFace(screen, camera, b, b.Min.Y, c, flat)
}

func strokeFace(screen *ebiten.Image, camera *components.CameraData, b gm.Box3, depth float64, c color.RGBA, flat bool) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x0, y0 := project(camera, gm.V(b.Min.X, depth, b.Max.Z), w, h, flat)
	x1, y1 := project(camera, gm.V(b.Max.X, depth, b.Min.Z), w, h, flat)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, c, false)
}

// drawLedge marks the grabbable top edge.
func drawLedge(screen *ebiten.Image, camera *components.CameraData, b gm.Box3, flat bool) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x0, y0 := project(camera, gm.V(b.Min.X, b.Min.Y, b.Max.Z), w, h, flat)
	x1, y1 := project(camera, gm.V(b.Max.X, b.Min.Y, b.Max.Z), w, h, flat)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, ledgeColor, false)
}
