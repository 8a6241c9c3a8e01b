package ui

import (
	"bytes"
	"strings"

	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDUI holds the ebitenui interface drawn over the level
type HUDUI struct {
	UI *ebitenui.UI

	healthLabel *widget.Label
	deathLabel  *widget.Label
	stateLabel  *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewHUDUI creates the health display, death message and debug state line
func NewHUDUI() *HUDUI {
	hui := &HUDUI{}
	hui.loadFonts()
	hui.buildUI()
	return hui
}

func (hui *HUDUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	hui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize,
	}
	hui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.FontSize * 0.75,
	}
}

func (hui *HUDUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Health and state, top-left
	topLeft := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.Margin)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	hui.healthLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.normalFace, &widget.LabelColor{
			Idle: cfg.UI.HealthColor,
		}),
	)
	hui.stateLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.smallFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	topLeft.AddChild(hui.healthLabel)
	topLeft.AddChild(hui.stateLabel)
	rootContainer.AddChild(topLeft)

	// Death message, centred
	center := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	hui.deathLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.normalFace, &widget.LabelColor{
			Idle: cfg.UI.DeathColor,
		}),
	)
	center.AddChild(hui.deathLabel)
	rootContainer.AddChild(center)

	hui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Refresh copies the HUD state into the widgets
func (hui *HUDUI) Refresh(hud *components.HUDData, state string) {
	hui.healthLabel.Label = Hearts(hud.Health, hud.Max)
	if hud.DeathTicks > 0 {
		hui.deathLabel.Label = cfg.UI.DeathMessage
	} else {
		hui.deathLabel.Label = ""
	}
	hui.stateLabel.Label = state
}

func (hui *HUDUI) Update() {
	hui.UI.Update()
}

func (hui *HUDUI) Draw(screen *ebiten.Image) {
	hui.UI.Draw(screen)
}

// Hearts renders health as full hearts followed by empty ones
func Hearts(health, max int) string {
	if max < 0 {
		max = 0
	}
	if health < 0 {
		health = 0
	}
	if health > max {
		health = max
	}
	return strings.Repeat(cfg.UI.HeartFull, health) + strings.Repeat(cfg.UI.HeartEmpty, max-health)
}
