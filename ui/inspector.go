package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/merge"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// InspectorUI is a read-only panel listing every level and its walls.
type InspectorUI struct {
	UI *ebitenui.UI

	title  *widget.Label
	rows   map[string]*widget.Label
	footer *widget.Label

	titleFace text.Face
	smallFace text.Face
}

func NewInspectorUI(names []string) *InspectorUI {
	ui := &InspectorUI{rows: make(map[string]*widget.Label, len(names))}
	ui.loadFonts()
	ui.buildUI(names)
	return ui
}

func (ui *InspectorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *InspectorUI) buildUI(names []string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	ui.title = widget.NewLabel(
		widget.LabelOpts.Text("LEVELS", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(ui.title)

	for _, name := range names {
		row := widget.NewLabel(
			widget.LabelOpts.Text(name, &ui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{200, 200, 200, 255},
			}),
		)
		ui.rows[name] = row
		panel.AddChild(row)
	}

	ui.footer = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.footer)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// Refresh rewrites every row from the current level registry.
func (ui *InspectorUI) Refresh(levelData *components.LevelData) {
	totalTiles, totalRects := 0, 0
	for _, name := range levelData.Names {
		row, ok := ui.rows[name]
		if !ok {
			continue
		}
		level := levelData.Levels[name]
		rects, spawned := levelData.Spawned[merge.Region(name)]
		row.Label = RowText(name, len(level.Walls), len(rects), spawned, name == levelData.Selected)
		if spawned {
			totalTiles += len(level.Walls)
			totalRects += len(rects)
		}
	}
	ui.footer.Label = FooterText(totalTiles, totalRects)
}

// RowText formats one inspector row.
func RowText(name string, tiles, rects int, spawned, selected bool) string {
	marker := " "
	if selected {
		marker = ">"
	}
	if !spawned {
		return fmt.Sprintf("%s %s  %d tiles  (unloaded)", marker, name, tiles)
	}
	return fmt.Sprintf("%s %s  %d tiles -> %d walls", marker, name, tiles, rects)
}

// FooterText summarises the loaded walls.
func FooterText(tiles, rects int) string {
	if rects == 0 {
		return "no walls loaded"
	}
	return fmt.Sprintf("%d colliders for %d tiles (%.1fx)", rects, tiles, float64(tiles)/float64(rects))
}

func (ui *InspectorUI) Update() {
	ui.UI.Update()
}

func (ui *InspectorUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
