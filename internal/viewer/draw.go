package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"casinobuilder/internal/terrain"
	"casinobuilder/internal/world"
)

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	panel := v.mapPanel()
	drawFilledRect(screen, panel.Min.X, panel.Min.Y, panel.Dx(), panel.Dy(), panelColor)

	g := v.placedGrid()
	clip := screen.SubImage(panel).(*ebiten.Image)
	v.drawTerrain(clip, g)
	v.drawCells(clip, g)
	v.drawPreview(clip, g)
	v.drawCursor(clip, g)
	drawRectBorder(screen, panel.Min.X, panel.Min.Y, panel.Dx(), panel.Dy(), 2, borderColor)

	v.drawSidebar(screen, panel.Max.X+padding, panel.Min.Y, sidebarWidth, panel.Dy())
}

// drawTerrain renders the height map once into an offscreen layer.
func (v *Viewer) drawTerrain(dst *ebiten.Image, g grid) {
	if v.terrainLayer == nil {
		pw, ph := g.pixelSize()
		v.terrainLayer = ebiten.NewImage(pw, ph)
		maxHeight := v.snapshot.MaxHeight
		for _, chunk := range v.terrain.Chunks() {
			for _, tile := range chunk.Tiles() {
				w := tile.WorldCoord()
				h := tile.Heights()
				avg := (h.TopLeft + h.TopRight + h.BottomLeft + h.BottomRight) / 4
				x, y := g.layerPos(w.X, w.Y)
				drawFilledRect(v.terrainLayer, x, y, g.tile, g.tile, heightColor(avg, maxHeight, tile.IsSlope()))
			}
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.originX), float64(g.originY))
	dst.DrawImage(v.terrainLayer, op)
}

func (v *Viewer) drawCells(dst *ebiten.Image, g grid) {
	for c, st := range v.cells {
		if c.Y != v.tools.level {
			continue
		}
		x, y := g.screenPos(c.X, c.Z)
		if st.HasFloor {
			drawFilledRect(dst, x, y, g.tile, g.tile, v.floorColor(st.FloorMaterial))
		}
		if st.HasWall {
			inset := g.tile / 5
			drawFilledRect(dst, x+inset, y+inset, g.tile-2*inset, g.tile-2*inset, wallColor)
			drawRectBorder(dst, x+inset, y+inset, g.tile-2*inset, g.tile-2*inset, 1, wallEdgeColor)
		}
	}
}

func (v *Viewer) floorColor(material string) color.RGBA {
	if v.materials == nil {
		return color.RGBA{150, 150, 150, 255}
	}
	return colorFromRGB(v.materials.GetColor(material), 255)
}

func (v *Viewer) drawPreview(dst *ebiten.Image, g grid) {
	if v.preview == nil {
		return
	}
	for _, r := range v.preview.Results() {
		x, y := g.screenPos(r.Cell.X, r.Cell.Z)
		drawFilledRect(dst, x, y, g.tile, g.tile, previewColor(r.Outcome))
	}
}

func (v *Viewer) drawCursor(dst *ebiten.Image, g grid) {
	mx, my := ebiten.CursorPosition()
	cell, ok := g.cellAt(mx, my, v.tools.level)
	if !ok {
		return
	}
	x, y := g.screenPos(cell.X, cell.Z)
	drawRectBorder(dst, x, y, g.tile, g.tile, 1, cursorColor)
}

func (v *Viewer) drawSidebar(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, sidebarColor)
	drawRectBorder(screen, x, y, w, h, 2, borderColor)

	row := y + 12
	line := func(s string, clr color.Color) {
		drawText(screen, s, x+12, row, clr)
		row += 16
	}

	line(v.cfg.Display.WindowTitle, textColor)
	row += 4
	line("Tool: "+v.tools.label(), textColor)
	line(fmt.Sprintf("Level: %d", v.tools.level), textColor)
	line(fmt.Sprintf("Cells: %d", len(v.cells)), dimTextColor)
	line(fmt.Sprintf("Terrain: seed %d, %d chunks", v.snapshot.Seed, v.terrain.ChunkCount()), dimTextColor)

	row += 8
	mx, my := ebiten.CursorPosition()
	if cell, ok := v.placedGrid().cellAt(mx, my, v.tools.level); ok {
		for _, s := range v.describeCell(cell) {
			line(s, textColor)
		}
	}

	if len(v.legend) > 0 {
		row += 8
		line("Materials (Shift+letter):", dimTextColor)
		for _, s := range v.legend {
			line(fitText(s, w-24), dimTextColor)
		}
	}

	row += 8
	statusColor := textColor
	if v.statusErr {
		statusColor = errorTextColor
	}
	line(fitText(v.status, w-24), statusColor)

	helpY := y + h - len(helpLines)*14 - 8
	for i, s := range helpLines {
		ebitenutil.DebugPrintAt(screen, s, x+12, helpY+i*14)
	}
}

var helpLines = []string{
	"Drag LMB: build  RMB: cancel",
	"F: floor  W: wall  R: remove",
	"Tab/Shift+letter: material",
	"PgUp/PgDn: level",
	"Arrows: pan  Home: recenter",
	"F5: save  F9: load",
	"Esc: quit",
}

// describeCell lists what lies under the cursor: terrain and any built cell.
func (v *Viewer) describeCell(c world.CellCoord) []string {
	out := []string{c.String()}
	tw := terrain.TileWorldCoord{X: c.X, Y: c.Z}
	if tile, ok := v.terrain.TryGetTileFromWorldCoord(tw); ok {
		h := tile.Heights()
		kind := "flat"
		if tile.IsSlope() {
			kind = "slope"
		}
		out = append(out, fmt.Sprintf("Terrain %s in %s", kind, tw.Chunk()))
		out = append(out, fmt.Sprintf("  heights %.1f %.1f %.1f %.1f", h.TopLeft, h.TopRight, h.BottomLeft, h.BottomRight))
		if mask := tile.SlopeNeighborMask(); mask != 0 {
			out = append(out, "  ramps "+maskString(mask))
		}
	}
	if st, ok := v.cells[c]; ok {
		desc := "floor " + st.FloorMaterial
		if st.HasWall {
			desc += " + wall"
		}
		out = append(out, desc)
	}
	return out
}

func maskString(mask terrain.SlopeNeighborMask) string {
	s := ""
	for _, d := range terrain.Directions {
		if mask.Has(d) {
			if s != "" {
				s += " "
			}
			s += d.String()
		}
	}
	return s
}

func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	face := basicfont.Face7x13
	ebitext.Draw(screen, s, face, x, y+face.Ascent, clr)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}

// fitText cuts s so it fits in maxWidth pixels, marking the cut with "..".
func fitText(s string, maxWidth int) string {
	if textWidth(s) <= maxWidth {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && textWidth(string(r)+"..") > maxWidth {
		r = r[:len(r)-1]
	}
	return string(r) + ".."
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.Color) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}
