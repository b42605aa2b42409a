//go:build view

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sliceViewer displays a fixed slice of the solved field until Escape is
// pressed or the window is closed.
type sliceViewer struct {
	size   int
	pixels []byte
}

func (v *sliceViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *sliceViewer) Draw(screen *ebiten.Image) {
	screen.WritePixels(v.pixels)
}

// Layout reports the logical screen size used by Ebiten: one pixel per cell.
func (v *sliceViewer) Layout(_, _ int) (int, int) { return v.size, v.size }

// showSlice opens a window for rows and blocks until it is closed.
func showSlice(title string, rows [][]float32) error {
	v := &sliceViewer{size: len(rows), pixels: slicePixels(rows)}
	window := clampCoord(v.size*viewWindowScale, v.size, viewMaxWindowPixels)
	ebiten.SetWindowSize(window, window)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(v)
}
