package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// progressReporter is updated once per completed progressive pass.
type progressReporter interface {
	Update(pass int)
	Done()
}

// plainReporter is the non-TTY fallback: one log line per pass, grounded
// on the teacher's root main.go printing a line after every progressive
// pass.
type plainReporter struct {
	total int
}

func (p plainReporter) Update(pass int) {
	fmt.Printf("pass %d/%d complete\n", pass, p.total)
}

func (p plainReporter) Done() {}

// tuiReporter draws a single full-screen progress bar with
// github.com/gdamore/tcell/v2, used when stdout is a TTY. It intentionally
// does not reproduce the teacher's web/server.go tile-by-tile SSE view —
// that's an application layer outside this CLI's scope — just a
// coarse per-pass bar.
type tuiReporter struct {
	screen tcell.Screen
	total  int
}

func newTUIReporter(total int) (*tuiReporter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &tuiReporter{screen: screen, total: total}, nil
}

func (t *tuiReporter) Update(pass int) {
	t.screen.Clear()
	width, height := t.screen.Size()

	title := "pathtracer"
	drawText(t.screen, 1, 1, tcell.StyleDefault.Bold(true), title)

	label := fmt.Sprintf("pass %d / %d", pass, t.total)
	drawText(t.screen, 1, 3, tcell.StyleDefault, label)

	barWidth := width - 4
	if barWidth < 1 {
		barWidth = 1
	}
	filled := barWidth
	if t.total > 0 {
		filled = barWidth * pass / t.total
	}
	barRow := 5
	if barRow >= height-1 {
		barRow = height - 2
	}
	if barRow < 0 {
		barRow = 0
	}
	for x := 0; x < barWidth; x++ {
		style := tcell.StyleDefault.Background(tcell.ColorGray)
		if x < filled {
			style = tcell.StyleDefault.Background(tcell.ColorGreen)
		}
		t.screen.SetContent(2+x, barRow, ' ', nil, style)
	}

	t.screen.Show()
}

func (t *tuiReporter) Done() {
	drawText(t.screen, 1, 7, tcell.StyleDefault, "render complete")
	t.screen.Show()
}

func (t *tuiReporter) Close() {
	t.screen.Fini()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
