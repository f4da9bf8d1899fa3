package main

import (
	"math"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/urfave/cli"

	"github.com/thesyncim/fft32"
)

const (
	scopeColDef    = termbox.ColorDefault
	scopeColCyan   = termbox.ColorCyan
	scopeColGreen  = termbox.ColorGreen
	scopeColYellow = termbox.ColorYellow
)

// runScope renders a live bar-graph of the RFFT magnitude spectrum of a
// drifting mix of synthetic tones, redrawn on a fixed tick until the user
// presses 'q' or Esc.
func runScope(c *cli.Context) error {
	n := uint32(c.Int("size"))

	e := fft32.NewEngine()
	if err := e.PrecomputeRFFTTwiddles(n); err != nil {
		return err
	}

	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	ticker := time.NewTicker(60 * time.Millisecond)
	defer ticker.Stop()

	var t float64
	exit := false
	for !exit {
		select {
		case ev := <-events:
			if ev.Type == termbox.EventKey && (ev.Key == termbox.KeyEsc || ev.Ch == 'q') {
				exit = true
			}
		case <-ticker.C:
			drawScopeFrame(e, n, t)
			t += 0.05
		}
	}
	return nil
}

func drawScopeFrame(e *fft32.Engine, n uint32, t float64) {
	buf := e.Memory()
	f32 := asFloat32(buf)

	base := 6.0 + 3*math.Sin(t*0.7)
	for i := uint32(0); i < n; i++ {
		phase := float64(i) / float64(n)
		sample := math.Sin(2*math.Pi*base*phase) + 0.5*math.Sin(2*math.Pi*(base*3+1)*phase+t)
		f32[i] = float32(sample)
	}

	if err := e.RFFT(n); err != nil {
		return
	}

	w, h := termbox.Size()
	_ = termbox.Clear(scopeColDef, scopeColDef)
	scopePrint(0, 0, scopeColCyan, scopeColDef, "fft32bench scope - q/Esc to quit")

	bins := int(n/2) + 1
	barArea := h - 2
	if barArea < 1 {
		barArea = 1
	}
	cols := w
	if cols > bins {
		cols = bins
	}

	for col := 0; col < cols; col++ {
		k := col * bins / cols
		re, im := f32[2*k], f32[2*k+1]
		mag := math.Hypot(float64(re), float64(im))
		db := 20 * math.Log10(mag/float64(n)+1e-9)
		const minDB, maxDB = -60.0, 10.0
		if db < minDB {
			db = minDB
		}
		if db > maxDB {
			db = maxDB
		}
		filled := int((db - minDB) / (maxDB - minDB) * float64(barArea))
		for row := 0; row < filled; row++ {
			termbox.SetCell(col, h-2-row, '█', scopeColGreen, scopeColDef)
		}
	}

	scopePrint(0, h-1, scopeColYellow, scopeColDef, "base freq drifting, two-tone mix")
	termbox.Flush()
}

func scopePrint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, r := range msg {
		termbox.SetCell(x, y, r, fg, bg)
		x++
	}
}
