// Command scratchterm is an interactive scratch card in the terminal.
// Drag with the mouse to scratch; the hidden prize shows through as
// the overlay wears away. Press r to reset, q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/scratchfx/scratch"
	"github.com/scratchfx/scratch/audio"
	"github.com/scratchfx/scratch/quality"
)

type card struct {
	screen   tcell.Screen
	widget   *scratch.Widget
	width    int
	height   int
	dragging bool
	message  string
}

func newCard(sound bool, percent float64) (*card, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	c := &card{screen: screen}
	c.width, c.height = screen.Size()

	opts := []scratch.Option{
		scratch.WithGradientColors(scratch.Hex("#a78bfa"), scratch.Hex("#ec4899")),
		scratch.WithMinScratchPercentage(percent),
		scratch.WithBrushSize(3),
		scratch.WithQuality(quality.Low.Settings()),
		scratch.WithInstructionText("Scratch me!"),
		scratch.WithComplete(func() { c.message = "*** revealed! press r to play again ***" }),
	}
	if sound {
		opts = append(opts, scratch.WithSounder(audio.NewPlayer()))
	}

	w, err := scratch.New(c.width, c.height, opts...)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	c.widget = w
	return c, nil
}

// handleInput returns false when the program should exit.
func (c *card) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
			return false
		case ev.Rune() == 'r':
			c.message = ""
			c.widget.Reset()
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		p := scratch.Pt(float64(x), float64(y))
		if ev.Buttons()&tcell.Button1 != 0 {
			if !c.dragging {
				c.dragging = true
				c.widget.PointerDown(p)
			} else {
				c.widget.PointerMove(p)
			}
		} else if c.dragging {
			c.dragging = false
			c.widget.PointerUp()
		}
	case *tcell.EventResize:
		c.screen.Sync()
	}
	return true
}

// shades maps remaining overlay alpha to block characters.
var shades = []rune{' ', '░', '▒', '▓', '█'}

func (c *card) draw() {
	pm := c.widget.Surface().Pixmap()
	for y := 0; y < c.height && y < pm.Height(); y++ {
		for x := 0; x < c.width && x < pm.Width(); x++ {
			a := pm.AlphaAt(x, y)
			if a < 64 {
				// Revealed: show the prize layer.
				c.screen.SetContent(x, y, prizeRune(x, y), nil,
					tcell.StyleDefault.Foreground(tcell.ColorGold))
				continue
			}
			px := pm.GetPixel(x, y)
			shade := shades[int(a)*len(shades)/256]
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
				int32(px.R*255), int32(px.G*255), int32(px.B*255)))
			c.screen.SetContent(x, y, shade, nil, style)
		}
	}

	status := fmt.Sprintf(" %.0f%% | %s ", c.widget.Percent(), c.widget.State())
	if c.message != "" {
		status = c.message
	}
	for i, r := range status {
		c.screen.SetContent(i, c.height-1, r, nil,
			tcell.StyleDefault.Reverse(true))
	}
	c.screen.Show()
}

// prizeRune draws the hidden layer, a simple repeating banner.
func prizeRune(x, y int) rune {
	const banner = "YOU WIN! "
	return rune(banner[(x+y*3)%len(banner)])
}

func (c *card) run() {
	ticker := time.NewTicker(33 * time.Millisecond) // ~30 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- c.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !c.handleInput(ev) {
				return
			}
		case <-ticker.C:
			c.widget.Tick()
			c.draw()
		}
	}
}

func main() {
	var (
		sound   = flag.Bool("sound", false, "enable synthesized sound effects")
		percent = flag.Float64("percent", 50, "completion percentage")
	)
	flag.Parse()

	c, err := newCard(*sound, *percent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer c.screen.Fini()

	c.run()
}
