package main

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neuralfield/config"
	"github.com/lixenwraith/neuralfield/events"
	"github.com/lixenwraith/neuralfield/host"
)

// page is the surrounding application: it feeds terminal input to the bus and
// pushes the theme flag into the host
type page struct {
	screen tcell.Screen
	bus    *events.Bus
	host   *host.Host
	hint   *HintRenderer
	stats  *StatsRenderer
	quit   context.CancelFunc

	// Terminal background sampled before the screen took the tty, stands in for theme "auto"
	termDark bool

	unsubscribe []func()
}

func newPage(screen tcell.Screen, bus *events.Bus, h *host.Host, hint *HintRenderer, stats *StatsRenderer, termDark bool, quit context.CancelFunc) *page {
	p := &page{screen: screen, bus: bus, host: h, hint: hint, stats: stats, termDark: termDark, quit: quit}
	p.unsubscribe = []func(){
		bus.Subscribe(events.EventThemeToggle, p.onTheme),
		bus.Subscribe(events.EventQuit, p.onQuit),
	}
	return p
}

func (p *page) close() {
	for _, unsub := range p.unsubscribe {
		unsub()
	}
}

func (p *page) onTheme(ev events.Event) {
	if t, ok := ev.Payload.(*events.ThemePayload); ok {
		log.Printf("[page] theme dark=%v", t.Dark)
		p.host.SetTheme(t.Dark)
	}
}

func (p *page) onQuit(events.Event) {
	if p.quit != nil {
		p.quit()
	}
}

// applyConfig pushes live-reloadable settings from a config file change
func (p *page) applyConfig(cfg config.Config) {
	if p.hint != nil {
		p.hint.SetVisible(cfg.Hint)
	}
	if dark := cfg.ResolveDark(p.termDark); dark != p.host.Dark() {
		p.bus.Publish(events.EventThemeToggle, &events.ThemePayload{Dark: dark})
	}
}

// dispatch translates one terminal event onto the bus
func (p *page) dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		w, h := p.screen.Size()
		x, y := events.NormalizePointer(col, row, w, h)
		p.bus.Publish(events.EventPointerMove, &events.PointerMovePayload{X: x, Y: y, Col: col, Row: row})

	case *tcell.EventResize:
		w, h := ev.Size()
		p.bus.Publish(events.EventResize, &events.ResizePayload{Width: w, Height: h})

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			p.bus.Publish(events.EventQuit, nil)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			p.bus.Publish(events.EventQuit, nil)
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 't' || ev.Rune() == 'T'):
			p.bus.Publish(events.EventThemeToggle, &events.ThemePayload{Dark: !p.host.Dark()})
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'h':
			p.hint.SetVisible(!p.hint.IsVisible())
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
			if p.stats != nil {
				p.stats.Toggle()
			}
		}
	}
}

// pump polls the screen until ctx is done or the screen is finalized
func (p *page) pump(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := p.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		p.dispatch(ev)
	}
}
