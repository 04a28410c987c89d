// cmd/decoder-tui
//
// Terminal client: plays the decoder locally with mouse clicks.
// Settings come from decoder.ini ([Settings] Level, ShowClock, Word,
// AdvanceDelayMs), created with defaults on first run. -level and -word
// override the file.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/robalobadob/element-decoder/internal/game"
	"github.com/robalobadob/element-decoder/internal/levels"
)

var colorAlert = color.New(color.FgRed)

func main() {
	path := flag.String("config", "decoder.ini", "settings file")
	level := flag.String("level", "", "level id (overrides the settings file)")
	word := flag.String("word", "", "play this word (overrides the settings file)")
	flag.Parse()

	// the screen belongs to tcell; only problems worth seeing before it starts
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	if err := run(*path, *level, *word); err != nil {
		colorAlert.Fprintln(os.Stderr, "decoder:", err)
		os.Exit(1)
	}
}

func run(path, levelID, word string) error {
	st, err := loadSettings(path)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if levelID != "" {
		st.Level = levelID
	}
	if word != "" {
		st.Word = word
	}

	set, err := levels.Load(game.Fits)
	if err != nil {
		return err
	}
	lvl := set.Default()
	if st.Level != "" {
		if lvl, err = set.Get(st.Level); err != nil {
			return err
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	a, err := newApp(s, lvl, st, game.SystemClock{})
	if err != nil {
		return err
	}
	a.settingsPath = path
	return loop(s, a)
}

func loop(s tcell.Screen, a *app) error {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(time.Second / 10)
	defer tick.Stop()

	a.render()
	for {
		select {
		case ev, ok := <-events:
			if !ok || a.handle(ev) {
				return nil
			}
		case <-tick.C:
			a.tick()
		}
		a.render()
	}
}
