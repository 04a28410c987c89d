package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/ini.v1"
)

const settingsSection = "Settings"

// Settings are the player's preferences from decoder.ini.
type Settings struct {
	Level        string // level id; empty means the first level
	ShowClock    bool
	Word         string // fixed word, mostly for practice
	AdvanceDelay time.Duration
}

func defaultSettings() Settings {
	return Settings{ShowClock: true, AdvanceDelay: 700 * time.Millisecond}
}

// loadSettings reads path, creating it with defaults when it does not exist.
func loadSettings(path string) (Settings, error) {
	s := defaultSettings()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := ini.Empty()
		sec := cfg.Section(settingsSection)
		sec.Key("Level").SetValue(s.Level)
		sec.Key("ShowClock").SetValue(strconv.FormatBool(s.ShowClock))
		sec.Key("Word").SetValue(s.Word)
		sec.Key("AdvanceDelayMs").SetValue(strconv.FormatInt(s.AdvanceDelay.Milliseconds(), 10))
		return s, cfg.SaveTo(path)
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return s, err
	}
	sec := cfg.Section(settingsSection)
	s.Level = strings.TrimSpace(sec.Key("Level").String())
	s.ShowClock = sec.Key("ShowClock").MustBool(true)
	s.Word = strings.ToLower(strings.TrimSpace(sec.Key("Word").String()))
	if ms := sec.Key("AdvanceDelayMs").MustInt(700); ms >= 0 {
		s.AdvanceDelay = time.Duration(ms) * time.Millisecond
	}
	return s, nil
}

// saveClock persists the clock toggle; other keys are left as they are.
func saveClock(path string, show bool) error {
	cfg, err := ini.LooseLoad(path)
	if err != nil {
		return err
	}
	cfg.Section(settingsSection).Key("ShowClock").SetValue(strconv.FormatBool(show))
	return cfg.SaveTo(path)
}
