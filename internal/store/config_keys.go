package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type unknownKeyError struct {
	key string
}

func (e unknownKeyError) Error() string {
	return fmt.Sprintf("unknown config key: %s (known: %s)", e.key, strings.Join(ConfigKeys(), ", "))
}

type configSetter func(tc *TUIConfig, value string) error

var configSetters = map[string]configSetter{
	"tui.theme": func(tc *TUIConfig, v string) error {
		switch v {
		case "", "light", "dark", "auto":
			tc.Theme = v
			return nil
		}
		return fmt.Errorf("invalid theme %q (expected light|dark|auto)", v)
	},
	"tui.glyphs": func(tc *TUIConfig, v string) error {
		switch v {
		case "", "unicode", "ascii":
			tc.Glyphs = v
			return nil
		}
		return fmt.Errorf("invalid glyphs %q (expected unicode|ascii)", v)
	},
	"tui.yearSpan": func(tc *TUIConfig, v string) error {
		if v == "" {
			tc.YearSpan = 0
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid yearSpan %q: %w", v, err)
		}
		if n < 1 || n > 200 {
			return fmt.Errorf("invalid yearSpan %d (expected 1..200)", n)
		}
		tc.YearSpan = n
		return nil
	},
}

// ConfigKeys lists the keys accepted by Set.
func ConfigKeys() []string {
	keys := make([]string, 0, len(configSetters))
	for k := range configSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns one preference. An empty value resets it to the default.
func (c *GlobalConfig) Set(key, value string) error {
	set, ok := configSetters[strings.TrimSpace(key)]
	if !ok {
		return unknownKeyError{key: key}
	}
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	return set(c.TUI, strings.ToLower(strings.TrimSpace(value)))
}
