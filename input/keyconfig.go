package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownIntent = errors.New("unknown intent")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the lower-cased reverse of tcell.KeyNames
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	m["escape"] = tcell.KeyEscape
	return m
}()

// BuildKeyTable applies config overrides on top of base and returns a new table
// runes maps a single character or alias to an intent name; keys maps a tcell key name
// Binding to "none" removes the key. base is not modified
func BuildKeyTable(base *KeyTable, runes, keys map[string]string) (*KeyTable, error) {
	kt := base.Clone()

	for keyStr, name := range runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}
		intent, err := resolveIntent(name)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		kt.BindRune(r, intent)
	}

	for keyStr, name := range keys {
		k, ok := KeyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[special_keys] %w: %q", ErrUnknownKey, keyStr)
		}
		intent, err := resolveIntent(name)
		if err != nil {
			return nil, fmt.Errorf("[special_keys] key %q: %w", keyStr, err)
		}
		kt.BindKey(k, intent)
	}

	return kt, nil
}

// KeyByName resolves a tcell key name such as "Left" or "Ctrl-C", case-insensitive
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("%w: %q (expected single character or alias)", ErrUnknownKey, s)
}

func resolveIntent(name string) (Intent, error) {
	intent, ok := IntentByName(name)
	if !ok {
		return IntentNone, fmt.Errorf("%w: %q", ErrUnknownIntent, name)
	}
	return intent, nil
}
