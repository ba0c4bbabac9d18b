package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeysByName is the reverse of tcell.KeyNames, lower-cased
var specialKeysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig turns key name -> action name bindings into a sparse override KeyTable
// Single characters bind runes, longer names bind special keys ("Enter", "Up", "Ctrl-Q")
// Returns error on unknown action or key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	for keyStr, actionName := range bindings {
		entry, ok := ActionEntry(actionName)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action %q", keyStr, actionName)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = entry
			continue
		}

		k, ok := specialKeysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("key %q: unknown key name", keyStr)
		}
		kt.SpecialKeys[k] = entry
	}

	return kt, nil
}

func resolveRune(keyStr string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(keyStr)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(keyStr) == 1 {
		r, _ := utf8.DecodeRuneInString(keyStr)
		return r, true
	}
	return 0, false
}
