package cache

import (
	"strings"
	"unicode"
)

// KeyStrategy resolves the cache key for a call from its logical arguments.
// Either a static key or a derivation function is set.
type KeyStrategy[A any] struct {
	static string
	derive func(A) string
}

// StaticKey is used for entity-independent resources such as the league table.
func StaticKey[A any](key string) KeyStrategy[A] {
	return KeyStrategy[A]{static: key}
}

func DerivedKey[A any](fn func(A) string) KeyStrategy[A] {
	return KeyStrategy[A]{derive: fn}
}

// Resolve returns the key for args. An empty key means the call is not cached.
func (k KeyStrategy[A]) Resolve(args A) string {
	if k.derive != nil {
		return k.derive(args)
	}
	return k.static
}

// PlayerStatsKey builds the key for a player search. Names that differ only in
// case or whitespace share a key.
func PlayerStatsKey(name string) string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
	if compact == "" {
		return ""
	}
	return "player_stats_" + compact
}
