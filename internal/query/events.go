package query

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// eventAlias maps a natural-language phrase to a canonical conversion
// event identifier. Many phrases can point at the same event.
type eventAlias struct {
	phrase string
	event  string
}

// EventResolver detects a canonical conversion event mentioned in free
// text. The alias table is evaluated longest-phrase-first so that a
// generic phrase never shadows a more specific one that also appears in
// the text ("特別イベント予約" must not lose to "イベント予約").
type EventResolver struct {
	aliases []eventAlias
}

// NewEventResolver builds a resolver from a phrase→event map. Ordering is
// normalized at construction: longer phrases first, ties broken
// lexicographically so resolution is deterministic regardless of map
// iteration order.
func NewEventResolver(aliasMap map[string]string) *EventResolver {
	aliases := make([]eventAlias, 0, len(aliasMap))
	for phrase, event := range aliasMap {
		aliases = append(aliases, eventAlias{phrase: phrase, event: event})
	}
	sort.Slice(aliases, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(aliases[i].phrase), utf8.RuneCountInString(aliases[j].phrase)
		if li != lj {
			return li > lj
		}
		return aliases[i].phrase < aliases[j].phrase
	})
	return &EventResolver{aliases: aliases}
}

// Resolve returns the canonical event id for the first (longest) alias
// phrase contained in the text, or "" when none matches.
func (r *EventResolver) Resolve(text string) string {
	for _, alias := range r.aliases {
		if strings.Contains(text, alias.phrase) {
			return alias.event
		}
	}
	return ""
}
