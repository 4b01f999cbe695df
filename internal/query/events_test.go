package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventResolverLongestMatchWins(t *testing.T) {
	// The table deliberately contains a phrase that is a prefix of
	// another. Earlier versions resolved in declaration order, letting
	// the generic phrase shadow the specific one; the resolver now
	// normalizes to longest-phrase-first.
	resolver := NewEventResolver(map[string]string{
		"カウンセリング":     "CV_カウンセリング予約",
		"カウンセリング予約":   "CV_カウンセリング予約",
		"海外カウンセリング予約": "CV_海外カウンセリング",
	})

	tests := []struct {
		name string
		text string
		want string
	}{
		{"specific phrase wins over its prefix", "海外カウンセリング予約は先週何件？", "CV_海外カウンセリング"},
		{"mid-length phrase", "カウンセリング予約の件数", "CV_カウンセリング予約"},
		{"generic phrase still matches alone", "カウンセリングについて", "CV_カウンセリング予約"},
		{"no alias", "セッション数は？", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.text))
		})
	}
}

func TestEventResolverDeterministicTieBreak(t *testing.T) {
	// Equal-length phrases resolve the same way on every construction.
	for i := 0; i < 10; i++ {
		resolver := NewEventResolver(map[string]string{
			"資料請求": "CV_資料請求",
			"単位診断": "CV_単位診断",
		})
		assert.Equal(t, "CV_単位診断", resolver.Resolve("単位診断と資料請求"))
	}
}
