// Package language implements a heuristic reply-language classifier.
// It currently distinguishes Turkish from English using character-set and
// keyword analysis; anything else falls back to the default language.
package language

import "strings"

// Supported language codes.
const (
	Turkish = "tr"
	English = "en"

	// Default is used for empty input and for text matching no heuristic.
	Default = English
)

// turkishChars are letters unique to the Turkish alphabet. A single
// occurrence is enough to classify the whole message.
const turkishChars = "ığüşöçİĞÜŞÖÇ"

// turkishKeywords are common Turkish words checked case-insensitively
// against whitespace-delimited tokens. They catch Turkish written
// without its special characters.
var turkishKeywords = map[string]struct{}{
	"ben": {}, "merhaba": {}, "nasıl": {}, "neden": {}, "için": {},
	"var": {}, "yok": {}, "bu": {}, "şu": {}, "ağrı": {}, "hasta": {},
	"ve": {}, "veya": {}, "ile": {}, "bir": {}, "ne": {},
	"mi": {}, "mı": {}, "mu": {}, "mü": {},
}

// Detect classifies the language of text. It is deterministic and has no
// side effects. Short texts without Turkish markers default to English,
// which is why callers should only overwrite a stored language when the
// detected one differs.
func Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return Default
	}
	if strings.ContainsAny(text, turkishChars) {
		return Turkish
	}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if _, ok := turkishKeywords[word]; ok {
			return Turkish
		}
	}
	return Default
}

// Supported reports whether code is a language this service can reply in.
func Supported(code string) bool {
	return code == Turkish || code == English
}
