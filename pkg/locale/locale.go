package locale

import (
	"context"
	"strings"
)

type localeKey struct{}

// ParseLang normalizes a language header value to a supported code. Matching
// is case-insensitive and accepts a few spelled-out names alongside the ISO
// codes; anything unknown maps to DefaultLang.
func ParseLang(lang string) string {
	switch strings.TrimSpace(strings.ToLower(lang)) {
	case EN, "english":
		return EN
	case VI, "vietnamese", "việt nam":
		return VI
	case JA, "japanese":
		return JA
	default:
		return DefaultLang
	}
}

// IsValidLang reports whether lang is a supported code.
func IsValidLang(lang string) bool {
	lang = strings.TrimSpace(strings.ToLower(lang))
	for _, supported := range LangList {
		if lang == supported {
			return true
		}
	}
	return false
}

// SetLocaleToContext stores lang in the context, substituting DefaultLang
// for unsupported values.
func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	if !IsValidLang(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, localeKey{}, lang)
}

// GetLang returns the language stored in ctx, or DefaultLang.
func GetLang(ctx context.Context) string {
	if lang, ok := ctx.Value(localeKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}
