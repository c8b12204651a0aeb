package translation

import "context"

// Provider exposes the three remote translation operations.
type Provider interface {
	// Languages lists the languages the service can translate between,
	// with names localized in the target locale.
	Languages(ctx context.Context, target string) (*LanguageList, error)
	// Detect identifies the language of the text and returns its code.
	Detect(ctx context.Context, text string) (string, error)
	// Translate converts text into the target locale's language.
	Translate(ctx context.Context, text, targetLocale, sourceLocale string) (string, error)
	Name() string
}

// Language is one supported language as reported by the remote service.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LanguageList carries the three views derived from one list-languages
// call: the languages in response order, a code->name index, and a locale
// identifier per language code.
type LanguageList struct {
	Languages []Language        `json:"languages"`
	Names     map[string]string `json:"names"`
	Locales   []string          `json:"locales"`
}
