// Package i18n resolves display strings for the supported languages.
package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Language is a supported language code
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Marathi Language = "mr"

	// Default is consulted when the active language lacks a key
	Default = English
)

// ErrUnsupportedLanguage is returned for codes without a catalog
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Info describes a language for the picker
type Info struct {
	Code       Language `json:"code"`
	Name       string   `json:"name"`
	NativeName string   `json:"native_name"`
}

var languages = []Info{
	{Code: English, Name: "English", NativeName: "English"},
	{Code: Hindi, Name: "Hindi", NativeName: "हिंदी"},
	{Code: Marathi, Name: "Marathi", NativeName: "मराठी"},
}

// order matches languages; English first so it wins on no match
var matcher = language.NewMatcher([]language.Tag{language.English, language.Hindi, language.Marathi})

// Languages lists the supported languages in display order
func Languages() []Info {
	out := make([]Info, len(languages))
	copy(out, languages)
	return out
}

// IsSupported reports whether l has a catalog
func (l Language) IsSupported() bool {
	_, ok := catalog[l]
	return ok
}

// Parse validates a language code
func Parse(code string) (Language, error) {
	l := Language(code)
	if !l.IsSupported() {
		return "", fmt.Errorf("%w %q", ErrUnsupportedLanguage, code)
	}
	return l, nil
}

// T looks key up in lang, then in the default language, and finally
// returns the key itself.
func T(lang Language, key string) string {
	if v, ok := catalog[lang][key]; ok {
		return v
	}
	if v, ok := catalog[Default][key]; ok {
		return v
	}
	return key
}

// Messages returns the full table for lang with default-language fallbacks
// filled in.
func Messages(lang Language) map[string]string {
	out := make(map[string]string, len(catalog[Default]))
	for k, v := range catalog[Default] {
		out[k] = v
	}
	for k, v := range catalog[lang] {
		out[k] = v
	}
	return out
}

// Detect picks the best supported language for an Accept-Language header
func Detect(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return languages[idx].Code
}
