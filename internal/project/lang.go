package project

import (
	"fmt"
	"path/filepath"

	"github.com/oceanplan/sizecard/internal/contract"
	"golang.org/x/text/language"
)

// Translator is a flat key -> string translation table.
type Translator struct {
	Locale  language.Tag
	entries map[string]string
}

var _ contract.Translator = (*Translator)(nil) // Compile-time check

// NewTranslator wraps an in-memory translation table.
func NewTranslator(locale language.Tag, entries map[string]string) *Translator {
	return &Translator{Locale: locale, entries: entries}
}

// T returns the translation of key, or the key itself when there is none.
func (t *Translator) T(key string) string {
	if t == nil {
		return key
	}
	if s, ok := t.entries[key]; ok && s != "" {
		return s
	}
	return key
}

// LoadTranslator reads the translation table of locale from dir/lang. Both
// lang/<locale>.json and lang/<locale>/translation.json layouts are accepted,
// and a regional locale falls back to its base language (pt-BR -> pt).
// A locale without any table yields an empty translator that echoes keys.
func LoadTranslator(dir string, locale language.Tag) (*Translator, error) {
	for _, name := range localeCandidates(locale) {
		for _, base := range []string{name, filepath.Join(name, "translation")} {
			entries := map[string]string{}
			err := decodeRequired(filepath.Join(dir, "lang"), base, &entries)
			if err == nil {
				return NewTranslator(locale, entries), nil
			}
			if !isNotExist(err) {
				return nil, fmt.Errorf("failed to load translations for %s: %w", locale, err)
			}
		}
	}
	return NewTranslator(locale, nil), nil
}

// localeCandidates lists the file names to try for a locale, most specific first.
func localeCandidates(locale language.Tag) []string {
	names := []string{locale.String()}
	if base, conf := locale.Base(); conf != language.No && base.String() != locale.String() {
		names = append(names, base.String())
	}
	return names
}
