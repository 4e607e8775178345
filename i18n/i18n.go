package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language represents supported languages
type Language string

const (
	German  Language = "Deutsch"
	English Language = "English"
)

var supported = []language.Tag{language.German, language.English}

var matcher = language.NewMatcher(supported)

// Match maps a BCP 47 tag such as "de-AT" or "en" to a supported language.
// Unknown or malformed tags fall back to German.
func Match(tag string) Language {
	t, err := language.Parse(tag)
	if err != nil {
		return German
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return German
	}
	if supported[idx] == language.English {
		return English
	}
	return German
}

// Translator provides translation functionality
type Translator struct {
	language     Language
	translations map[Language]map[string]string
}

// NewTranslator creates a translator with both message tables loaded.
func NewTranslator(lang Language) *Translator {
	return &Translator{
		language: lang,
		translations: map[Language]map[string]string{
			German:  germanTranslations,
			English: englishTranslations,
		},
	}
}

// Language returns the language messages are rendered in.
func (t *Translator) Language() Language {
	return t.language
}

// T translates a key with optional parameters
func (t *Translator) T(key string, params ...interface{}) string {
	langMap, ok := t.translations[t.language]
	if !ok {
		return key
	}

	text, ok := langMap[key]
	if !ok {
		return key
	}

	if len(params) > 0 {
		return fmt.Sprintf(text, params...)
	}
	return text
}
