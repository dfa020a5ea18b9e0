package localization

import (
	"log/slog"

	i18n "github.com/goliatone/go-i18n"
)

// Localizer looks up strings for a single locale and falls back to the
// English text when a translation is missing.
type Localizer struct {
	translator i18n.Translator
	locale     string
}

func New(locale string) (*Localizer, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	store := i18n.NewStaticStore(Translations())
	translator, err := i18n.NewSimpleTranslator(store, i18n.WithTranslatorDefaultLocale(DefaultLocale))
	if err != nil {
		return nil, err
	}

	return &Localizer{
		translator: translator,
		locale:     locale,
	}, nil
}

func (l *Localizer) Locale() string {
	return l.locale
}

func (l *Localizer) T(key string) string {
	msg, err := l.translator.Translate(l.locale, key)
	if err == nil && msg != "" {
		return msg
	}

	fallback, ok := english[key]
	if !ok {
		slog.Warn("unknown translation key", "key", key, "locale", l.locale)
		return key
	}
	return fallback
}
