package internal

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizerMu sync.RWMutex
	localizer   *i18n.Localizer
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		paths, err := fs.Glob(localeFiles, "locales/*.toml")
		if err != nil {
			GetInternalLogger().Error("Failed to list locale files", "error", err)
			return
		}
		for _, path := range paths {
			if _, err := bundle.LoadMessageFileFS(localeFiles, path); err != nil {
				GetInternalLogger().Error("Failed to load locale file", "path", path, "error", err)
			}
		}
	})
	return bundle
}

// SetLanguage selects the languages labels are translated into, most
// preferred first. Accepts BCP 47 tags or Accept-Language style strings.
// Untranslated messages fall back to English.
func SetLanguage(langs ...string) {
	l := i18n.NewLocalizer(getBundle(), append(langs, language.English.String())...)

	localizerMu.Lock()
	localizer = l
	localizerMu.Unlock()
}

// Languages returns the tags that have message files.
func Languages() []language.Tag {
	return getBundle().LanguageTags()
}

// Translate returns the localized text for messageID. Unknown IDs come back
// unchanged.
func Translate(messageID string) string {
	localizerMu.RLock()
	l := localizer
	localizerMu.RUnlock()

	if l == nil {
		SetLanguage()
		localizerMu.RLock()
		l = localizer
		localizerMu.RUnlock()
	}

	// A fallback-language hit still reports MessageNotFoundErr, so only an
	// empty result counts as a miss.
	text, _ := l.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if text == "" {
		return messageID
	}
	return text
}
