package i18n

import (
	"embed"
	"encoding/json"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var bundle *goi18n.Bundle

// Init loads the embedded locale files. Must be called once at startup
// before T.
func Init() error {
	bundle = goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, name := range []string{"locales/active.en.json", "locales/active.km.json"} {
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return err
		}
	}
	return nil
}

// T resolves a message ID for the given language tag ("en", "km").
// Unknown languages and missing IDs fall back to English, then to the
// ID itself.
func T(lang, messageID string) string {
	if bundle == nil {
		return messageID
	}
	localizer := goi18n.NewLocalizer(bundle, lang, "en")
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
