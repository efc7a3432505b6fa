package i18n

import (
	"embed"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"metronome/internal/logger"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Translator resolves UI string IDs against the embedded message files,
// preferring the system locale and falling back to English.
type Translator struct {
	localizer *goi18n.Localizer
	logger    logger.Logger
}

// New loads all embedded message files and builds a localizer for the
// given language preferences. An empty preference list uses the system
// locale.
func New(log logger.Logger, preferences ...string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, entry); err != nil {
			return nil, err
		}
		log.Debug("I18n", "message file loaded", map[string]interface{}{
			"file": path.Base(entry),
		})
	}

	if len(preferences) == 0 {
		preferences = systemLocales(log)
	}
	preferences = append(preferences, language.English.String())

	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, preferences...),
		logger:    log,
	}, nil
}

// T returns the translated string for the given message ID. Unknown IDs
// return the ID itself so the UI never renders blank.
func (t *Translator) T(id string) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		t.logger.Warning("I18n", "missing translation", map[string]interface{}{
			"message_id": id,
		})
		return id
	}
	return msg
}

func systemLocales(log logger.Logger) []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Debug("I18n", "system locale unavailable, using english", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return locales
}
