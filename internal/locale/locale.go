// Package locale translates screen names and shell messages.
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var files embed.FS

// Default is the language used when none is configured.
const Default = "pt-BR"

var screenMessages = map[string]string{
	"Login":         "ScreenLogin",
	"Dashboard":     "ScreenDashboard",
	"PIX":           "ScreenPIX",
	"Investimentos": "ScreenInvestments",
	"Cartões":       "ScreenCards",
	"Mais":          "ScreenMore",
	"Bills":         "ScreenBills",
	"Transactions":  "ScreenTransactions",
}

// Translator looks up messages for one language.
type Translator struct {
	localizer *i18n.Localizer
	lang      string
}

// New loads the embedded message files and returns a translator for lang.
func New(lang string) (*Translator, error) {
	if lang == "" {
		lang = Default
	}
	if _, err := language.Parse(lang); err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.BrazilianPortuguese)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := files.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading embedded locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(files, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", e.Name(), err)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, lang, Default),
		lang:      lang,
	}, nil
}

// Lang returns the configured language.
func (t *Translator) Lang() string {
	return t.lang
}

// Text returns the message id rendered with data, or id itself when the
// message is unknown.
func (t *Translator) Text(id string, data map[string]any) string {
	s, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}

// Screen returns the display name of a screen. Unregistered screens are
// shown by their identifier.
func (t *Translator) Screen(screen string) string {
	id, ok := screenMessages[screen]
	if !ok {
		return screen
	}
	return t.Text(id, nil)
}

// Screens maps each screen to its display name.
func (t *Translator) Screens(screens []string) []string {
	out := make([]string, len(screens))
	for i, s := range screens {
		out[i] = t.Screen(s)
	}
	return out
}
