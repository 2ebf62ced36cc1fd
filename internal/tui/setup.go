package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/carpro/internal/config"
	"github.com/theirongolddev/carpro/internal/i18n"
	"github.com/theirongolddev/carpro/internal/tui/theme"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	Language string
	Currency string
	Theme    string
	DBPath   string
}

// SetupValuesFrom seeds the form with the current configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Language: cfg.General.Language,
		Currency: cfg.General.Currency,
		Theme:    cfg.Appearance.Theme,
		DBPath:   cfg.General.DBPath,
	}
}

// Apply copies the answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	if i18n.Supported(v.Language) {
		cfg.General.Language = v.Language
	}
	if v.Currency != "" {
		cfg.General.Currency = v.Currency
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	cfg.General.DBPath = v.DBPath
}

// NewSetupForm builds the first-run form. Answers are written into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	currencies := make([]huh.Option[string], 0, len(i18n.Currencies()))
	for _, c := range i18n.Currencies() {
		currencies = append(currencies, huh.NewOption(c, c))
	}
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themes = append(themes, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to carpro").
				Description("Track fuel, maintenance and other car expenses.\nA few settings first."),
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("English", i18n.English),
					huh.NewOption("العربية", i18n.Arabic),
				).
				Value(&vals.Language),
			huh.NewSelect[string]().
				Title("Currency").
				Options(currencies...).
				Value(&vals.Currency),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Database file").
				Description("Leave blank for "+config.DefaultDBPath()).
				Value(&vals.DBPath),
		),
	).WithShowHelp(true)
}

// saveSetup persists the form answers and activates the chosen theme.
func saveSetup(vals SetupValues) (config.Config, error) {
	cfg := loadConfigOrDefault()
	vals.Apply(&cfg)
	theme.SetActive(cfg.Appearance.Theme)
	return cfg, config.Save(cfg)
}
