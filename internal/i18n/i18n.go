// Package i18n localizes carpro's labels, money, numbers and alert text.
package i18n

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/currency"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"

	"github.com/theirongolddev/carpro/internal/model"
)

// Supported languages.
const (
	English = "en"
	Arabic  = "ar"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "EGP"

var currencies = map[string]currency.Type{
	"EGP": currency.EGP,
	"USD": currency.USD,
	"EUR": currency.EUR,
	"GBP": currency.GBP,
	"SAR": currency.SAR,
	"AED": currency.AED,
}

// Currencies returns the supported currency codes.
func Currencies() []string {
	return []string{"EGP", "USD", "EUR", "GBP", "SAR", "AED"}
}

// Localizer renders text for one language and currency.
type Localizer struct {
	lang     string
	trans    ut.Translator
	currency currency.Type
}

// New returns a Localizer for lang and the ISO currency code. Unknown
// languages fall back to English and unknown currencies to DefaultCurrency.
func New(lang, currencyCode string) (*Localizer, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := messages[lang]; !ok {
		lang = English
	}
	cur, ok := currencies[strings.ToUpper(currencyCode)]
	if !ok {
		cur = currencies[DefaultCurrency]
	}

	uni := ut.New(en.New(), en.New(), ar.New())
	trans, found := uni.GetTranslator(lang)
	if !found {
		return nil, fmt.Errorf("no locale for %q", lang)
	}
	for key, text := range messages[lang] {
		if err := trans.Add(key, text, false); err != nil {
			return nil, fmt.Errorf("registering %s/%s: %w", lang, key, err)
		}
	}
	return &Localizer{lang: lang, trans: trans, currency: cur}, nil
}

// MustNew is New for the built-in languages, which cannot fail to register.
func MustNew(lang, currencyCode string) *Localizer {
	l, err := New(lang, currencyCode)
	if err != nil {
		panic(err)
	}
	return l
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := messages[lang]
	return ok
}

// Lang returns the active language code.
func (l *Localizer) Lang() string { return l.lang }

// RTL reports whether the language is written right to left.
func (l *Localizer) RTL() bool { return l.lang == Arabic }

// T returns the text for key, or key itself when it has no translation.
func (l *Localizer) T(key string) string {
	s, err := l.trans.T(key)
	if err != nil || s == "" {
		return key
	}
	return s
}

// Money formats v in the configured currency with two decimals.
func (l *Localizer) Money(v float64) string {
	return l.trans.FmtCurrency(v, 2, l.currency)
}

// Number formats v with grouping and the given number of decimals.
func (l *Localizer) Number(v float64, decimals uint64) string {
	return l.trans.FmtNumber(v, decimals)
}

// Quantity formats v without decimals when it is whole and with one otherwise.
func (l *Localizer) Quantity(v float64) string {
	if v == math.Trunc(v) {
		return l.Number(v, 0)
	}
	return l.Number(v, 1)
}

// Month returns the abbreviated month name.
func (l *Localizer) Month(m time.Month) string {
	return l.trans.MonthAbbreviated(m)
}

// Date formats d as "day month year" with the localized month.
func (l *Localizer) Date(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d %s %d", d.Day(), l.Month(d.Month()), d.Year())
}

// Status returns the localized alert status.
func (l *Localizer) Status(s model.AlertStatus) string {
	return l.T(string(s))
}

// Due renders an alert's due text, e.g. "Overdue by 500 km".
func (l *Localizer) Due(d model.DueText) string {
	return fmt.Sprintf("%s %s %s", l.T(string(d.Kind)), l.Quantity(d.Quantity), l.T(string(d.Unit)))
}

// Category returns the localized expense category label.
func (l *Localizer) Category(c model.ExpenseCategory) string {
	return l.T(string(c))
}

// TrendLabels returns localized month labels for a trend series.
func (l *Localizer) TrendLabels(buckets []model.MonthBucket) []string {
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = l.Month(b.Month)
	}
	return labels
}
