// Package i18n localizes the copy, dates, numbers and relative durations
// shown on the vote page.
package i18n

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/trebuchet-org/nounsgov/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when no locale is configured or matched
const DefaultLocale = "en-US"

var supported = []language.Tag{
	language.AmericanEnglish,
	language.Japanese,
	language.SimplifiedChinese,
}

var supportedNames = []string{"en-US", "ja-JP", "zh-CN"}

var matcher = language.NewMatcher(supported)

var (
	catalogOnce sync.Once
	sharedCat   catalog.Catalog
	catalogErr  error
)

func loadCatalog() (catalog.Catalog, error) {
	catalogOnce.Do(func() {
		sharedCat, catalogErr = newCatalog()
	})
	return sharedCat, catalogErr
}

type dateLayouts struct {
	time     string
	longDate string
}

var layouts = map[language.Tag]dateLayouts{
	language.AmericanEnglish:   {time: "3:04 PM MST", longDate: "January 2, 2006"},
	language.Japanese:          {time: "15:04 MST", longDate: "2006年1月2日"},
	language.SimplifiedChinese: {time: "15:04 MST", longDate: "2006年1月2日"},
}

// Locale formats copy for one of the supported languages
type Locale struct {
	name    string
	tag     language.Tag
	printer *message.Printer
}

// SupportedLocales lists the locale names accepted by ParseLocale
func SupportedLocales() []string {
	return append([]string(nil), supportedNames...)
}

// ParseLocale returns the locale for name, failing with
// domain.ErrUnsupportedLocale when no supported locale matches.
func ParseLocale(name string) (*Locale, error) {
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLocale, name)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedLocale, name)
	}
	return newLocale(index)
}

// MatchLocale is ParseLocale with a fallback to DefaultLocale
func MatchLocale(name string) *Locale {
	if name != "" {
		if loc, err := ParseLocale(name); err == nil {
			return loc
		}
	}
	loc, err := newLocale(0)
	if err != nil {
		// The catalog is static, so this only fails on a programming error.
		panic(err)
	}
	return loc
}

func newLocale(index int) (*Locale, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build message catalog: %w", err)
	}
	tag := supported[index]
	return &Locale{
		name:    supportedNames[index],
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}, nil
}

// Name returns the canonical locale name, e.g. "en-US"
func (l *Locale) Name() string {
	return l.name
}

// T translates key and formats args into it
func (l *Locale) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// FormatNumber formats n with the locale's digit grouping
func (l *Locale) FormatNumber(n uint64) string {
	return l.printer.Sprintf("%d", n)
}

// FormatTime renders the hour, minute and time zone of t
func (l *Locale) FormatTime(t time.Time) string {
	return t.Format(layouts[l.tag].time)
}

// FormatLongDate renders t as a long date, e.g. "May 1, 2024"
func (l *Locale) FormatLongDate(t time.Time) string {
	return t.Format(layouts[l.tag].longDate)
}

// RelativeDuration renders the distance between now and t without a
// "in"/"ago" suffix, using dayjs thresholds.
func (l *Locale) RelativeDuration(t, now time.Time) string {
	seconds := math.Abs(t.Sub(now).Seconds())
	round := func(v float64) int { return int(math.Round(v)) }

	switch {
	case round(seconds) <= 44:
		return l.T(relSeconds)
	case round(seconds) <= 89:
		return l.T(relMinute)
	}

	minutes := round(seconds / 60)
	switch {
	case minutes <= 44:
		return l.T(relMinutes, minutes)
	case minutes <= 89:
		return l.T(relHour)
	}

	hours := round(seconds / 3600)
	switch {
	case hours <= 21:
		return l.T(relHours, hours)
	case hours <= 35:
		return l.T(relDay)
	}

	days := round(seconds / 86400)
	switch {
	case days <= 25:
		return l.T(relDays, days)
	case days <= 45:
		return l.T(relMonth)
	}

	months := round(seconds / 86400 / 30.436875)
	switch {
	case months <= 10:
		return l.T(relMonths, months)
	case months <= 17:
		return l.T(relYear)
	}

	years := round(seconds / 86400 / 365.2425)
	return l.T(relYears, years)
}
