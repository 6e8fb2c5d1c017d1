package i18n

import (
	"golang.org/x/text/language"
)

// Locale поддерживаемая локаль сайта
type Locale string

const (
	LocaleAr Locale = "ar"
	LocaleEn Locale = "en"
)

// DefaultLocale локаль по умолчанию (сайт в первую очередь арабоязычный)
const DefaultLocale = LocaleAr

// Locales список поддерживаемых локалей в порядке приоритета
var Locales = []Locale{LocaleAr, LocaleEn}

// Parse валидирует строку локали из URL
func Parse(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleAr:
		return LocaleAr, true
	case LocaleEn:
		return LocaleEn, true
	default:
		return "", false
	}
}

// IsRTL возвращает true для локалей с письмом справа налево
func (l Locale) IsRTL() bool {
	return l == LocaleAr
}

func (l Locale) String() string {
	return string(l)
}

// supportedTags порядок должен совпадать с Locales: matcher возвращает индекс
var supportedTags = []language.Tag{language.Arabic, language.English}

var matcher = language.NewMatcher(supportedTags)

// MatchAccept подбирает локаль по заголовку Accept-Language.
// Нераспознанный или пустой заголовок даёт локаль по умолчанию.
func MatchAccept(header string) Locale {
	if header == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return Locales[index]
}
