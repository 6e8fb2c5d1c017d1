package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	locale, ok := Parse("ar")
	assert.True(t, ok)
	assert.Equal(t, LocaleAr, locale)

	locale, ok = Parse("en")
	assert.True(t, ok)
	assert.Equal(t, LocaleEn, locale)

	_, ok = Parse("fr")
	assert.False(t, ok)

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestIsRTL(t *testing.T) {
	assert.True(t, LocaleAr.IsRTL())
	assert.False(t, LocaleEn.IsRTL())
}

func TestMatchAccept(t *testing.T) {
	assert.Equal(t, LocaleEn, MatchAccept("en-US,en;q=0.9"))
	assert.Equal(t, LocaleAr, MatchAccept("ar-EG,ar;q=0.9,en;q=0.8"))
	assert.Equal(t, LocaleAr, MatchAccept("ar"))

	// Неподдерживаемый или пустой заголовок ведёт на локаль по умолчанию
	assert.Equal(t, DefaultLocale, MatchAccept("de-DE,de;q=0.9"))
	assert.Equal(t, DefaultLocale, MatchAccept(""))
	assert.Equal(t, DefaultLocale, MatchAccept("not a header"))
}

func TestResolve(t *testing.T) {
	tr := T(LocaleEn)

	assert.Equal(t, "Book Your Appointment", tr.Resolve("booking.title"))
	assert.Equal(t, "Teeth Whitening", tr.Resolve("booking.serviceWhitening"))
	assert.Equal(t, "Confirmed", tr.Resolve("admin.confirmedCount"))
}

func TestResolveArabic(t *testing.T) {
	tr := T(LocaleAr)

	assert.Equal(t, "احجز موعدك", tr.Resolve("booking.title"))
	assert.Equal(t, "تبييض الأسنان", tr.Resolve("booking.serviceWhitening"))
}

func TestResolveMissingKeyReturnsKey(t *testing.T) {
	tr := T(LocaleEn)

	// Любой промах разрешается в сам ключ
	assert.Equal(t, "booking.nope", tr.Resolve("booking.nope"))
	assert.Equal(t, "totally.unknown.path", tr.Resolve("totally.unknown.path"))

	// Путь, упирающийся в поддерево вместо строки, тоже промах
	assert.Equal(t, "booking", tr.Resolve("booking"))
	assert.Equal(t, "booking.errors", tr.Resolve("booking.errors"))

	// Лишний сегмент за строковым листом
	assert.Equal(t, "booking.title.extra", tr.Resolve("booking.title.extra"))
}

func TestDisplayDate(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "10 March 2025", DisplayDate(LocaleEn, date))
	assert.Equal(t, "10 مارس 2025", DisplayDate(LocaleAr, date))
}
