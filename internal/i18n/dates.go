package i18n

import (
	"fmt"
	"time"
)

// arabicMonths названия месяцев для отображаемой даты в арабской локали
var arabicMonths = map[time.Month]string{
	time.January:   "يناير",
	time.February:  "فبراير",
	time.March:     "مارس",
	time.April:     "أبريل",
	time.May:       "مايو",
	time.June:      "يونيو",
	time.July:      "يوليو",
	time.August:    "أغسطس",
	time.September: "سبتمبر",
	time.October:   "أكتوبر",
	time.November:  "نوفمبر",
	time.December:  "ديسمبر",
}

// DisplayDate форматирует дату для подтверждения брони: "10 March 2025"
// или арабский эквивалент
func DisplayDate(locale Locale, date time.Time) string {
	if locale == LocaleAr {
		return fmt.Sprintf("%02d %s %d", date.Day(), arabicMonths[date.Month()], date.Year())
	}
	return date.Format("02 January 2006")
}
