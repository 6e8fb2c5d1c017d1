package booking

import (
	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
)

// serviceNames статическая двуязычная таблица отображаемых имён услуг.
// Имя из неё уходит в бэкенд как свободный текст поля service.
var serviceNames = map[i18n.Locale]map[domain.ServiceID]string{
	i18n.LocaleAr: {
		domain.ServiceImplant:    "زراعة أسنان",
		domain.ServiceWhitening:  "تبييض الأسنان",
		domain.ServiceBraces:     "تقويم الأسنان",
		domain.ServiceFilling:    "حشوات الأسنان",
		domain.ServiceCleaning:   "تنظيف الأسنان",
		domain.ServiceExtraction: "خلع الأسنان",
	},
	i18n.LocaleEn: {
		domain.ServiceImplant:    "Dental Implants",
		domain.ServiceWhitening:  "Teeth Whitening",
		domain.ServiceBraces:     "Teeth Alignment",
		domain.ServiceFilling:    "Dental Fillings",
		domain.ServiceCleaning:   "Teeth Cleaning",
		domain.ServiceExtraction: "Tooth Extraction",
	},
}

// ServiceName разрешает id услуги в локализованное имя.
// Неизвестная комбинация отдаёт сам id.
func ServiceName(locale i18n.Locale, id domain.ServiceID) string {
	if names, ok := serviceNames[locale]; ok {
		if name, ok := names[id]; ok {
			return name
		}
	}
	return string(id)
}
