package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/brightdental/booking-web/internal/i18n"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// BookingDetails данные брони для сообщения клинике
type BookingDetails struct {
	PatientName string
	Phone       string
	Email       string
	ServiceName string // уже локализованное имя услуги
	DisplayDate string // отображаемая дата, например "10 March 2025"
	SlotLabel   string // "10:00 AM"
	Notes       string
}

// WhatsApp диспетчер уведомлений через deep-link wa.me.
// Ссылка отдаётся клиенту и открывается в новой вкладке: fire-and-forget,
// без подтверждения доставки.
type WhatsApp struct {
	clinicPhone string
	log         Logger
}

// NewWhatsApp создает диспетчер с номером WhatsApp клиники
func NewWhatsApp(clinicPhone string, log Logger) *WhatsApp {
	return &WhatsApp{clinicPhone: clinicPhone, log: log}
}

// NewBookingLink собирает deep-link с локализованной сводкой новой брони,
// адресованный контактному номеру клиники
func (w *WhatsApp) NewBookingLink(locale i18n.Locale, d BookingDetails) string {
	var message string
	if locale == i18n.LocaleAr {
		notes := d.Notes
		if notes == "" {
			notes = "لا توجد"
		}
		message = fmt.Sprintf(
			"السلام عليكم ورحمة الله وبركاته\n\n📋 حجز جديد!\n\n👤 اسم المريض: %s\n📱 رقم الهاتف: %s\n📧 البريد الإلكتروني: %s\n\n🏥 الخدمة: %s\n📅 التاريخ: %s\n⏰ الوقت: %s\n\n📝 ملاحظات: %s",
			d.PatientName, d.Phone, d.Email, d.ServiceName, d.DisplayDate, d.SlotLabel, notes,
		)
	} else {
		notes := d.Notes
		if notes == "" {
			notes = "None"
		}
		message = fmt.Sprintf(
			"Hello and Greetings 👋\n\n📋 New Booking!\n\n👤 Patient Name: %s\n📱 Phone: %s\n📧 Email: %s\n\n🏥 Service: %s\n📅 Date: %s\n⏰ Time: %s\n\n📝 Notes: %s",
			d.PatientName, d.Phone, d.Email, d.ServiceName, d.DisplayDate, d.SlotLabel, notes,
		)
	}

	w.log.Info("notify: composed new-booking message for patient=%s slot=%s", d.PatientName, d.SlotLabel)
	return Link(w.clinicPhone, message)
}

// PatientGreetingLink собирает deep-link с локализованным подтверждением,
// адресованный номеру пациента (используется админ-дашбордом)
func (w *WhatsApp) PatientGreetingLink(locale i18n.Locale, phone, patientName string) string {
	var message string
	if locale == i18n.LocaleAr {
		message = fmt.Sprintf("السلام عليكم ورحمة الله وبركاته\n\nمرحباً %s\n\nموعدك المؤكد في عيادتنا", patientName)
	} else {
		message = fmt.Sprintf("Hello %s\n\nYour confirmed appointment at our clinic", patientName)
	}
	return Link(phone, message)
}

// Link собирает wa.me URL: из номера выбрасывается всё, кроме цифр,
// текст URL-кодируется
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(phone), url.QueryEscape(message))
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
