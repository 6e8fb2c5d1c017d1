package booking

import (
	"fmt"
	"strings"

	"github.com/brightdental/booking-web/internal/domain"
	"github.com/brightdental/booking-web/internal/i18n"
)

// ContactForm контактные данные с третьего шага мастера
type ContactForm struct {
	FullName string
	Phone    string
	Email    string
	Notes    string
}

// Validate проверяет обязательные поля формы
func (f ContactForm) Validate() error {
	if strings.TrimSpace(f.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidContact)
	}
	if strings.TrimSpace(f.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidContact)
	}
	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidContact)
	}
	return nil
}

// ServiceOption элемент каталога услуг с локализованным именем
type ServiceOption struct {
	ID   domain.ServiceID
	Name string
	Icon string
}

// View снимок состояния сессии мастера для HTTP-слоя
type View struct {
	SessionID    string
	Locale       i18n.Locale
	State        State
	Service      domain.ServiceID
	Date         string // YYYY-MM-DD, пусто если дата не выбрана
	Time         string
	Services     []ServiceOption   // каталог для шага выбора услуги
	Slots        []domain.TimeSlot // представление доступности для шага даты/времени
	Confirmation *Confirmation
}

// newView строит снимок. Вызывается с удержанным мьютексом сессии.
func newView(sess *Session) *View {
	w := sess.Wizard
	draft := w.Draft()

	v := &View{
		SessionID:    sess.ID,
		Locale:       sess.Locale,
		State:        w.State(),
		Service:      draft.Service,
		Time:         draft.Time,
		Confirmation: w.Confirmation(),
	}
	if draft.HasDate() {
		v.Date = draft.Date.Format(domain.DateFormat)
	}

	switch w.State() {
	case StateSelectService:
		v.Services = localizedCatalog(sess.Locale)
	case StateSelectDateTime:
		v.Slots = w.Slots()
	}
	return v
}

func localizedCatalog(locale i18n.Locale) []ServiceOption {
	catalog := domain.Catalog()
	out := make([]ServiceOption, len(catalog))
	for i, s := range catalog {
		out[i] = ServiceOption{
			ID:   s.ID,
			Name: ServiceName(locale, s.ID),
			Icon: s.Icon,
		}
	}
	return out
}
