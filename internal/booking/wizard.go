package booking

import (
	"time"

	"github.com/brightdental/booking-web/internal/domain"
)

// State состояние мастера бронирования. Переходы только через guard-методы
// Wizard: незаконный переход (например confirmed → select_datetime)
// невозможен снаружи.
type State string

const (
	StateSelectService  State = "select_service"
	StateSelectDateTime State = "select_datetime"
	StateFillDetails    State = "fill_details"
	StateConfirmed      State = "confirmed"
)

// Draft черновик брони. Принадлежит одному мастеру на всё время сессии
// и сбрасывается только созданием новой сессии.
type Draft struct {
	Service domain.ServiceID
	Date    time.Time // нулевое значение — дата не выбрана
	Time    string    // пустая строка — время не выбрано
}

// HasDate сообщает, выбрана ли дата
func (d Draft) HasDate() bool {
	return !d.Date.IsZero()
}

// HasTime сообщает, выбрано ли время
func (d Draft) HasTime() bool {
	return d.Time != ""
}

// Confirmation итоговая сводка подтверждённой брони
type Confirmation struct {
	AppointmentID int64
	ServiceName   string
	DisplayDate   string
	SlotLabel     string
	WhatsAppURL   string
	HomePath      string
}

// Wizard конечный автомат мастера бронирования:
// select_service → select_datetime → fill_details → confirmed.
// Не потокобезопасен сам по себе — доступ сериализует сессия.
type Wizard struct {
	state        State
	draft        Draft
	bookedSlots  []string
	submitting   bool
	confirmation *Confirmation
}

// NewWizard создает мастер в начальном состоянии выбора услуги
func NewWizard() *Wizard {
	return &Wizard{state: StateSelectService}
}

// State текущее состояние мастера
func (w *Wizard) State() State {
	return w.state
}

// Draft копия текущего черновика
func (w *Wizard) Draft() Draft {
	return w.draft
}

// BookedSlots занятые слоты для выбранной даты, как их сообщил бэкенд
func (w *Wizard) BookedSlots() []string {
	return w.bookedSlots
}

// Confirmation итог подтверждённой брони, nil до confirmed
func (w *Wizard) Confirmation() *Confirmation {
	return w.confirmation
}

// Slots строит представление доступности: фиксированный 12-слотовый каталог
// минус занятые слоты. Выводится заново при каждом запросе.
func (w *Wizard) Slots() []domain.TimeSlot {
	return BuildSlotView(w.bookedSlots)
}

// SelectService записывает услугу из каталога и переводит мастер на шаг
// выбора даты и времени
func (w *Wizard) SelectService(id domain.ServiceID) error {
	if w.state != StateSelectService {
		return ErrInvalidTransition
	}
	if !domain.IsValidService(id) {
		return ErrUnknownService
	}
	w.draft.Service = id
	w.state = StateSelectDateTime
	return nil
}

// SetDate записывает выбранную дату и занятые слоты, полученные от бэкенда.
// Смена даты сбрасывает выбранное время: доступность нужно выбирать заново.
func (w *Wizard) SetDate(date time.Time, booked []string) error {
	if w.state != StateSelectDateTime {
		return ErrInvalidTransition
	}
	w.draft.Date = date
	w.draft.Time = ""
	w.bookedSlots = booked
	return nil
}

// SelectTime записывает доступный слот и переводит мастер на шаг контактных
// данных. Повторный выбор уже выбранного слота идемпотентен: черновик и шаг
// не меняются. Занятый или неизвестный слот отклоняется.
func (w *Wizard) SelectTime(label string) error {
	if w.state != StateSelectDateTime {
		return ErrInvalidTransition
	}
	if !domain.IsValidSlot(label) {
		return ErrUnknownSlot
	}
	if label == w.draft.Time {
		return nil
	}
	for _, b := range w.bookedSlots {
		if b == label {
			return ErrSlotUnavailable
		}
	}
	w.draft.Time = label
	w.state = StateFillDetails
	return nil
}

// Back явный шаг назад: fill_details → select_datetime или
// select_datetime → select_service. Из других состояний запрещён.
func (w *Wizard) Back() error {
	switch w.state {
	case StateFillDetails:
		w.state = StateSelectDateTime
	case StateSelectDateTime:
		w.state = StateSelectService
	default:
		return ErrInvalidTransition
	}
	return nil
}

// beginSubmit ставит флаг отправки; в рамках одной сессии в полёте может
// быть только одна отправка
func (w *Wizard) beginSubmit() error {
	if w.state != StateFillDetails {
		return ErrInvalidTransition
	}
	if w.submitting {
		return ErrSubmissionInFlight
	}
	w.submitting = true
	return nil
}

func (w *Wizard) endSubmit() {
	w.submitting = false
}

// confirm завершает мастер. Состояние терминально.
func (w *Wizard) confirm(c *Confirmation) {
	w.confirmation = c
	w.state = StateConfirmed
}

// regressToDateTime принудительный возврат на выбор даты и времени после
// конфликта слота. Кеш занятых слотов намеренно не обновляется: только
// что занятый слот остаётся помеченным свободным до повторного выбора
// даты (совместимость с поведением исходного сайта). Выбранное время
// сбрасывается, чтобы пользователь выбрал слот заново.
func (w *Wizard) regressToDateTime() {
	w.draft.Time = ""
	w.state = StateSelectDateTime
}

// BuildSlotView помечает каждый слот фиксированного каталога занятым или
// свободным по списку бэкенда. Клиент сам конфликты не вычисляет — только
// отражает состояние сервера на момент выбора.
func BuildSlotView(booked []string) []domain.TimeSlot {
	bookedSet := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		bookedSet[b] = struct{}{}
	}

	universe := domain.SlotUniverse()
	slots := make([]domain.TimeSlot, len(universe))
	for i, label := range universe {
		_, taken := bookedSet[label]
		slots[i] = domain.TimeSlot{Label: label, Available: !taken}
	}
	return slots
}
