package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brightdental/booking-web/internal/domain"
)

// AdminTokenHeader статический заголовок с учётными данными администратора.
// Прикрепляется к каждому запросу, только когда токен сконфигурирован.
const AdminTokenHeader = "X-Admin-Token"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент REST-бэкенда клиники. Не держит состояния между вызовами:
// каждый вызов — независимый one-shot запрос без кеширования и ретраев.
type Client struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда клиники.
// transport может быть nil (будет использован http.DefaultTransport);
// обёрнутый метриками transport передаётся из main.
func NewClient(baseURL, adminToken string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		adminToken: adminToken,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// do выполняет запрос и декодирует успешный ответ в out (если out != nil).
// createOp включает чтение структурированной ошибки из тела: её message
// возвращается дословно, иначе используется fallback.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, createOp bool, fallback string) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrRequestFailed, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.adminToken != "" {
		req.Header.Set(AdminTokenHeader, c.adminToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки (DNS, таймаут, connection refused) отдаются как
		// generic ошибка без ретраев
		return fmt.Errorf("%w: %s: %v", ErrRequestFailed, fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if createOp {
			var errResp errorResponse
			if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
				return &ResponseError{StatusCode: resp.StatusCode, Message: errResp.Message}
			}
			return &ResponseError{StatusCode: resp.StatusCode, Message: fallback}
		}
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s: unexpected status %d", ErrRequestFailed, fallback, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// Health проверяет живость бэкенда, payload возвращается как есть
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out, false, "health check failed"); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPatients возвращает всех пациентов
func (c *Client) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	var out []domain.Patient
	if err := c.do(ctx, http.MethodGet, "/patients", nil, &out, false, "failed to fetch patients"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePatient создает или переиспользует запись пациента
func (c *Client) CreatePatient(ctx context.Context, req CreatePatientRequest) (*CreatePatientResponse, error) {
	var out CreatePatientResponse
	if err := c.do(ctx, http.MethodPost, "/patients", req, &out, true, fallbackCreatePatient); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPatient возвращает пациента по ID
func (c *Client) GetPatient(ctx context.Context, id int64) (*domain.Patient, error) {
	var out domain.Patient
	path := fmt.Sprintf("/patients/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false, "failed to fetch patient"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePatient частично обновляет запись пациента
func (c *Client) UpdatePatient(ctx context.Context, id int64, req UpdatePatientRequest) (*domain.Patient, error) {
	var out domain.Patient
	path := fmt.Sprintf("/patients/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &out, false, "failed to update patient"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePatient удаляет запись пациента
func (c *Client) DeletePatient(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/patients/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, false, "failed to delete patient")
}

// ListAppointments возвращает все записи на приём
func (c *Client) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &out, false, "failed to fetch appointments"); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment создает запись на приём
func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error) {
	var out domain.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", req, &out, true, fallbackCreateAppointment); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAppointment возвращает запись на приём по ID
func (c *Client) GetAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	var out domain.Appointment
	path := fmt.Sprintf("/appointments/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false, "failed to fetch appointment"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointment частично обновляет запись на приём
func (c *Client) UpdateAppointment(ctx context.Context, id int64, req UpdateAppointmentRequest) (*domain.Appointment, error) {
	var out domain.Appointment
	path := fmt.Sprintf("/appointments/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &out, false, "failed to update appointment"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAppointment удаляет запись на приём. Операция терминальна.
func (c *Client) DeleteAppointment(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/appointments/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, false, "failed to delete appointment")
}

// ListAppointmentsByStatus возвращает записи с указанным статусом
func (c *Client) ListAppointmentsByStatus(ctx context.Context, status domain.AppointmentStatus) ([]domain.Appointment, error) {
	var out []domain.Appointment
	path := fmt.Sprintf("/appointments/status/%s", status)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false, "failed to fetch appointments by status"); err != nil {
		return nil, err
	}
	return out, nil
}

// BookedSlots возвращает занятые слоты на дату (формат YYYY-MM-DD)
func (c *Client) BookedSlots(ctx context.Context, date string) ([]string, error) {
	var out BookedSlotsResponse
	path := "/appointments/booked-slots?date=" + date
	if err := c.do(ctx, http.MethodGet, path, nil, &out, false, "failed to fetch booked slots"); err != nil {
		return nil, err
	}
	return out.BookedSlots, nil
}

// VerifyAdmin проверяет сконфигурированный админ-токен на бэкенде
func (c *Client) VerifyAdmin(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/verify-admin", nil, nil, false, "admin token verification failed")
}
