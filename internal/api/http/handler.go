package http

import (
	"context"
	"net/http"
	"time"

	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/service"
)

// Services groups the services the API exposes.
type Services struct {
	Rooms     service.RoomService
	Tenants   service.TenantService
	Payments  service.PaymentService
	Deposits  service.DepositService
	Dashboard service.DashboardService
	Reports   service.ReportService
}

// Handler serves the JSON API. It is the only layer that reads the clock.
type Handler struct {
	svc    Services
	health func(ctx context.Context) error
	now    func() time.Time
	loc    *time.Location
}

type Option func(*Handler)

// WithClock overrides the clock used to resolve the current month.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithLocation sets the timezone the current month is decided in.
func WithLocation(loc *time.Location) Option {
	return func(h *Handler) { h.loc = loc }
}

// WithHealthCheck sets the check behind /healthz, typically a database ping.
func WithHealthCheck(check func(ctx context.Context) error) Option {
	return func(h *Handler) { h.health = check }
}

func NewHandler(svc Services, opts ...Option) *Handler {
	h := &Handler{
		svc:    svc,
		health: func(context.Context) error { return nil },
		now:    time.Now,
		loc:    time.UTC,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// monthParam reads ?month=, defaulting to the current month.
func (h *Handler) monthParam(r *http.Request) (domain.Month, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return domain.MonthOf(h.now().In(h.loc)), nil
	}
	m, err := domain.ParseMonth(raw)
	if err != nil {
		return domain.Month{}, domain.NewValidationError("month", err.Error())
	}
	return m, nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.health(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, envelope{Error: "database unavailable"})
		return
	}
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}
