package http

import (
	"net/http"

	"hostel-ledger-backend/internal/domain"

	"github.com/gorilla/mux"
)

type paymentRequest struct {
	Month       domain.Month `json:"month"`
	Amount      domain.Money `json:"amount"`
	PaymentDate domain.Date  `json:"payment_date"`
}

func (req paymentRequest) payment(tenantID string) domain.MonthlyPayment {
	return domain.MonthlyPayment{
		TenantID:    tenantID,
		Month:       req.Month,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
	}
}

func (h *Handler) RecordRentPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	payment := &domain.RentPayment{MonthlyPayment: req.payment(mux.Vars(r)["id"])}
	if err := h.svc.Payments.RecordRentPayment(r.Context(), payment); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, payment)
}

func (h *Handler) RecordMessPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	payment := &domain.MessPayment{MonthlyPayment: req.payment(mux.Vars(r)["id"])}
	if err := h.svc.Payments.RecordMessPayment(r.Context(), payment); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, payment)
}

func (h *Handler) RentTracking(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	tracking, err := h.svc.Payments.RentTracking(r.Context(), month)
	writeRead(w, tracking, err, emptyTracking(month))
}

func (h *Handler) MessTracking(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	tracking, err := h.svc.Payments.MessTracking(r.Context(), month)
	writeRead(w, tracking, err, emptyTracking(month))
}

func emptyTracking(month domain.Month) *domain.MonthTracking {
	return &domain.MonthTracking{
		Month:    month,
		Payments: []domain.MonthlyPayment{},
		Pending:  []domain.Tenant{},
	}
}
