package http

import (
	"net/http"

	"hostel-ledger-backend/internal/domain"

	"github.com/gorilla/mux"
)

type depositRequest struct {
	Date   domain.Date                   `json:"date"`
	Amount domain.Money                  `json:"amount"`
	Type   domain.DepositTransactionType `json:"type"`
	Reason string                        `json:"reason"`
}

func (h *Handler) RecordDepositTransaction(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tx := &domain.DepositTransaction{
		TenantID: mux.Vars(r)["id"],
		Date:     req.Date,
		Amount:   req.Amount,
		Type:     req.Type,
		Reason:   req.Reason,
	}
	if err := h.svc.Deposits.RecordTransaction(r.Context(), tx); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, tx)
}

func (h *Handler) DepositOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Deposits.Overview(r.Context(), r.URL.Query().Get("q"))
	writeRead(w, overview, err, &domain.DepositOverview{Transactions: []domain.DepositTransaction{}})
}
