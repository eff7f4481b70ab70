package http

import (
	"net/http"

	"hostel-ledger-backend/internal/domain"

	"github.com/gorilla/mux"
)

type tenantRequest struct {
	Name           string       `json:"name"`
	Phone          string       `json:"phone"`
	RoomID         string       `json:"room_id"`
	JoinDate       domain.Date  `json:"join_date"`
	LeaveDate      *domain.Date `json:"leave_date"`
	UsesMess       bool         `json:"uses_mess"`
	InitialDeposit domain.Money `json:"deposit_amount"`
}

func (req tenantRequest) tenant(id string) *domain.Tenant {
	t := &domain.Tenant{
		ID:             id,
		Name:           req.Name,
		Phone:          req.Phone,
		RoomID:         req.RoomID,
		JoinDate:       req.JoinDate,
		UsesMess:       req.UsesMess,
		InitialDeposit: req.InitialDeposit,
	}
	if req.LeaveDate != nil && !req.LeaveDate.IsZero() {
		t.LeaveDate = req.LeaveDate
	}
	return t
}

type leaveRequest struct {
	LeaveDate domain.Date `json:"leave_date"`
}

func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, err := domain.ParseTenantStatus(q.Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	tenants, err := h.svc.Tenants.ListTenants(r.Context(), domain.TenantFilter{Status: status, Search: q.Get("q")})
	writeRead(w, tenants, err, []domain.Tenant{})
}

func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	profile, err := h.svc.Tenants.GetProfile(r.Context(), mux.Vars(r)["id"], month)
	writeRead(w, profile, err, &domain.TenantProfile{
		Month:        month,
		RentPayments: []domain.RentPayment{},
		MessPayments: []domain.MessPayment{},
		Deposits:     []domain.DepositTransaction{},
	})
}

func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req tenantRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tenant := req.tenant("")
	if err := h.svc.Tenants.CreateTenant(r.Context(), tenant); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, tenant)
}

// UpdateTenant ignores deposit_amount; the initial deposit is fixed at creation.
func (h *Handler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	var req tenantRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tenant := req.tenant(mux.Vars(r)["id"])
	if err := h.svc.Tenants.UpdateTenant(r.Context(), tenant); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, tenant)
}

func (h *Handler) MarkTenantLeft(w http.ResponseWriter, r *http.Request) {
	var req leaveRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tenant, err := h.svc.Tenants.MarkLeft(r.Context(), mux.Vars(r)["id"], req.LeaveDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, tenant)
}
