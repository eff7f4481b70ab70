package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"hostel-ledger-backend/internal/domain"

	"github.com/gorilla/mux"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	dashboard, err := h.svc.Dashboard.Dashboard(r.Context(), month)
	writeRead(w, dashboard, err, &domain.Dashboard{
		FleetSummary: domain.FleetSummary{
			Month:       month,
			PendingRent: []domain.Tenant{},
			PendingMess: []domain.Tenant{},
		},
		RecentTenants: []domain.Tenant{},
	})
}

// Snapshot returns the month-end figures recorded by the snapshot job.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	month, err := pathMonth(r)
	if err != nil {
		writeError(w, err)
		return
	}
	snap, err := h.svc.Reports.Snapshot(r.Context(), month)
	writeRead(w, snap, err, &domain.MonthlySnapshot{Month: month})
}

// ExportReport streams the month workbook, preferring the archived copy
// unless ?fresh=true. The workbook is held in memory first so a failure can
// still be reported as JSON.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	month, err := pathMonth(r)
	if err != nil {
		writeError(w, err)
		return
	}
	fresh := r.URL.Query().Get("fresh") == "true"

	var buf bytes.Buffer
	if err := h.svc.Reports.Workbook(r.Context(), month, fresh, &buf); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"ledger_%s.xlsx\"", month.Time().Format("2006_01")))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func pathMonth(r *http.Request) (domain.Month, error) {
	month, err := domain.ParseMonth(mux.Vars(r)["month"])
	if err != nil {
		return domain.Month{}, domain.NewValidationError("month", err.Error())
	}
	return month, nil
}
