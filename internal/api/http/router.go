package http

import (
	"net/http"
	"time"

	"hostel-ledger-backend/internal/logger"

	"github.com/gorilla/mux"
)

// NewRouter registers every API route on a fresh mux router.
func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(recoverMiddleware, loggingMiddleware)

	router.HandleFunc("/healthz", h.Health).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/rooms", h.ListRooms).Methods("GET")
	api.HandleFunc("/rooms", h.CreateRoom).Methods("POST")
	api.HandleFunc("/rooms/{id}", h.UpdateRoom).Methods("PUT")
	api.HandleFunc("/rooms/{id}", h.DeleteRoom).Methods("DELETE")

	api.HandleFunc("/tenants", h.ListTenants).Methods("GET")
	api.HandleFunc("/tenants", h.CreateTenant).Methods("POST")
	api.HandleFunc("/tenants/{id}", h.GetTenant).Methods("GET")
	api.HandleFunc("/tenants/{id}", h.UpdateTenant).Methods("PUT")
	api.HandleFunc("/tenants/{id}/leave", h.MarkTenantLeft).Methods("POST")
	api.HandleFunc("/tenants/{id}/rent-payments", h.RecordRentPayment).Methods("POST")
	api.HandleFunc("/tenants/{id}/mess-payments", h.RecordMessPayment).Methods("POST")
	api.HandleFunc("/tenants/{id}/deposit-transactions", h.RecordDepositTransaction).Methods("POST")

	api.HandleFunc("/rent", h.RentTracking).Methods("GET")
	api.HandleFunc("/mess", h.MessTracking).Methods("GET")
	api.HandleFunc("/deposits", h.DepositOverview).Methods("GET")
	api.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	api.HandleFunc("/reports/{month}", h.ExportReport).Methods("GET")
	api.HandleFunc("/snapshots/{month}", h.Snapshot).Methods("GET")

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func loggingMiddleware(next http.Handler) http.Handler {
	log := logger.WithComponent("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start),
		}
		if rec.status >= http.StatusInternalServerError {
			log.Error("Request failed", args...)
			return
		}
		log.Info("Request handled", args...)
	})
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Handler panicked", "path", r.URL.Path, "panic", rec)
				writeJSON(w, http.StatusInternalServerError, envelope{Error: errorInternal})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
