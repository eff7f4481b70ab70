package http

import (
	"net/http"

	"hostel-ledger-backend/internal/domain"

	"github.com/gorilla/mux"
)

type roomRequest struct {
	Name string       `json:"name"`
	Rent domain.Money `json:"rent"`
}

func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.svc.Rooms.ListRooms(r.Context())
	writeRead(w, rooms, err, []domain.Room{})
}

func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	room := &domain.Room{Name: req.Name, Rent: req.Rent}
	if err := h.svc.Rooms.CreateRoom(r.Context(), room); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, room)
}

func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	room := &domain.Room{ID: mux.Vars(r)["id"], Name: req.Name, Rent: req.Rent}
	if err := h.svc.Rooms.UpdateRoom(r.Context(), room); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, room)
}

func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Rooms.DeleteRoom(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
