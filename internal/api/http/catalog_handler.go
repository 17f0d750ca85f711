package http

import (
	"net/http"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func (h *CatalogHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, err)
		return
	}
	if err := h.catalogSvc.CreateRoom(r.Context(), &room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *CatalogHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, err)
		return
	}
	room.ID = id
	if err := h.catalogSvc.UpdateRoom(r.Context(), &room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *CatalogHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	room, err := h.catalogSvc.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *CatalogHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	rooms, err := h.catalogSvc.ListRooms(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	writeJSON(w, http.StatusOK, rooms)
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *CatalogHandler) SetRoomActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var body setActiveRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.catalogSvc.SetRoomActive(r.Context(), id, body.Active); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) CreateZoomAccount(w http.ResponseWriter, r *http.Request) {
	var account domain.ZoomAccount
	if err := decodeBody(r, &account); err != nil {
		writeError(w, err)
		return
	}
	if err := h.catalogSvc.CreateZoomAccount(r.Context(), &account); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (h *CatalogHandler) UpdateZoomAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var account domain.ZoomAccount
	if err := decodeBody(r, &account); err != nil {
		writeError(w, err)
		return
	}
	account.ID = id
	if err := h.catalogSvc.UpdateZoomAccount(r.Context(), &account); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *CatalogHandler) GetZoomAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := h.catalogSvc.GetZoomAccount(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *CatalogHandler) ListZoomAccounts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	accounts, err := h.catalogSvc.ListZoomAccounts(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	if accounts == nil {
		accounts = []domain.ZoomAccount{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *CatalogHandler) SetZoomAccountActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var body setActiveRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if err := h.catalogSvc.SetZoomAccountActive(r.Context(), id, body.Active); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
