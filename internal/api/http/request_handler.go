package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/service"
)

type RequestHandler struct {
	bookingSvc      service.BookingService
	availabilitySvc service.AvailabilityService
}

func NewRequestHandler(bookingSvc service.BookingService, availabilitySvc service.AvailabilityService) *RequestHandler {
	return &RequestHandler{bookingSvc: bookingSvc, availabilitySvc: availabilitySvc}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return int32(id), nil
}

func pathTrack(r *http.Request) (domain.Track, error) {
	track := domain.Track(mux.Vars(r)["track"])
	if track != domain.TrackZoom && track != domain.TrackRoom {
		return "", domain.NewValidationError("track", "must be zoom or room")
	}
	return track, nil
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateRequestInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	claims := claimsFrom(r.Context())
	req, err := h.bookingSvc.CreateRequest(r.Context(), claims.UserID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	q := r.URL.Query()

	filter := domain.RequestFilter{
		Kind:     domain.RequestKind(q.Get("kind")),
		Status:   domain.TrackStatus(q.Get("status")),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
	}
	if track := q.Get("pending_track"); track != "" {
		filter.PendingTrack = domain.Track(track)
	}
	if claims.Role == domain.RoleMember {
		// Members only ever see their own requests.
		filter.RequesterID = claims.UserID
	} else if raw := q.Get("requester_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, domain.NewValidationError("requester_id", "must be an integer"))
			return
		}
		filter.RequesterID = int32(id)
	}

	requests, err := h.bookingSvc.ListRequests(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.BookingRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.bookingSvc.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	claims := claimsFrom(r.Context())
	if claims.Role == domain.RoleMember && req.RequesterID != claims.UserID {
		writeError(w, domain.ErrForbidden)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	track, err := pathTrack(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var assignment domain.Assignment
	if err := decodeBody(r, &assignment); err != nil {
		writeError(w, err)
		return
	}

	claims := claimsFrom(r.Context())
	req, err := h.bookingSvc.ApproveTrack(r.Context(), claims.Role, id, track, assignment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	track, err := pathTrack(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body rejectRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	claims := claimsFrom(r.Context())
	req, err := h.bookingSvc.RejectTrack(r.Context(), claims.Role, id, track, body.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Availability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ids, err := h.availabilitySvc.FindAvailable(
		r.Context(),
		domain.ResourceType(q.Get("type")),
		q.Get("date"),
		q.Get("start_time"),
		q.Get("end_time"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	if ids == nil {
		ids = []int32{}
	}
	writeJSON(w, http.StatusOK, map[string][]int32{"resource_ids": ids})
}
