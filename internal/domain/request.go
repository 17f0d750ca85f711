package domain

// RequestKind selects which resources a booking request asks for. It is
// fixed at creation and determines which approval tracks the request carries.
type RequestKind string

const (
	RequestKindRoom RequestKind = "ROOM"
	RequestKindZoom RequestKind = "ZOOM"
	RequestKindBoth RequestKind = "BOTH"
)

// Valid reports whether k is one of the known kinds.
func (k RequestKind) Valid() bool {
	return k == RequestKindRoom || k == RequestKindZoom || k == RequestKindBoth
}

// Track identifies one of the two independent approval pipelines.
type Track string

const (
	TrackZoom Track = "zoom"
	TrackRoom Track = "room"
)

// HasTrack reports whether requests of this kind carry the given track.
func (k RequestKind) HasTrack(t Track) bool {
	switch t {
	case TrackZoom:
		return k == RequestKindZoom || k == RequestKindBoth
	case TrackRoom:
		return k == RequestKindRoom || k == RequestKindBoth
	default:
		return false
	}
}

type TrackStatus string

const (
	TrackStatusPending  TrackStatus = "PENDING"
	TrackStatusApproved TrackStatus = "APPROVED"
	TrackStatusRejected TrackStatus = "REJECTED"
)

// Terminal reports whether no further transition is legal on a track in
// this status.
func (s TrackStatus) Terminal() bool {
	return s == TrackStatusApproved || s == TrackStatusRejected
}

// ZoomBindingKind tags how an approved zoom track is bound: to a catalog
// zoom account or to manually entered meeting details. The two are mutually
// exclusive.
type ZoomBindingKind string

const (
	ZoomBindingCatalog ZoomBindingKind = "CATALOG"
	ZoomBindingManual  ZoomBindingKind = "MANUAL"
)

// ZoomBinding is the tagged union recorded on an approved zoom track.
// For CATALOG bindings AccountID is set and the meeting fields are empty;
// for MANUAL bindings the link/meeting-id/passcode triple is complete and
// AccountID is nil.
type ZoomBinding struct {
	Kind      ZoomBindingKind `json:"kind"`
	AccountID *int32          `json:"account_id,omitempty"`
	Link      string          `json:"link,omitempty"`
	MeetingID string          `json:"meeting_id,omitempty"`
	Passcode  string          `json:"passcode,omitempty"`
}

// Validate enforces the exclusivity and completeness rules of the union.
func (b *ZoomBinding) Validate() error {
	switch b.Kind {
	case ZoomBindingCatalog:
		if b.AccountID == nil {
			return NewValidationError("zoom_account_id", "catalog binding requires a zoom account id")
		}
		if b.Link != "" || b.MeetingID != "" || b.Passcode != "" {
			return NewValidationError("zoom_binding", "catalog binding must not carry manual meeting details")
		}
	case ZoomBindingManual:
		if b.AccountID != nil {
			return NewValidationError("zoom_binding", "manual binding must not reference a zoom account")
		}
		if b.Link == "" || b.MeetingID == "" || b.Passcode == "" {
			return NewValidationError("zoom_binding", "manual binding requires link, meeting id and passcode")
		}
	default:
		return NewValidationError("zoom_binding", "unknown binding kind")
	}
	return nil
}

// ZoomTrack is the zoom approval pipeline of a request. Present iff the
// request's kind includes ZOOM.
type ZoomTrack struct {
	Status          TrackStatus  `json:"status"`
	Binding         *ZoomBinding `json:"binding,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	DecidedOn       *string      `json:"decided_on,omitempty"`
}

// RoomTrack is the room approval pipeline of a request. Present iff the
// request's kind includes ROOM.
type RoomTrack struct {
	Status          TrackStatus `json:"status"`
	AssignedRoomID  *int32      `json:"assigned_room_id,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	DecidedOn       *string     `json:"decided_on,omitempty"`
}

type BookingRequest struct {
	ID            int32       `json:"id"`
	RequesterID   int32       `json:"requester_id"`
	Kind          RequestKind `json:"kind"`
	Title         string      `json:"title"`
	ContactName   string      `json:"contact_name"`
	ContactEmail  string      `json:"contact_email"`
	Date          string      `json:"date"`       // 2006-01-02
	StartTime     string      `json:"start_time"` // HH:MM, zero padded
	EndTime       string      `json:"end_time"`   // HH:MM, exclusive
	Capacity      int32       `json:"capacity"`
	ZoomTrack     *ZoomTrack  `json:"zoom_track,omitempty"`
	RoomTrack     *RoomTrack  `json:"room_track,omitempty"`
	OverallStatus TrackStatus `json:"overall_status"`
	CreatedOn     string      `json:"created_on"`
	UpdatedOn     string      `json:"updated_on"`
}

// TrackStatusOf returns the status of the given track, or "" when the track
// does not apply to the request's kind.
func (r *BookingRequest) TrackStatusOf(t Track) TrackStatus {
	switch t {
	case TrackZoom:
		if r.ZoomTrack != nil {
			return r.ZoomTrack.Status
		}
	case TrackRoom:
		if r.RoomTrack != nil {
			return r.RoomTrack.Status
		}
	}
	return ""
}

// DeriveOverallStatus recomputes the overall status from the present tracks.
// Any rejected track rejects the whole request; all present tracks approved
// approves it; otherwise it is still pending. Tracks absent for the
// request's kind never participate.
func (r *BookingRequest) DeriveOverallStatus() TrackStatus {
	statuses := make([]TrackStatus, 0, 2)
	if r.ZoomTrack != nil {
		statuses = append(statuses, r.ZoomTrack.Status)
	}
	if r.RoomTrack != nil {
		statuses = append(statuses, r.RoomTrack.Status)
	}

	allApproved := len(statuses) > 0
	for _, s := range statuses {
		if s == TrackStatusRejected {
			return TrackStatusRejected
		}
		if s != TrackStatusApproved {
			allApproved = false
		}
	}
	if allApproved {
		return TrackStatusApproved
	}
	return TrackStatusPending
}

// RequestFilter narrows List queries. Zero values mean "no constraint".
type RequestFilter struct {
	RequesterID  int32
	Kind         RequestKind
	Status       TrackStatus // overall status
	PendingTrack Track       // requests whose given track is still PENDING
	DateFrom     string      // inclusive, 2006-01-02
	DateTo       string      // inclusive
}
