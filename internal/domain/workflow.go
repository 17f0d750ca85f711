package domain

// CreateRequestInput is the payload accepted when a requester submits a new
// booking request. Availability is never checked at creation time; any
// number of pending requests may target the same slot.
type CreateRequestInput struct {
	Kind         RequestKind `json:"kind"`
	Title        string      `json:"title"`
	ContactName  string      `json:"contact_name"`
	ContactEmail string      `json:"contact_email"`
	Date         string      `json:"date"`
	StartTime    string      `json:"start_time"`
	EndTime      string      `json:"end_time"`
	Capacity     int32       `json:"capacity"`
}

// ManualZoomDetails is the manually entered alternative to binding a
// catalog zoom account.
type ManualZoomDetails struct {
	Link      string `json:"link"`
	MeetingID string `json:"meeting_id"`
	Passcode  string `json:"passcode"`
}

// Assignment is what an approver supplies with an approval: a catalog
// resource id (room id for the room track, zoom account id for the zoom
// track) or, zoom track only, manual meeting details. Exactly one of the
// two must be set.
type Assignment struct {
	ResourceID *int32             `json:"resource_id,omitempty"`
	ManualZoom *ManualZoomDetails `json:"manual_zoom,omitempty"`
	Notes      string             `json:"notes,omitempty"`
}
