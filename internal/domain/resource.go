package domain

// ResourceType distinguishes the two bookable resource pools.
type ResourceType string

const (
	ResourceTypeRoom ResourceType = "room"
	ResourceTypeZoom ResourceType = "zoom"
)

func (t ResourceType) Valid() bool {
	return t == ResourceTypeRoom || t == ResourceTypeZoom
}

// Room is a physical meeting room. Inactive rooms are excluded from
// availability candidates but existing approved bindings to them stay valid.
type Room struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Capacity  int32  `json:"capacity"`
	IsActive  bool   `json:"is_active"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// ZoomAccount is a shared licensed Zoom host account.
type ZoomAccount struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	HostEmail string `json:"host_email"`
	Link      string `json:"link"`
	MeetingID string `json:"meeting_id"`
	Passcode  string `json:"passcode"`
	IsActive  bool   `json:"is_active"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// ResourceBinding is one approved reservation interval of a resource,
// derived from the request that holds it. There is no separate reservation
// table; this is a projection over approved tracks.
type ResourceBinding struct {
	RequestID  int32
	ResourceID int32
	Date       string
	StartTime  string
	EndTime    string
}
