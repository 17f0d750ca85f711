package domain

// Role is supplied by the identity layer with every authenticated call.
// The workflow gateway trusts it and performs no credential checks itself.
type Role string

const (
	RoleMember       Role = "member"
	RoleAdmin        Role = "admin"
	RoleZoomApprover Role = "zoom-approver"
	RoleRoomApprover Role = "room-approver"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleAdmin, RoleZoomApprover, RoleRoomApprover:
		return true
	}
	return false
}

// CanDecide reports whether the role may approve or reject the given track.
// Approver roles are scoped to exactly one track.
func (r Role) CanDecide(t Track) bool {
	switch r {
	case RoleZoomApprover:
		return t == TrackZoom
	case RoleRoomApprover:
		return t == TrackRoom
	}
	return false
}

type User struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	CreatedOn    string `json:"created_on"`
}
