package domain

const (
	RoleStudent   = "student"
	RoleEmployer  = "employer"
	RoleCommunity = "community_admin"
)

// User is the identity snapshot supplied by the session provider. The fields
// are copied onto applications and notifications at write time and never
// refreshed.
type User struct {
	ID            string `json:"id"`
	DisplayName   string `json:"displayName"`
	PhotoURL      string `json:"photoUrl,omitempty"`
	Role          string `json:"role,omitempty"`
	CommunityID   string `json:"communityId,omitempty"`
	CommunityName string `json:"communityName,omitempty"`
}
