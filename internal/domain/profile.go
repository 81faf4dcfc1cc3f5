package domain

// MaxProfilesPerUser caps how many viewing profiles one account can hold.
const MaxProfilesPerUser = 5

// Profile is a named viewing identity under a user account. Watch history,
// reviews, watchlists, and recommendations are all per-profile.
type Profile struct {
	Syncable
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	// AvatarColor is a display hint for the profile tile. Optional.
	AvatarColor string `json:"avatar_color,omitempty"`
}
