package domain

// User is a minimal account record owning up to MaxProfilesPerUser profiles.
// Authentication is handled outside this server; users exist so profiles have
// an owner.
type User struct {
	Syncable
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}
