package domain

// WatchlistItem links a profile to a content record it saved for later.
// At most one entry exists per (ProfileID, ContentID) pair.
type WatchlistItem struct {
	Syncable
	ProfileID string `json:"profile_id"`
	ContentID string `json:"content_id"`
}
