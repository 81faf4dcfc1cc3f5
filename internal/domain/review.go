package domain

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
	// NeutralRating substitutes for an absent rating when computing genre
	// affinity weights.
	NeutralRating = 3
)

// Review is a profile's rating of a locally reconciled content record,
// optionally with text.
type Review struct {
	Syncable
	ProfileID string `json:"profile_id"`
	ContentID string `json:"content_id"`
	// Rating is 1-5. Zero means the profile left text without a star rating.
	Rating int    `json:"rating,omitempty"`
	Text   string `json:"text,omitempty"`
	Public bool   `json:"public"`
}

// RatingOrNeutral returns the review's rating, substituting the neutral
// default when no rating was given.
func (r *Review) RatingOrNeutral() int {
	if r.Rating == 0 {
		return NeutralRating
	}
	return r.Rating
}

// RatingSignal pairs a rated content record's genre list with the rating a
// profile gave it. Computed fresh per recommendation request, never persisted.
type RatingSignal struct {
	ProviderID int64
	Kind       MediaKind
	GenreIDs   []int
	Rating     int
}

// GenreAffinity is a profile's derived preference weight for one genre:
// the average rating across all of the profile's rated items carrying that
// genre. Recomputed per request.
type GenreAffinity struct {
	GenreID int
	Weight  float64
}
