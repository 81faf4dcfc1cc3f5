// Package main provides a tool to seed the database with demo catalog data.
//
// This creates a demo user with viewing profiles, a handful of well-known
// content records, and rating history so the recommendation and most-reviewed
// rows have something to chew on.
//
// Usage:
//
//	DB_PATH=~/ReelHub/data/db go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/reelhubapp/reelhub-server/internal/domain"
	"github.com/reelhubapp/reelhub-server/internal/store"
)

var email = flag.String("email", "demo@reelhub.local", "Email for the demo user")

// seedTitle is a well-known title with its real TMDB identity, so a live API
// key resolves the same records the seed creates.
type seedTitle struct {
	providerID int64
	kind       domain.MediaKind
	title      string
	genreIDs   []int
	date       string
	popularity float64
}

var seedTitles = []seedTitle{
	{603692, domain.KindMovie, "John Wick: Chapter 4", []int{28, 53, 80}, "2023-03-22", 500.2},
	{27205, domain.KindMovie, "Inception", []int{28, 878, 12}, "2010-07-15", 83.9},
	{157336, domain.KindMovie, "Interstellar", []int{12, 18, 878}, "2014-11-05", 140.2},
	{502356, domain.KindMovie, "The Super Mario Bros. Movie", []int{16, 10751, 12}, "2023-04-05", 320.4},
	{100088, domain.KindSeries, "The Last of Us", []int{18}, "2023-01-15", 350.4},
	{1399, domain.KindSeries, "Game of Thrones", []int{10765, 18, 10759}, "2011-04-17", 290.1},
	{93405, domain.KindSeries, "Squid Game", []int{10759, 9648, 18}, "2021-09-17", 180.7},
}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/ReelHub/data/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	user, err := ensureUser(ctx, s, *email)
	if err != nil {
		log.Fatalf("Failed to ensure demo user: %v", err)
	}
	fmt.Printf("Demo user: %s (%s)\n", user.Email, user.ID)

	profiles, err := ensureProfiles(ctx, s, user.ID)
	if err != nil {
		log.Fatalf("Failed to ensure profiles: %v", err)
	}

	records := make([]*domain.ContentRecord, 0, len(seedTitles))
	for _, title := range seedTitles {
		record, err := ensureContent(ctx, s, title, profiles[0].ID)
		if err != nil {
			log.Fatalf("Failed to ensure content %q: %v", title.title, err)
		}
		records = append(records, record)
	}
	fmt.Printf("Seeded %d content records\n", len(records))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, profile := range profiles {
		seeded := 0
		for _, record := range records {
			// Each profile rates roughly two thirds of the titles.
			if rng.Intn(3) == 0 {
				continue
			}
			review := &domain.Review{
				ProfileID: profile.ID,
				ContentID: record.ID,
				Rating:    2 + rng.Intn(4),
				Public:    rng.Intn(2) == 0,
			}
			err := s.CreateReview(ctx, review)
			if errors.Is(err, store.ErrReviewExists) {
				continue
			}
			if err != nil {
				log.Fatalf("Failed to create review: %v", err)
			}
			seeded++
		}
		fmt.Printf("Profile %q: %d reviews\n", profile.Name, seeded)

		// Watchlist the first unrated title.
		for _, record := range records {
			item := &domain.WatchlistItem{ProfileID: profile.ID, ContentID: record.ID}
			err := s.AddWatchlistItem(ctx, item)
			if errors.Is(err, store.ErrWatchlistItemExists) {
				continue
			}
			if err != nil {
				log.Fatalf("Failed to add watchlist item: %v", err)
			}
			break
		}
	}

	fmt.Println("\nSeed complete.")
}

func ensureUser(ctx context.Context, s *store.Store, email string) (*domain.User, error) {
	existing, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{Email: email, DisplayName: "Demo Viewer"}
	if err := s.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func ensureProfiles(ctx context.Context, s *store.Store, userID string) ([]*domain.Profile, error) {
	existing, err := s.ListProfilesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	wanted := []struct {
		name  string
		color string
	}{
		{"Alex", "#e50914"},
		{"Sam", "#00a8e1"},
		{"Kids", "#f5c518"},
	}
	profiles := make([]*domain.Profile, 0, len(wanted))
	for _, w := range wanted {
		profile := &domain.Profile{UserID: userID, Name: w.name, AvatarColor: w.color}
		if err := s.CreateProfile(ctx, profile); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func ensureContent(ctx context.Context, s *store.Store, title seedTitle, createdBy string) (*domain.ContentRecord, error) {
	existing, err := s.GetContentByProvider(ctx, title.kind, title.providerID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrContentNotFound) {
		return nil, err
	}

	record := &domain.ContentRecord{
		ProviderID:  title.providerID,
		Kind:        title.kind,
		Title:       title.title,
		GenreIDs:    title.genreIDs,
		ReleaseDate: title.date,
		Popularity:  title.popularity,
		CreatedBy:   createdBy,
	}
	if err := s.CreateContent(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
