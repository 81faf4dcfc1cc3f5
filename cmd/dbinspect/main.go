package main

import (
	"fmt"
	"github.com/go-json-experiment/json"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/reelhubapp/reelhub-server/internal/domain"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/ReelHub/data/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	movieCount := 0
	seriesCount := 0
	shown := 0

	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("content:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			item := it.Item()

			err := item.Value(func(val []byte) error {
				var record domain.ContentRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}

				switch record.Kind {
				case domain.KindMovie:
					movieCount++
				case domain.KindSeries:
					seriesCount++
				}

				// Show the first few records for a quick sanity check.
				if shown < 5 {
					shown++
					fmt.Printf("%s: %s\n", record.Kind, record.Title)
					fmt.Printf("  ID: %s\n", record.ID)
					fmt.Printf("  Provider ID: %d\n", record.ProviderID)
					if record.ReleaseDate != "" {
						fmt.Printf("  Released: %s\n", record.ReleaseDate)
					}
					fmt.Printf("  Vote average: %.1f\n", record.VoteAverage)
					fmt.Println()
				}

				return nil
			})
			if err != nil {
				log.Printf("Error reading record %s: %v", item.Key(), err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error iterating database: %v", err)
	}

	publicReviews := 0
	totalReviews := 0
	ratingSum := 0

	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("review:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			item := it.Item()

			err := item.Value(func(val []byte) error {
				var review domain.Review
				if err := json.Unmarshal(val, &review); err != nil {
					return err
				}

				totalReviews++
				ratingSum += review.Rating
				if review.Public {
					publicReviews++
				}
				return nil
			})
			if err != nil {
				log.Printf("Error reading review %s: %v", item.Key(), err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error iterating reviews: %v", err)
	}

	userCount := countKeys(db, "user:")
	profileCount := countKeys(db, "profile:")
	watchlistCount := countKeys(db, "watchlist:")

	fmt.Println("=== Summary ===")
	fmt.Printf("Movies: %d\n", movieCount)
	fmt.Printf("Series: %d\n", seriesCount)
	fmt.Printf("Users: %d\n", userCount)
	fmt.Printf("Profiles: %d\n", profileCount)
	fmt.Printf("Reviews: %d (%d public)\n", totalReviews, publicReviews)
	fmt.Printf("Watchlist entries: %d\n", watchlistCount)
	if totalReviews > 0 {
		fmt.Printf("Average rating: %.1f\n", float64(ratingSum)/float64(totalReviews))
	}
}

// countKeys counts primary keys under a prefix, skipping index entries.
func countKeys(db *badger.DB, prefix string) int {
	count := 0
	_ = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			if strings.HasPrefix(string(it.Item().Key()), "idx:") {
				continue
			}
			count++
		}
		return nil
	})
	return count
}
