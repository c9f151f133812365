// Journeyscope - Travel Journal Analytics Dashboard
// Copyright 2026 Journeyscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/journeyscope/journeyscope

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/journeyscope/journeyscope/internal/logging"
	"github.com/journeyscope/journeyscope/internal/models"
)

// seedBase anchors the generated timestamps so the demo dataset is
// identical across runs.
var seedBase = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// seedID derives a stable UUID from a label, so reseeding an existing
// database conflicts on primary keys instead of duplicating rows.
func seedID(label string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("journeyscope:"+label)).String()
}

// SeedMockData populates a deterministic demo dataset: a few dozen
// users spread over six months, journeys across the reference
// destinations, comments, a friendship graph and a friend-request
// stream. Intended for demos and local development, gated by the
// SEED_MOCK_DATA option.
func (db *DB) SeedMockData(ctx context.Context) error {
	existing, err := db.CountUsers(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		logging.Info().Int("users", existing).Msg("Store already populated, skipping mock seed")
		return nil
	}

	users := seedUsers()
	for _, u := range users {
		if err := db.InsertUser(ctx, u); err != nil {
			return err
		}
	}

	journeys := seedJourneys(users)
	for _, j := range journeys {
		if err := db.InsertJourney(ctx, j); err != nil {
			return err
		}
	}

	for _, c := range seedComments(users, journeys) {
		if err := db.InsertComment(ctx, c); err != nil {
			return err
		}
	}

	for _, f := range seedFriendships(users) {
		if err := db.InsertFriendship(ctx, f); err != nil {
			return err
		}
	}

	for _, r := range seedFriendRequests(users) {
		if err := db.InsertFriendRequest(ctx, r); err != nil {
			return err
		}
	}

	logging.Info().
		Int("users", len(users)).
		Int("journeys", len(journeys)).
		Msg("Mock data seeded")
	return nil
}

func seedUsers() []models.User {
	profiles := []struct {
		username string
		first    string
		last     string
		gender   string
		country  string
		city     string
	}{
		{"wanderlust_mia", "Mia", "Sorensen", "female", "Denmark", "Copenhagen"},
		{"trailhead_tom", "Tom", "Becker", "male", "Germany", "Berlin"},
		{"nomad_aiko", "Aiko", "Tanaka", "female", "Japan", "Osaka"},
		{"packlight_leo", "Leo", "Martins", "male", "Portugal", "Lisbon"},
		{"sofia_roams", "Sofia", "Reyes", "female", "Mexico", "Mexico City"},
		{"kiwi_jack", "Jack", "Murray", "male", "New Zealand", "Auckland"},
		{"elena_treks", "Elena", "Petrova", "female", "France", "Lyon"},
		{"daniyal_k", "Daniyal", "Khan", "male", "India", "Mumbai"},
		{"route66_rosa", "Rosa", "Delgado", "female", "Spain", "Barcelona"},
		{"fjord_finn", "Finn", "Halvorsen", "male", "Iceland", "Reykjavik"},
		{"lena_latitudes", "Lena", "Brandt", "female", "Austria", "Vienna"},
		{"marco_maps", "Marco", "Bianchi", "male", "Italy", "Rome"},
		{"sawyer_skips", "Sawyer", "Quinn", "other", "Canada", "Vancouver"},
		{"yara_voyages", "Yara", "Haddad", "female", "Jordan", "Amman"},
		{"oliver_out", "Oliver", "Hart", "male", "United Kingdom", "London"},
		{"chen_wanders", "Wei", "Chen", "male", "China", "Beijing"},
		{"amara_afar", "Amara", "Okafor", "female", "Kenya", "Nairobi"},
		{"tumi_travels", "Tumi", "Ndlovu", "other", "South Africa", "Cape Town"},
		{"isabela_trips", "Isabela", "Costa", "female", "Brazil", "Rio de Janeiro"},
		{"mateo_moves", "Mateo", "Silva", "male", "Argentina", "Buenos Aires"},
		{"hana_horizons", "Hana", "Novak", "female", "Czechia", "Prague"},
		{"gus_globetrots", "Gus", "Walker", "male", "Australia", "Sydney"},
		{"noor_nomadic", "Noor", "Rahman", "female", "United Arab Emirates", "Dubai"},
		{"piotr_paths", "Piotr", "Kowal", "male", "Turkey", "Istanbul"},
	}

	users := make([]models.User, len(profiles))
	for i, p := range profiles {
		users[i] = models.User{
			ID:        seedID(fmt.Sprintf("user:%s", p.username)),
			Username:  p.username,
			FirstName: p.first,
			LastName:  p.last,
			Gender:    p.gender,
			Country:   p.country,
			City:      p.city,
			// Registrations spread over ~six months, newest last
			CreatedAt: seedBase.AddDate(0, 0, -170+i*7),
		}
	}
	return users
}

func seedJourneys(users []models.User) []models.Journey {
	destinations := []string{
		"Paris", "Tokyo", "Bali", "New York", "Cusco", "Marrakech",
		"Kyoto", "Lisbon", "Reykjavik", "Sydney", "Santorini", "Hanoi",
		"Cape Town", "Vancouver", "Istanbul", "Petra", "Buenos Aires",
		"Queenstown", "Prague", "Havana",
	}
	statuses := []string{"active", "completed", "ongoing", "PUBLISHED", "draft", "finished"}
	titles := []string{
		"Street food crawl", "Off-season escape", "Coast to coast",
		"Museum marathon", "Slow train south", "Two weeks, one backpack",
	}

	var journeys []models.Journey
	n := 0
	for i, u := range users {
		// Journey volume varies per user so rankings are non-trivial
		perUser := 1 + (i % 4)
		for k := 0; k < perUser; k++ {
			start := seedBase.AddDate(0, 0, -150+n*3)
			dur := 2 + (n % 12)
			end := start.AddDate(0, 0, dur)
			j := models.Journey{
				ID:          seedID(fmt.Sprintf("journey:%s:%d", u.Username, k)),
				UserID:      u.ID,
				Title:       fmt.Sprintf("%s: %s", destinations[n%len(destinations)], titles[n%len(titles)]),
				Destination: destinations[n%len(destinations)],
				Status:      statuses[n%len(statuses)],
				StartDate:   start,
				CreatedAt:   start,
			}
			if n%5 != 0 { // every fifth journey is open-ended
				j.EndDate = &end
			}
			journeys = append(journeys, j)
			n++
		}
	}
	return journeys
}

func seedComments(users []models.User, journeys []models.Journey) []models.Comment {
	bodies := []string{
		"Adding this to my list!",
		"How were the crowds?",
		"We did the same route last spring.",
		"Any hostel recommendations?",
		"The photos from this spot are unreal.",
	}

	var comments []models.Comment
	for i, j := range journeys {
		// Comment volume skews toward earlier journeys
		perJourney := (len(journeys) - i) % 4
		for k := 0; k < perJourney; k++ {
			author := users[(i+k+3)%len(users)]
			comments = append(comments, models.Comment{
				ID:        seedID(fmt.Sprintf("comment:%d:%d", i, k)),
				UserID:    author.ID,
				JourneyID: j.ID,
				Body:      bodies[(i+k)%len(bodies)],
				CreatedAt: j.StartDate.AddDate(0, 0, 1+k),
			})
		}
	}
	return comments
}

func seedFriendships(users []models.User) []models.Friendship {
	var edges []models.Friendship
	n := 0
	for i := range users {
		// Each user follows a few others; earlier users accumulate
		// more followers, giving the influence ranking shape.
		follows := 2 + (i % 3)
		for k := 1; k <= follows; k++ {
			followee := users[(i+k*k)%len(users)]
			if followee.ID == users[i].ID {
				continue
			}
			edges = append(edges, models.Friendship{
				ID:         seedID(fmt.Sprintf("friendship:%d:%d", i, k)),
				FollowerID: users[i].ID,
				FolloweeID: followee.ID,
				CreatedAt:  seedBase.AddDate(0, 0, -120+n),
			})
			n++
		}
	}
	return edges
}

func seedFriendRequests(users []models.User) []models.FriendRequest {
	statuses := []string{"accepted", "accepted", "pending", "rejected"}

	var requests []models.FriendRequest
	for i := 0; i < len(users)*2; i++ {
		from := users[i%len(users)]
		to := users[(i+5)%len(users)]
		if from.ID == to.ID {
			continue
		}
		requests = append(requests, models.FriendRequest{
			ID:         seedID(fmt.Sprintf("request:%d", i)),
			FromUserID: from.ID,
			ToUserID:   to.ID,
			Status:     statuses[i%len(statuses)],
			CreatedAt:  seedBase.AddDate(0, 0, -100+i),
		})
	}
	return requests
}
