// Package seed provides helpers to create demo catalog data for development
// and testing.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"reelvault/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var genrePool = []string{
	"Drama", "Comedy", "Action", "Thriller", "Horror",
	"Sci-Fi", "Fantasy", "Romance", "Documentary", "Crime",
}

var ratingPool = []string{"G", "PG", "PG-13", "R", "TV-MA"}

// Seeder populates the catalog with generated demo data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll empties the four catalog relations.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"analytics", "upcoming_content", "content", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) pickGenres() []string {
	n := 1 + s.rng.Intn(3)
	genres := make([]string, 0, n)
	for _, i := range s.rng.Perm(len(genrePool))[:n] {
		genres = append(genres, genrePool[i])
	}
	return genres
}

// BuildContent constructs one catalog entry without persisting it.
func (s *Seeder) BuildContent() *models.Content {
	contentType := models.ContentTypeMovie
	var episodes *int
	if s.rng.Intn(3) == 0 {
		contentType = models.ContentTypeTVShow
		n := 6 + s.rng.Intn(18)
		episodes = &n
	}

	status := models.ContentStatusDraft
	if s.rng.Intn(4) != 0 {
		status = models.ContentStatusPublished
	}

	duration := 75 + s.rng.Intn(90)
	year := 1985 + s.rng.Intn(40)

	return &models.Content{
		Title:        gofakeit.MovieName(),
		Type:         contentType,
		Genres:       s.pickGenres(),
		Duration:     &duration,
		Rating:       ratingPool[s.rng.Intn(len(ratingPool))],
		Status:       status,
		Views:        int64(s.rng.Intn(5000)),
		Description:  gofakeit.Paragraph(1, 3, 8, " "),
		ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%s/400/600", gofakeit.UUID()),
		TrailerURL:   gofakeit.URL(),
		ReleaseYear:  &year,
		Director:     gofakeit.Name(),
		Writer:       gofakeit.Name(),
		Cast:         []string{gofakeit.Name(), gofakeit.Name(), gofakeit.Name()},
		Tags:         []string{gofakeit.HipsterWord(), gofakeit.HipsterWord()},
		Episodes:     episodes,
		CreatedAt:    time.Now().Add(-time.Duration(s.rng.Intn(120*24)) * time.Hour),
	}
}

// SeedCatalog persists count generated catalog entries.
func (s *Seeder) SeedCatalog(count int) ([]*models.Content, error) {
	entries := make([]*models.Content, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, s.BuildContent())
	}
	if err := s.db.Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// SeedUpcoming persists count generated upcoming announcements.
func (s *Seeder) SeedUpcoming(count int) error {
	entries := make([]*models.UpcomingContent, 0, count)
	for i := 0; i < count; i++ {
		contentType := models.ContentTypeMovie
		var episodes *int
		if s.rng.Intn(2) == 0 {
			contentType = models.ContentTypeTVShow
			n := 8 + s.rng.Intn(12)
			episodes = &n
		}
		entries = append(entries, &models.UpcomingContent{
			Title:        gofakeit.MovieName(),
			Type:         contentType,
			Genres:       s.pickGenres(),
			Episodes:     episodes,
			ReleaseDate:  time.Now().AddDate(0, 1+s.rng.Intn(12), 0),
			Description:  gofakeit.Paragraph(1, 2, 8, " "),
			ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%s/400/600", gofakeit.UUID()),
			TrailerURL:   gofakeit.URL(),
			DisplayOrder: i + 1,
		})
	}
	return s.db.Create(&entries).Error
}

// SeedEvents persists count engagement events spread over the given entries.
func (s *Seeder) SeedEvents(entries []*models.Content, count int) error {
	if len(entries) == 0 {
		return nil
	}
	kinds := []models.AnalyticsEventType{
		models.EventTypeView, models.EventTypeView, models.EventTypeView,
		models.EventTypePlay, models.EventTypeLike, models.EventTypeAddToList,
	}
	events := make([]*models.AnalyticsEvent, 0, count)
	for i := 0; i < count; i++ {
		entry := entries[s.rng.Intn(len(entries))]
		events = append(events, &models.AnalyticsEvent{
			ContentID: &entry.ID,
			EventType: kinds[s.rng.Intn(len(kinds))],
			SessionID: gofakeit.UUID(),
			Metadata:  map[string]any{"source": gofakeit.RandomString([]string{"home", "search", "detail"})},
			Timestamp: time.Now().Add(-time.Duration(s.rng.Intn(30*24)) * time.Hour),
		})
	}
	return s.db.Create(&events).Error
}

// SeedAdmin creates the default admin account if it does not exist.
func (s *Seeder) SeedAdmin(username, email, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: username, Email: email, Password: string(hashed)}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
