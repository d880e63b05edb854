// Package validation defines the insert and patch rule sets that stand
// between untrusted request bodies and persisted records. Each insert type is
// the full record shape minus server-assigned fields; each patch type is the
// same shape with every field optional.
package validation

import (
	"fmt"
	"net/url"
	"time"

	"reelvault/internal/models"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 10000
	minReleaseYear    = 1888
)

// ContentInsert is the payload accepted when creating a catalog entry.
// Identifier, timestamps and the view counter are server-assigned and have no
// place here.
type ContentInsert struct {
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Genres       []string `json:"genres"`
	Duration     *int     `json:"duration"`
	Rating       string   `json:"rating"`
	Status       string   `json:"status"`
	Description  string   `json:"description"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	VideoURL     string   `json:"videoUrl"`
	TrailerURL   string   `json:"trailerUrl"`
	ReleaseYear  *int     `json:"releaseYear"`
	Director     string   `json:"director"`
	Writer       string   `json:"writer"`
	Cast         []string `json:"cast"`
	Tags         []string `json:"tags"`
	Episodes     *int     `json:"episodes"`
}

// Validate checks the insert payload and returns one FieldError per problem.
func (in *ContentInsert) Validate() []models.FieldError {
	var fields []models.FieldError

	if in.Title == "" {
		fields = append(fields, models.FieldError{Field: "title", Message: "title is required"})
	}
	if len(in.Title) > maxTitleLen {
		fields = append(fields, models.FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", maxTitleLen)})
	}

	fields = append(fields, validateContentType("type", in.Type, true)...)
	fields = append(fields, validateGenres("genres", in.Genres, true)...)
	fields = append(fields, validateEpisodes("episodes", models.ContentType(in.Type), in.Episodes, true)...)

	if in.Duration != nil && *in.Duration <= 0 {
		fields = append(fields, models.FieldError{Field: "duration", Message: "duration must be positive"})
	}
	if in.Status != "" && in.Status != string(models.ContentStatusDraft) && in.Status != string(models.ContentStatusPublished) {
		fields = append(fields, models.FieldError{Field: "status", Message: "status must be 'draft' or 'published'"})
	}
	if len(in.Description) > maxDescriptionLen {
		fields = append(fields, models.FieldError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)})
	}
	if in.ReleaseYear != nil {
		max := time.Now().Year() + 5
		if *in.ReleaseYear < minReleaseYear || *in.ReleaseYear > max {
			fields = append(fields, models.FieldError{Field: "releaseYear", Message: fmt.Sprintf("releaseYear must be between %d and %d", minReleaseYear, max)})
		}
	}

	fields = append(fields, validateURL("thumbnailUrl", in.ThumbnailURL)...)
	fields = append(fields, validateURL("videoUrl", in.VideoURL)...)
	fields = append(fields, validateURL("trailerUrl", in.TrailerURL)...)

	return fields
}

// Model builds the record to persist. Status defaults to draft; the view
// counter starts at zero via the column default.
func (in *ContentInsert) Model() *models.Content {
	status := models.ContentStatus(in.Status)
	if status == "" {
		status = models.ContentStatusDraft
	}

	return &models.Content{
		Title:        in.Title,
		Type:         models.ContentType(in.Type),
		Genres:       in.Genres,
		Duration:     in.Duration,
		Rating:       in.Rating,
		Status:       status,
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
		VideoURL:     in.VideoURL,
		TrailerURL:   in.TrailerURL,
		ReleaseYear:  in.ReleaseYear,
		Director:     in.Director,
		Writer:       in.Writer,
		Cast:         in.Cast,
		Tags:         in.Tags,
		Episodes:     in.Episodes,
	}
}

// ContentPatch is the partial-update payload: every insert field, optional.
// Absent fields leave the stored record untouched.
type ContentPatch struct {
	Title        *string   `json:"title"`
	Type         *string   `json:"type"`
	Genres       *[]string `json:"genres"`
	Duration     *int      `json:"duration"`
	Rating       *string   `json:"rating"`
	Status       *string   `json:"status"`
	Description  *string   `json:"description"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	VideoURL     *string   `json:"videoUrl"`
	TrailerURL   *string   `json:"trailerUrl"`
	ReleaseYear  *int      `json:"releaseYear"`
	Director     *string   `json:"director"`
	Writer       *string   `json:"writer"`
	Cast         *[]string `json:"cast"`
	Tags         *[]string `json:"tags"`
	Episodes     *int      `json:"episodes"`
}

// Validate checks each supplied field against the same rules as creation,
// minus required-ness.
func (p *ContentPatch) Validate() []models.FieldError {
	var fields []models.FieldError

	if p.Title != nil {
		if *p.Title == "" {
			fields = append(fields, models.FieldError{Field: "title", Message: "title must not be empty"})
		}
		if len(*p.Title) > maxTitleLen {
			fields = append(fields, models.FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", maxTitleLen)})
		}
	}
	if p.Type != nil {
		fields = append(fields, validateContentType("type", *p.Type, false)...)
	}
	if p.Genres != nil {
		fields = append(fields, validateGenres("genres", *p.Genres, false)...)
	}
	if p.Episodes != nil && *p.Episodes <= 0 {
		fields = append(fields, models.FieldError{Field: "episodes", Message: "episodes must be positive"})
	}
	if p.Duration != nil && *p.Duration <= 0 {
		fields = append(fields, models.FieldError{Field: "duration", Message: "duration must be positive"})
	}
	if p.Status != nil && *p.Status != string(models.ContentStatusDraft) && *p.Status != string(models.ContentStatusPublished) {
		fields = append(fields, models.FieldError{Field: "status", Message: "status must be 'draft' or 'published'"})
	}
	if p.Description != nil && len(*p.Description) > maxDescriptionLen {
		fields = append(fields, models.FieldError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)})
	}
	if p.ReleaseYear != nil {
		max := time.Now().Year() + 5
		if *p.ReleaseYear < minReleaseYear || *p.ReleaseYear > max {
			fields = append(fields, models.FieldError{Field: "releaseYear", Message: fmt.Sprintf("releaseYear must be between %d and %d", minReleaseYear, max)})
		}
	}
	if p.ThumbnailURL != nil {
		fields = append(fields, validateURL("thumbnailUrl", *p.ThumbnailURL)...)
	}
	if p.VideoURL != nil {
		fields = append(fields, validateURL("videoUrl", *p.VideoURL)...)
	}
	if p.TrailerURL != nil {
		fields = append(fields, validateURL("trailerUrl", *p.TrailerURL)...)
	}

	return fields
}

// Apply copies the supplied fields onto the stored record.
func (p *ContentPatch) Apply(c *models.Content) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Type != nil {
		c.Type = models.ContentType(*p.Type)
	}
	if p.Genres != nil {
		c.Genres = *p.Genres
	}
	if p.Duration != nil {
		c.Duration = p.Duration
	}
	if p.Rating != nil {
		c.Rating = *p.Rating
	}
	if p.Status != nil {
		c.Status = models.ContentStatus(*p.Status)
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.ThumbnailURL != nil {
		c.ThumbnailURL = *p.ThumbnailURL
	}
	if p.VideoURL != nil {
		c.VideoURL = *p.VideoURL
	}
	if p.TrailerURL != nil {
		c.TrailerURL = *p.TrailerURL
	}
	if p.ReleaseYear != nil {
		c.ReleaseYear = p.ReleaseYear
	}
	if p.Director != nil {
		c.Director = *p.Director
	}
	if p.Writer != nil {
		c.Writer = *p.Writer
	}
	if p.Cast != nil {
		c.Cast = *p.Cast
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.Episodes != nil {
		c.Episodes = p.Episodes
	}
}

func validateContentType(field, value string, required bool) []models.FieldError {
	if value == "" {
		if required {
			return []models.FieldError{{Field: field, Message: field + " is required"}}
		}
		return nil
	}
	if value != string(models.ContentTypeMovie) && value != string(models.ContentTypeTVShow) {
		return []models.FieldError{{Field: field, Message: field + " must be 'movie' or 'tv_show'"}}
	}
	return nil
}

func validateGenres(field string, genres []string, required bool) []models.FieldError {
	if len(genres) == 0 {
		if required {
			return []models.FieldError{{Field: field, Message: "at least one genre is required"}}
		}
		return []models.FieldError{{Field: field, Message: "genres must not be empty"}}
	}
	for _, g := range genres {
		if g == "" {
			return []models.FieldError{{Field: field, Message: "genres must not contain empty values"}}
		}
	}
	return nil
}

// validateEpisodes enforces the cross-field rule: episodes is required and
// positive for TV shows, and not accepted for movies.
func validateEpisodes(field string, contentType models.ContentType, episodes *int, insert bool) []models.FieldError {
	switch contentType {
	case models.ContentTypeTVShow:
		if episodes == nil {
			if insert {
				return []models.FieldError{{Field: field, Message: "episodes is required for tv shows"}}
			}
			return nil
		}
		if *episodes <= 0 {
			return []models.FieldError{{Field: field, Message: "episodes must be positive"}}
		}
	case models.ContentTypeMovie:
		if episodes != nil {
			return []models.FieldError{{Field: field, Message: "episodes is only allowed when type is 'tv_show'"}}
		}
	}
	return nil
}

func validateURL(field, value string) []models.FieldError {
	if value == "" {
		return nil
	}
	if _, err := url.ParseRequestURI(value); err != nil {
		return []models.FieldError{{Field: field, Message: field + " must be a valid URL"}}
	}
	return nil
}
