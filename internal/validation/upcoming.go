package validation

import (
	"fmt"
	"time"

	"reelvault/internal/models"
)

// releaseDateLayouts are the accepted formats for the incoming date string,
// tried in order.
var releaseDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseReleaseDate coerces a date-like string into a point in time.
func ParseReleaseDate(value string) (time.Time, error) {
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// UpcomingInsert is the payload accepted when announcing upcoming content.
// ReleaseDate arrives as an ISO date string and is coerced during Validate.
type UpcomingInsert struct {
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	Genres       []string `json:"genres"`
	Episodes     *int     `json:"episodes"`
	ReleaseDate  string   `json:"releaseDate"`
	Description  string   `json:"description"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	TrailerURL   string   `json:"trailerUrl"`
	DisplayOrder int      `json:"displayOrder"`

	parsedReleaseDate time.Time
}

// Validate checks the insert payload and returns one FieldError per problem.
func (in *UpcomingInsert) Validate() []models.FieldError {
	var fields []models.FieldError

	if in.Title == "" {
		fields = append(fields, models.FieldError{Field: "title", Message: "title is required"})
	}
	if len(in.Title) > maxTitleLen {
		fields = append(fields, models.FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", maxTitleLen)})
	}

	fields = append(fields, validateContentType("type", in.Type, true)...)
	fields = append(fields, validateGenres("genres", in.Genres, true)...)

	if in.Episodes != nil && *in.Episodes <= 0 {
		fields = append(fields, models.FieldError{Field: "episodes", Message: "episodes must be positive"})
	}

	if in.ReleaseDate == "" {
		fields = append(fields, models.FieldError{Field: "releaseDate", Message: "releaseDate is required"})
	} else {
		parsed, err := ParseReleaseDate(in.ReleaseDate)
		if err != nil {
			fields = append(fields, models.FieldError{Field: "releaseDate", Message: "releaseDate must be an ISO date string"})
		} else {
			in.parsedReleaseDate = parsed
		}
	}

	if in.Description == "" {
		fields = append(fields, models.FieldError{Field: "description", Message: "description is required"})
	}
	if len(in.Description) > maxDescriptionLen {
		fields = append(fields, models.FieldError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)})
	}

	fields = append(fields, validateURL("thumbnailUrl", in.ThumbnailURL)...)
	fields = append(fields, validateURL("trailerUrl", in.TrailerURL)...)

	return fields
}

// Model builds the record to persist. Validate must have been called and
// returned no errors.
func (in *UpcomingInsert) Model() *models.UpcomingContent {
	return &models.UpcomingContent{
		Title:        in.Title,
		Type:         models.ContentType(in.Type),
		Genres:       in.Genres,
		Episodes:     in.Episodes,
		ReleaseDate:  in.parsedReleaseDate,
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
		TrailerURL:   in.TrailerURL,
		DisplayOrder: in.DisplayOrder,
	}
}

// UpcomingPatch is the partial-update payload for upcoming content.
type UpcomingPatch struct {
	Title        *string   `json:"title"`
	Type         *string   `json:"type"`
	Genres       *[]string `json:"genres"`
	Episodes     *int      `json:"episodes"`
	ReleaseDate  *string   `json:"releaseDate"`
	Description  *string   `json:"description"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	TrailerURL   *string   `json:"trailerUrl"`
	DisplayOrder *int      `json:"displayOrder"`

	parsedReleaseDate time.Time
}

// Validate checks each supplied field against the same rules as creation,
// minus required-ness.
func (p *UpcomingPatch) Validate() []models.FieldError {
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
	if p.ReleaseDate != nil {
		parsed, err := ParseReleaseDate(*p.ReleaseDate)
		if err != nil {
			fields = append(fields, models.FieldError{Field: "releaseDate", Message: "releaseDate must be an ISO date string"})
		} else {
			p.parsedReleaseDate = parsed
		}
	}
	if p.Description != nil {
		if *p.Description == "" {
			fields = append(fields, models.FieldError{Field: "description", Message: "description must not be empty"})
		}
		if len(*p.Description) > maxDescriptionLen {
			fields = append(fields, models.FieldError{Field: "description", Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLen)})
		}
	}
	if p.ThumbnailURL != nil {
		fields = append(fields, validateURL("thumbnailUrl", *p.ThumbnailURL)...)
	}
	if p.TrailerURL != nil {
		fields = append(fields, validateURL("trailerUrl", *p.TrailerURL)...)
	}

	return fields
}

// Apply copies the supplied fields onto the stored record.
func (p *UpcomingPatch) Apply(u *models.UpcomingContent) {
	if p.Title != nil {
		u.Title = *p.Title
	}
	if p.Type != nil {
		u.Type = models.ContentType(*p.Type)
	}
	if p.Genres != nil {
		u.Genres = *p.Genres
	}
	if p.Episodes != nil {
		u.Episodes = p.Episodes
	}
	if p.ReleaseDate != nil {
		u.ReleaseDate = p.parsedReleaseDate
	}
	if p.Description != nil {
		u.Description = *p.Description
	}
	if p.ThumbnailURL != nil {
		u.ThumbnailURL = *p.ThumbnailURL
	}
	if p.TrailerURL != nil {
		u.TrailerURL = *p.TrailerURL
	}
	if p.DisplayOrder != nil {
		u.DisplayOrder = *p.DisplayOrder
	}
}
