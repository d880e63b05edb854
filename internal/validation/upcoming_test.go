package validation

import (
	"testing"
	"time"

	"reelvault/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUpcomingInsert() *UpcomingInsert {
	return &UpcomingInsert{
		Title:       "Next Season",
		Type:        "tv_show",
		Genres:      []string{"Drama"},
		Episodes:    intPtr(8),
		ReleaseDate: "2027-03-15",
		Description: "A new season arrives.",
	}
}

func TestParseReleaseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "date only",
			value: "2027-03-15",
			want:  time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "full RFC3339",
			value: "2027-03-15T10:30:00Z",
			want:  time.Date(2027, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset normalizes to UTC",
			value: "2027-03-15T10:30:00+02:00",
			want:  time.Date(2027, 3, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			value:   "soon",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReleaseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestUpcomingInsert_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(in *UpcomingInsert)
		wantFields []string
	}{
		{
			name:   "valid",
			mutate: func(in *UpcomingInsert) {},
		},
		{
			name:       "missing title",
			mutate:     func(in *UpcomingInsert) { in.Title = "" },
			wantFields: []string{"title"},
		},
		{
			name:       "missing release date",
			mutate:     func(in *UpcomingInsert) { in.ReleaseDate = "" },
			wantFields: []string{"releaseDate"},
		},
		{
			name:       "unparseable release date",
			mutate:     func(in *UpcomingInsert) { in.ReleaseDate = "March 2027" },
			wantFields: []string{"releaseDate"},
		},
		{
			name:       "missing description",
			mutate:     func(in *UpcomingInsert) { in.Description = "" },
			wantFields: []string{"description"},
		},
		{
			name:       "non-positive episodes",
			mutate:     func(in *UpcomingInsert) { in.Episodes = intPtr(0) },
			wantFields: []string{"episodes"},
		},
		{
			name:       "unknown type",
			mutate:     func(in *UpcomingInsert) { in.Type = "special" },
			wantFields: []string{"type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validUpcomingInsert()
			tt.mutate(in)

			fields := in.Validate()
			if len(tt.wantFields) == 0 {
				assert.Empty(t, fields)
				return
			}
			assert.ElementsMatch(t, tt.wantFields, fieldNames(fields))
		})
	}
}

func TestUpcomingInsert_Model_UsesParsedDate(t *testing.T) {
	in := validUpcomingInsert()
	require.Empty(t, in.Validate())

	entry := in.Model()
	assert.Equal(t, time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC), entry.ReleaseDate)
	assert.Equal(t, models.ContentTypeTVShow, entry.Type)
}

func TestUpcomingPatch_ApplyReleaseDate(t *testing.T) {
	entry := &models.UpcomingContent{
		Title:       "Next Season",
		ReleaseDate: time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	patch := UpcomingPatch{ReleaseDate: strPtr("2027-06-01")}
	require.Empty(t, patch.Validate())
	patch.Apply(entry)

	assert.Equal(t, time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC), entry.ReleaseDate)
	assert.Equal(t, "Next Season", entry.Title)
}

func TestUpcomingPatch_InvalidDateReported(t *testing.T) {
	patch := UpcomingPatch{ReleaseDate: strPtr("whenever")}
	fields := patch.Validate()
	assert.ElementsMatch(t, []string{"releaseDate"}, fieldNames(fields))
}
