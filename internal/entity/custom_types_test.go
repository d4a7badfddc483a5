package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTags(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Tags
	}{
		{name: "keeps order", values: []string{"Jazz", "Blues", "Folk"}, want: Tags{"Jazz", "Blues", "Folk"}},
		{name: "drops duplicates after first", values: []string{"Jazz", "Blues", "Jazz"}, want: Tags{"Jazz", "Blues"}},
		{name: "trims and drops blanks", values: []string{" Jazz ", "", "  "}, want: Tags{"Jazz"}},
		{name: "empty", values: nil, want: Tags{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTags(tt.values...))
		})
	}
}

func TestTagsScan(t *testing.T) {
	var tags Tags
	require.NoError(t, tags.Scan([]byte(`["Rock n Roll","Jazz","Jazz"]`)))
	assert.Equal(t, Tags{"Rock n Roll", "Jazz"}, tags)

	require.NoError(t, tags.Scan(nil))
	assert.Empty(t, tags)

	assert.Error(t, tags.Scan(42))
	assert.Error(t, tags.Scan("not json"))
}

func TestTagsValueOfNil(t *testing.T) {
	var tags Tags
	v, err := tags.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError()
	verr.Add("phone", "must have exactly 10 digits")
	verr.Add("name", "is required")
	verr.Add("name", "ignored second message")

	assert.ErrorIs(t, verr, ErrValidation)
	assert.Equal(t, "validation failed: name is required; phone must have exactly 10 digits", verr.Error())
	assert.ErrorIs(t, ErrVenueNotFound, ErrNotFound)
	assert.NotErrorIs(t, ErrVenueHasShows, ErrNotFound)
}
