package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitai/resume-screener/internal/models"
)

const sampleResume = "Jane Doe\njane@x.com\n(415) 555-1212\nlinkedin.com/in/janedoe\nEducation: B.S. Computer Science, Example University"

func TestExtractProfileFullResume(t *testing.T) {
	profile := ExtractProfile(sampleResume)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "jane@x.com", profile.Email)
	assert.Equal(t, "(415) 555-1212", profile.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", profile.ProfileLink)
	assert.Equal(t, "Education: B.S. Computer Science, Example University", profile.Education)
}

func TestExtractProfileMissingFieldsUsePlaceholder(t *testing.T) {
	profile := ExtractProfile("Some unstructured text without any contact details\n")

	assert.Equal(t, models.FieldNotFound, profile.Email)
	assert.Equal(t, models.FieldNotFound, profile.Phone)
	assert.Equal(t, models.FieldNotFound, profile.ProfileLink)
	assert.Equal(t, models.FieldNotFound, profile.Education)
}

func TestExtractProfileEmptyText(t *testing.T) {
	profile := ExtractProfile("")

	assert.Equal(t, models.NewCandidateProfile(), profile)
}

func TestExtractProfileIsIdempotent(t *testing.T) {
	first := ExtractProfile(sampleResume)
	second := ExtractProfile(sampleResume)

	assert.Equal(t, first, second)
}

func TestExtractProfileNameOnlyInFirstWindow(t *testing.T) {
	// A name-shaped line beyond the first 200 characters should not count.
	text := strings.Repeat("x", 250) + "\nJohn Smith\n"
	profile := ExtractProfile(text)

	assert.Equal(t, models.FieldNotFound, profile.Name)
}

func TestExtractProfileFirstMatchWins(t *testing.T) {
	text := "Jane Doe\nfirst@example.com later second@example.com\n"
	profile := ExtractProfile(text)

	assert.Equal(t, "first@example.com", profile.Email)
}

func TestExtractProfilePhoneVariants(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"call +1 415 555 1212 today", "+1 415 555 1212"},
		{"phone: 415.555.1212", "415.555.1212"},
		{"phone: 4155551212", "4155551212"},
	}

	for _, tc := range cases {
		profile := ExtractProfile(tc.text)
		assert.Equal(t, tc.want, profile.Phone, "input: %q", tc.text)
	}
}

func TestExtractProfileLinkedInWithScheme(t *testing.T) {
	profile := ExtractProfile("see https://www.linkedin.com/in/jane-doe for more\n")

	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", profile.ProfileLink)
}

func TestExtractProfileEducationCollapsesNewlines(t *testing.T) {
	text := "Jane Doe\nAcademic Background\nB.S. Physics\nExample Institute of Technology\n"
	profile := ExtractProfile(text)

	assert.NotEqual(t, models.FieldNotFound, profile.Education)
	assert.NotContains(t, profile.Education, "\n")
}

func TestExtractProfileEducationTruncated(t *testing.T) {
	text := "Jane Doe\nEducation: " + strings.Repeat("a", 200) + " Example University and much more text on the same line\n"
	profile := ExtractProfile(text)

	assert.LessOrEqual(t, len([]rune(profile.Education)), educationMaxChars)
}

func TestTruncateChars(t *testing.T) {
	assert.Equal(t, "abc", truncateChars("abc", 10))
	assert.Equal(t, "ab", truncateChars("abcdef", 2))
	assert.Equal(t, "", truncateChars("abc", 0))
	// Multi-byte runes are never split.
	assert.Equal(t, "hél", truncateChars("héllo", 3))
}
