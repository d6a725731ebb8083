package services

import (
	"regexp"
	"strings"

	"recruitai/resume-screener/internal/models"
)

// Best-effort identity extraction from raw resume text. Single pass,
// stateless, first match wins for every rule. False negatives are expected:
// the fields are advisory, the placeholder stands in for anything missed.

const (
	nameSearchWindow  = 200
	educationMaxChars = 100
)

var (
	firstLineRe = regexp.MustCompile(`^(.*?)\n`)
	emailRe     = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
	phoneRe     = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe  = regexp.MustCompile(`(https?://)?(www\.)?linkedin\.com/in/[^\s]+`)
	educationRe = regexp.MustCompile(`(?i)(Education|Academic Background)[\s\S]*?(University|College|Institute)[^\n]*`)
)

type fieldMatcher func(text string) (string, bool)

var fieldMatchers = []struct {
	match fieldMatcher
	apply func(profile *models.CandidateProfile, value string)
}{
	{matchName, func(p *models.CandidateProfile, v string) { p.Name = v }},
	{matchEmail, func(p *models.CandidateProfile, v string) { p.Email = v }},
	{matchPhone, func(p *models.CandidateProfile, v string) { p.Phone = v }},
	{matchProfileLink, func(p *models.CandidateProfile, v string) { p.ProfileLink = v }},
	{matchEducation, func(p *models.CandidateProfile, v string) { p.Education = v }},
}

// ExtractProfile recovers candidate identity fields from resume text. It
// never fails: any rule without a match leaves its field at the placeholder.
func ExtractProfile(text string) models.CandidateProfile {
	profile := models.NewCandidateProfile()

	for _, m := range fieldMatchers {
		if value, ok := m.match(text); ok {
			m.apply(&profile, value)
		}
	}

	return profile
}

// matchName takes the content of the first line, looking only at the start
// of the document where the name usually sits.
func matchName(text string) (string, bool) {
	window := truncateChars(text, nameSearchWindow)
	match := firstLineRe.FindStringSubmatch(window)
	if match == nil {
		return "", false
	}
	name := strings.TrimSpace(match[1])
	if name == "" {
		return "", false
	}
	return name, true
}

func matchEmail(text string) (string, bool) {
	if match := emailRe.FindString(text); match != "" {
		return match, true
	}
	return "", false
}

func matchPhone(text string) (string, bool) {
	if match := phoneRe.FindString(text); match != "" {
		return match, true
	}
	return "", false
}

func matchProfileLink(text string) (string, bool) {
	if match := linkedinRe.FindString(text); match != "" {
		return match, true
	}
	return "", false
}

// matchEducation grabs the span from the education heading through the next
// institution token and the remainder of that line.
func matchEducation(text string) (string, bool) {
	match := educationRe.FindString(text)
	if match == "" {
		return "", false
	}
	match = strings.TrimSpace(strings.ReplaceAll(match, "\n", " "))
	return truncateChars(match, educationMaxChars), true
}

// truncateChars bounds a string to limit characters, counting runes so a
// multi-byte character is never split.
func truncateChars(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
