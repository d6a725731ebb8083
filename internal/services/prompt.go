package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchPrompt composes the scoring instruction for one resume. The
// weighting is guidance for the model, not arithmetic the service enforces.
func (pb *PromptBuilder) BuildMatchPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert technical recruiter analyzing a resume against a job description.

JOB DESCRIPTION:
%s

RESUME:
%s

Weigh the candidate as follows: skills match 50%%, relevant experience 30%%, education 20%%.

Return your response in the following JSON format:
{
  "score": <integer 0-100, overall match score>,
  "matched_skills": ["<top 3 skills from the resume that match the job>"],
  "missing_requirements": ["<top 3 job requirements the resume does not cover>"],
  "summary": "<3 short bullet points on the candidate's fit>"
}

Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`,
		jobDescription, resumeText)
}

// BuildOutreachEmailPrompt composes the instruction for a free-text
// outreach draft. No structured reply is expected.
func (pb *PromptBuilder) BuildOutreachEmailPrompt(jobDescription, candidateName string, matchedSkills []string, summary string) string {
	skills := "their relevant experience"
	if len(matchedSkills) > 0 {
		skills = strings.Join(matchedSkills, ", ")
	}

	return fmt.Sprintf(`You are a recruiter writing a short, friendly outreach email to a candidate.

Candidate name: %s
Their strongest matching skills: %s
Screening summary: %s

JOB DESCRIPTION:
%s

Write a concise outreach email (under 150 words) inviting the candidate to discuss the role.
Mention one or two of their matching skills. Sign off as "The Recruiting Team".
Return only the email text, no subject line, no JSON, no markdown.`,
		candidateName, skills, summary, jobDescription)
}
