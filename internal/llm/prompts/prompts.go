// Package prompts assembles the task-specific prompts sent to LLM
// providers. Everything here is pure string templating: same inputs, same
// prompt. Inputs are sliced to fixed caps before embedding so a huge CV or
// posting cannot blow up the request sent to a provider.
package prompts

import (
	"fmt"

	"jobdeck/pkg/utils"
)

// Per-prompt input caps, in characters
const (
	analysisCVCap   = 3000
	analysisDescCap = 2000
	coverCVCap      = 2000
	coverDescCap    = 2000
	recruiterCVCap  = 1500
)

// AnalysisPrompt builds the CV-versus-posting match analysis prompt
func AnalysisPrompt(cv, desc string) string {
	return fmt.Sprintf(`
You are a professional career coach.

Analyze this CV against this job description:

CV:
%s

Job Description:
%s

Provide:
1. Match Score (0-100%%)
2. Matching Skills (5-7)
3. Missing Requirements (3-5)
4. Improvements (3-5 tips)
`, utils.Truncate(cv, analysisCVCap), utils.Truncate(desc, analysisDescCap))
}

// TailoredCVPrompt builds the CV rewrite prompt. The full CV is embedded:
// the rewrite needs all of the candidate's experience to work from.
func TailoredCVPrompt(cv, desc string) string {
	return fmt.Sprintf(`
Rewrite this CV to match the job requirements.

Guidelines:
- Emphasize relevant skills
- Keep real experience
- ATS friendly
- Professional tone

Original CV:
%s

Job description:
%s

Return only the optimized CV.
`, cv, desc)
}

// CoverLetterPrompt builds the cover letter prompt
func CoverLetterPrompt(cv, desc, company, position string) string {
	return fmt.Sprintf(`
Write a professional cover letter (250-300 words).

Role: %s
Company: %s

Candidate experience:
%s

Job description:
%s

Return only the cover letter text.
`, position, company, utils.Truncate(cv, coverCVCap), utils.Truncate(desc, coverDescCap))
}

// RecruiterMessagesPrompt builds the recruiter outreach prompt
func RecruiterMessagesPrompt(cv, company, position string) string {
	return fmt.Sprintf(`
Create 3 recruiter outreach messages:

1. LinkedIn invite (max 150 chars)
2. LinkedIn DM (max 200 words)
3. Email: subject + body (max 250 words)

Role: %s
Company: %s

Candidate:
%s
`, position, company, utils.Truncate(cv, recruiterCVCap))
}

// ChatPrompt builds the career-advisor chat prompt
func ChatPrompt(message, context string) string {
	return fmt.Sprintf(`
You are a helpful career advisor.

Context:
%s

User message:
%s

Respond clearly and professionally.
`, utils.GetStringOrDefault(context, "none"), message)
}
