package adgen

import "fmt"

// Character budgets for page text included in prompts.
const (
	AdPromptBudget      = 500
	SummaryPromptBudget = 1000
)

// BuildAdPrompt asks for two contextual ads in the AD N: format understood by
// ParseAds.
func BuildAdPrompt(blocks []ContentBlock) string {
	return fmt.Sprintf(adPromptTemplate, JoinText(blocks, AdPromptBudget))
}

const adPromptTemplate = `Create 2 contextual ads for this content:
"%s"

Format:
AD 1:
Headline: [headline]
Text: [ad text]
CTA: [call to action]

AD 2:
Headline: [headline]
Text: [ad text]
CTA: [call to action]

Keep ads relevant and professional.`

// BuildSummaryPrompt asks for a summary, key points and one ad in the
// sectioned format understood by ParseSummary.
func BuildSummaryPrompt(blocks []ContentBlock, title string) string {
	return fmt.Sprintf(summaryPromptTemplate, title, JoinText(blocks, SummaryPromptBudget))
}

const summaryPromptTemplate = `Analyze this article and provide:
1. A concise summary (2-3 sentences)
2. Key points (3-4 bullet points)
3. One contextual advertisement

Article: "%s"
Content: "%s"

Format your response as:
SUMMARY:
[2-3 sentence summary]

KEY POINTS:
• [point 1]
• [point 2]
• [point 3]
• [point 4]

ADVERTISEMENT:
Headline: [relevant headline]
Text: [compelling ad text]
CTA: [call to action]

Keep everything concise and relevant.`
