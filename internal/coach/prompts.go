package coach

import (
	"encoding/json"
	"fmt"
	"strings"

	"coffeechat.app/api/internal/model"
)

func feedbackPrompt(transcript model.Transcript) string {
	// Marshal errors are impossible for these types; the zero value is fine.
	encoded, _ := json.MarshalIndent(transcript, "", "  ")

	return fmt.Sprintf(`Analyze this coffee chat conversation and provide feedback ONLY on the USER's performance (not the assistant's behavior).

Transcript: %s

IMPORTANT INSTRUCTIONS:
- ONLY analyze the USER's messages (role: "user")
- DO NOT mention anything about the assistant's behavior
- Focus on the user's communication skills, networking effectiveness, and conversation quality
- Provide 1-3 actual, realistic strengths based on what the user did well
- Provide 1-3 specific areas for improvement based on what the user could do better
- Be honest and constructive - don't make up strengths that aren't there

You must respond with ONLY valid JSON in this exact format:
{
  "strengths": ["actual strength 1", "actual strength 2", "actual strength 3"],
  "improvements": ["specific improvement 1", "specific improvement 2", "specific improvement 3"]
}

Examples of good feedback:
- Strengths: "Asked specific questions about the recruiter's experience", "Showed genuine interest in the industry", "Provided relevant background information"
- Improvements: "Could provide more specific examples from your background", "Consider asking follow-up questions to deepen the conversation", "Try to share more about your career goals"

Focus on the user's actual performance, not generic advice. Do not include any markdown formatting or additional text. Only return the JSON object.`, encoded)
}

func coldEmailPrompt(draftText string) string {
	return fmt.Sprintf(`You are a JSON-only response bot. Analyze this cold outreach email and respond with ONLY valid JSON.

Email draft: "%s"

IMPORTANT: The aiRewrite must be a CONCISE, EFFECTIVE cold email that includes:
- Brief personalized opening (1 sentence)
- Clear value proposition or mutual benefit (1-2 sentences)
- Specific, actionable request (1 sentence)
- Professional but friendly tone
- Total length: 3-4 sentences maximum
- Cold email format: direct, concise, no fluff

Respond with this exact JSON structure (no other text, no markdown, no explanations):
{
  "aiFeedback": {
    "strengths": ["Clear and direct", "Shows initiative", "Specific request"],
    "improvements": ["Add personalization", "Include value proposition", "Make it more engaging"]
  },
  "aiRewrite": "Hi [Name], I noticed your impressive work at [Company] and I'm interested in [specific aspect] and believe I could contribute [specific value]. Can we talk at [specific time and date] in-person or virtually to discuss [specific topic]? I'm happy to work around your schedule. Best regards, [Your Name]",
  "aiSubjectSuggestions": ["Quick question about [Company]", "Coffee chat request", "Connecting on [specific topic]"],
  "aiOpeningLine": "Hi [Name], I came across your profile and was impressed by your work on [specific project/achievement].",
  "aiClosingCTA": "Would you be open to a brief coffee chat this week? I'm happy to work around your schedule."
}`, draftText)
}

func kitPrompt(user model.KitUserInfo, target model.KitTargetInfo) string {
	company := user.Company
	if company == "" {
		company = "Not specified"
	}
	background := user.Background
	if background == "" {
		background = "Not specified"
	}
	goals := user.Goals
	if goals == "" {
		goals = "Not specified"
	}

	var urlLine string
	if target.ProfileURL != "" {
		urlLine = "LinkedIn URL: " + target.ProfileURL
	}

	pitch := buildPitchExample(user)

	return fmt.Sprintf(`Generate a personalized CoffeeChat Kit for networking. The user wants to network with someone based on their LinkedIn profile.

USER INFORMATION:
- Name: %s
- Role: %s
- Company: %s
- Background/Interests: %s
- Goals: %s

TARGET PERSON'S PROFILE:
%s
%s

IMPORTANT INSTRUCTIONS:
- The ONE-LINE PITCH should be about the USER (%s) introducing themselves
- The SHARED INTERESTS should identify common ground between the user and the target person
- The CONVERSATION STARTERS should be specific questions about the TARGET PERSON's background/experience
- The FOLLOW-UPS should build on the target person's responses and show genuine interest

You must respond with ONLY valid JSON in this exact format:
{
  "sharedInterests": ["specific interest 1 that both user and target share", "specific interest 2", "specific interest 3", "specific interest 4"],
  "starters": ["Specific question about target's work at [company]", "Question about target's specific project/achievement", "Question about target's background in [field]", "Question about target's experience with [technology/skill]"],
  "followUps": ["Follow-up about target's work", "Question about target's career path", "Question about target's advice", "Question about target's industry insights"],
  "oneLinePitch": %q
}

Be specific to the target person's background. Avoid generic questions like "How did you get into tech?". Focus on their actual experience, companies, projects, or achievements mentioned in their profile. Do not include any markdown formatting or additional text. Only return the JSON object.`,
		user.Name, user.Role, company, background, goals,
		target.ProfileText, urlLine, user.Name, pitch)
}

func buildPitchExample(user model.KitUserInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hey! 👋 I'm %s, a %s", user.Name, user.Role)
	if user.Company != "" {
		fmt.Fprintf(&b, " at %s", user.Company)
	}
	if user.Background != "" {
		fmt.Fprintf(&b, " who's %s", strings.ToLower(user.Background))
	} else {
		b.WriteString(" who's passionate about [relevant field]")
	}
	b.WriteString(". ")
	if user.Goals != "" {
		fmt.Fprintf(&b, "Looking to %s", strings.ToLower(user.Goals))
	} else {
		b.WriteString("Always excited to connect with fellow professionals")
	}
	b.WriteString(" and swap stories! ✨")
	return b.String()
}
