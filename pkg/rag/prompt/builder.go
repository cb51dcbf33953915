package prompt

import (
	"strings"
	"time"

	"agri-assistant-be/internal/constant"
)

// Builder assembles the prompt for one question: preamble, the user's data
// context, current time and identity, response guidelines, then the literal
// question.
type Builder struct {
	contextData string
	userName    string
	userEmail   string
	question    string
	now         time.Time
}

func NewBuilder(contextData, userName, userEmail, question string, now time.Time) *Builder {
	return &Builder{
		contextData: contextData,
		userName:    userName,
		userEmail:   userEmail,
		question:    question,
		now:         now,
	}
}

func (b *Builder) Build() string {
	var prompt strings.Builder

	prompt.WriteString(constant.AssistantPreamble)
	prompt.WriteString("\n\n")

	b.writeDataContext(&prompt)
	b.writeSituation(&prompt)

	prompt.WriteString("Based on the above data, please answer the user's question with structured, concise responses.\n\n")
	prompt.WriteString(constant.ResponseGuidelines)
	prompt.WriteString("\n\n")

	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *Builder) writeDataContext(prompt *strings.Builder) {
	prompt.WriteString("User's Data Context:\n")
	prompt.WriteString(b.contextData)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeSituation(prompt *strings.Builder) {
	prompt.WriteString("Current Date: ")
	prompt.WriteString(b.now.UTC().Format("2006-01-02 15:04:05"))
	prompt.WriteString(" UTC\n")
	prompt.WriteString("User: ")
	prompt.WriteString(b.userName)
	prompt.WriteString(" (")
	prompt.WriteString(b.userEmail)
	prompt.WriteString(")\n\n")
}

func (b *Builder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("User Question: ")
	prompt.WriteString(b.question)
	prompt.WriteString("\n\nPlease provide a helpful, structured response based on the available data.\n")
}
