package constant

const (
	// ChatMessageTypeConversation tags a persisted question/answer exchange.
	ChatMessageTypeConversation = "conversation"

	// DefaultSessionListLimit caps how many session summaries one listing returns.
	DefaultSessionListLimit = 50

	// DefaultHistoryLimit caps how many messages one history fetch returns.
	DefaultHistoryLimit = 50

	// ConversationTurnLimit caps how many prior exchanges of a session ride
	// along as chat history on the next model call.
	ConversationTurnLimit = 10
)

// AssistantPreamble opens every prompt sent to the generative model.
const AssistantPreamble = `You are an intelligent agricultural assistant. You have access to the user's agricultural monitoring data.`

// ResponseGuidelines steer the model toward short structured answers.
const ResponseGuidelines = `Guidelines for your response:
1. Keep answers precise and to the point - avoid unnecessary elaboration
2. Use bullet points and numbered lists where appropriate
3. Highlight key information with **bold** text
4. Avoid long paragraphs - break information into digestible points
5. Use clear section headers with ## when needed
6. Provide actionable insights and specific recommendations
7. If comparing data, use clear before/after or increase/decrease language
8. If data is not available, clearly state that
9. Keep responses under 200 words unless specifically asked for more detail
10. Focus only on the user's specific question - don't provide unrelated information`
