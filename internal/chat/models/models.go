package models

// Static replies used whenever the model cannot answer.
const (
	OfflineReply = "I'm currently offline (API Key missing). Please view the static portfolio."
	EmptyReply   = "I couldn't generate a thought right now."
	FailureReply = "My neural link is having trouble connecting. Please try again later."
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse always carries text for the widget; Degraded marks a static reply.
type ChatResponse struct {
	ResponseText string `json:"responseText"`
	Degraded     bool   `json:"degraded"`
}
