package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ProfileResponse struct {
	Email     string `json:"email"`
	HasResume bool   `json:"hasResume"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

// ChatAction tells the presentation layer what to do after a tool ran.
// Type is REFRESH_FEED or UPDATE_FILTER.
type ChatAction struct {
	Type   string `json:"type"`
	Filter string `json:"filter,omitempty"`
	Value  string `json:"value,omitempty"`
}

type ChatResponse struct {
	Reply  string      `json:"reply"`
	Action *ChatAction `json:"action,omitempty"`
}

type ApplicationRequest struct {
	JobID    string `json:"job_id"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	Status   string `json:"status"`
}
