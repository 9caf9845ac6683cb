package spanosdk

// WebhookRequest is the body of POST /webhook/.
type WebhookRequest struct {
	// UserName names the user the meal is logged for.
	UserName string `json:"user_name" example:"alice"`

	// Message is the chat command, "log <meal>: <item>, <item>".
	Message string `json:"message" example:"log lunch: Jeera Rice, Dal"`
}

// WebhookResponse is returned after a meal was logged.
type WebhookResponse struct {
	Status string `json:"status" example:"success"`
	Detail string `json:"detail" example:"Successfully logged Lunch for user alice."`
}

// AskRequest is the body of POST /ai/ask.
type AskRequest struct {
	Prompt string `json:"prompt" example:"Is dal a good dinner for me?"`
}

// AskResponse carries the assistant's answer.
type AskResponse struct {
	Response string `json:"response"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the readiness of each dependency.
type HealthChecks struct {
	Database  string `json:"database" example:"ok"`
	Assistant string `json:"assistant" example:"disabled"`
}

// SignupForm mirrors the fields of the signup page.
type SignupForm struct {
	Name     string
	Password string
	Age      int
	Weight   float64
	Height   float64
	Gender   string
	Goal     string
}
