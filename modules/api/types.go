package api

// Envelope is the uniform wrapper returned by every operation. Payload is
// null on error, otherwise the stripped record or list of records.
type Envelope struct {
	Status  string `json:"status"`
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Payload any    `json:"payload"`
}

// AgentPayload is the externally visible projection of an agent record. The
// password hash is never part of it.
type AgentPayload struct {
	AgentID string `json:"agent_id"`
}

// TaskPayload is the externally visible projection of a task record.
type TaskPayload struct {
	TaskID      int64  `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TimeCreated int64  `json:"time_created"`
	CreatedBy   string `json:"created_by"`
	DueBy       int64  `json:"due_by"`
}

// RegisterAgentRequest is the HTTP request body for registering or
// authenticating an agent.
type RegisterAgentRequest struct {
	AgentID  string `json:"agent_id"`
	Password string `json:"agent_password"`
}

// TaskBody is the HTTP request body for creating or updating a task.
type TaskBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueBy       int64  `json:"due_by"`
}

// HealthResponse is the HTTP response for the health check.
type HealthResponse struct {
	Status string `json:"status"`
	Module string `json:"module"`
}
