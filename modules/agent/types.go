package agent

import "context"

// RegisterRequest is the request for registering an agent.
type RegisterRequest struct {
	AgentID  string `json:"agent_id"`
	Password string `json:"agent_password"`
}

// RegisterResponse is the response after registering an agent. The password
// hash is never included.
type RegisterResponse struct {
	AgentID string `json:"agent_id"`
}

// AuthenticateRequest is the request for authenticating an agent.
type AuthenticateRequest struct {
	AgentID  string `json:"agent_id"`
	Password string `json:"agent_password"`
}

// AuthenticateResponse is the response after a successful authentication.
type AuthenticateResponse struct {
	AgentID string `json:"agent_id"`
}

// AgentPort defines the interface other modules use to access agent
// functionality.
type AgentPort interface {
	Register(ctx context.Context, agentID, password string) (*RegisterResponse, error)
	Authenticate(ctx context.Context, agentID, password string) (*AuthenticateResponse, error)
}
