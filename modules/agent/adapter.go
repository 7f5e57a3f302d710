package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// agentAdapter wraps ServiceContainer for type-safe cross-module communication.
type agentAdapter struct {
	container mono.ServiceContainer
}

// NewAgentAdapter creates a new adapter for agent services.
// container is the ServiceContainer from the agent module received via
// SetDependencyServiceContainer.
func NewAgentAdapter(container mono.ServiceContainer) AgentPort {
	if container == nil {
		panic("agent adapter requires non-nil ServiceContainer")
	}
	return &agentAdapter{container: container}
}

// Register creates an agent account via the register service.
func (a *agentAdapter) Register(ctx context.Context, agentID, password string) (*RegisterResponse, error) {
	req := RegisterRequest{AgentID: agentID, Password: password}
	var resp RegisterResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"register",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("register service call failed: %w", err)
	}
	return &resp, nil
}

// Authenticate verifies agent credentials via the authenticate service.
func (a *agentAdapter) Authenticate(ctx context.Context, agentID, password string) (*AuthenticateResponse, error) {
	req := AuthenticateRequest{AgentID: agentID, Password: password}
	var resp AuthenticateResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"authenticate",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("authenticate service call failed: %w", err)
	}
	return &resp, nil
}
