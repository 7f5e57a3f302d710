package agent

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/example/agent-taskboard/domain/agent"
)

// ErrInvalidCredentials is returned when authentication fails. The same error
// covers an unknown agent id and a wrong password so callers cannot probe
// which accounts exist.
var ErrInvalidCredentials = errors.New("wrong password")

// AgentService handles registration and authentication business logic.
type AgentService struct {
	repo   *AgentRepository
	hasher *PasswordHasher
}

// NewAgentService creates a new AgentService.
func NewAgentService(repo *AgentRepository, hasher *PasswordHasher) *AgentService {
	return &AgentService{
		repo:   repo,
		hasher: hasher,
	}
}

// Register creates a new agent account with a salted password hash.
func (s *AgentService) Register(ctx context.Context, agentID, password string) (*domain.Agent, error) {
	exists, err := s.repo.Exists(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAgentExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a := &domain.Agent{
		AgentID:      agentID,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Authenticate verifies the agent's password against the stored hash.
func (s *AgentService) Authenticate(ctx context.Context, agentID, password string) (*domain.Agent, error) {
	a, err := s.repo.FindByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, ErrAgentNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, a.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}
