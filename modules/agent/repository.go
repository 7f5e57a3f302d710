package agent

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/example/agent-taskboard/domain/agent"
	"gorm.io/gorm"
)

var (
	// ErrAgentExists is returned when the agent id is already registered.
	ErrAgentExists = errors.New("account already exists")
	// ErrAgentNotFound is returned when no agent has the given id.
	ErrAgentNotFound = errors.New("agent not found")
)

// AgentRepository handles agent persistence using GORM.
type AgentRepository struct {
	db *gorm.DB
}

// NewAgentRepository creates a new AgentRepository.
func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// Create inserts a new agent record.
func (r *AgentRepository) Create(ctx context.Context, a *domain.Agent) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAgentExists
		}
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

// FindByID retrieves an agent by its id.
func (r *AgentRepository) FindByID(ctx context.Context, agentID string) (*domain.Agent, error) {
	var a domain.Agent
	if err := r.db.WithContext(ctx).First(&a, "agent_id = ?", agentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}
	return &a, nil
}

// Exists reports whether an agent with the given id is registered.
func (r *AgentRepository) Exists(ctx context.Context, agentID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&domain.Agent{}).Where("agent_id = ?", agentID).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check agent existence: %w", result.Error)
	}
	return count > 0, nil
}
