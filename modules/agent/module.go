package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	domain "github.com/example/agent-taskboard/domain/agent"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AgentModule provides agent registration and authentication services.
type AgentModule struct {
	db      *gorm.DB
	service *AgentService
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*AgentModule)(nil)
var _ mono.ServiceProviderModule = (*AgentModule)(nil)
var _ mono.HealthCheckableModule = (*AgentModule)(nil)

// NewModule creates a new AgentModule backed by the SQLite database at dbPath.
func NewModule(dbPath string) *AgentModule {
	return &AgentModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *AgentModule) Name() string {
	return "agent"
}

// Start opens the database, runs migrations and builds the service.
func (m *AgentModule) Start(_ context.Context) error {
	// TranslateError maps driver constraint violations to
	// gorm.ErrDuplicatedKey so the repository can detect duplicate ids that
	// slip past the Exists pre-check under concurrent registrations.
	db, err := gorm.Open(sqlite.Open(dsn(m.dbPath)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Agent{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := NewAgentRepository(db)
	hasher := NewPasswordHasher()
	m.service = NewAgentService(repo, hasher)

	log.Printf("[agent] Module started (database: %s)", m.dbPath)
	return nil
}

// dsn builds the SQLite DSN. The busy timeout lets writers from other
// modules sharing the file wait for the lock instead of failing with
// "database is locked".
func dsn(path string) string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000", path)
}

// Stop closes the database connection.
func (m *AgentModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[agent] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *AgentModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *AgentModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "register", json.Unmarshal, json.Marshal, m.handleRegister,
	); err != nil {
		return fmt.Errorf("failed to register register service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "authenticate", json.Unmarshal, json.Marshal, m.handleAuthenticate,
	); err != nil {
		return fmt.Errorf("failed to register authenticate service: %w", err)
	}

	log.Printf("[agent] Registered services: register, authenticate")
	return nil
}

// handleRegister handles agent registration.
func (m *AgentModule) handleRegister(ctx context.Context, req RegisterRequest, _ *mono.Msg) (RegisterResponse, error) {
	a, err := m.service.Register(ctx, req.AgentID, req.Password)
	if err != nil {
		return RegisterResponse{}, err
	}
	return RegisterResponse{AgentID: a.AgentID}, nil
}

// handleAuthenticate handles agent authentication.
func (m *AgentModule) handleAuthenticate(ctx context.Context, req AuthenticateRequest, _ *mono.Msg) (AuthenticateResponse, error) {
	a, err := m.service.Authenticate(ctx, req.AgentID, req.Password)
	if err != nil {
		return AuthenticateResponse{}, err
	}
	return AuthenticateResponse{AgentID: a.AgentID}, nil
}
