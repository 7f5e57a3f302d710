package agent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// setupService builds an AgentService backed by an in-memory database.
func setupService(t *testing.T) *AgentService {
	t.Helper()
	db := setupTestDB(t)
	return NewAgentService(NewAgentRepository(db), NewPasswordHasher())
}

func TestAgentService_RegisterAndAuthenticate(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	a, err := service.Register(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if a.AgentID != "alice" {
		t.Errorf("expected agent id %q, got %q", "alice", a.AgentID)
	}
	if a.PasswordHash == "" || a.PasswordHash == "pw1" {
		t.Error("Register() did not store a hashed password")
	}

	got, err := service.Authenticate(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if got.AgentID != "alice" {
		t.Errorf("expected agent id %q, got %q", "alice", got.AgentID)
	}
}

func TestAgentService_DuplicateRegistration(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	first, err := service.Register(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err = service.Register(ctx, "alice", "other-password")
	if !errors.Is(err, ErrAgentExists) {
		t.Fatalf("expected ErrAgentExists, got %v", err)
	}

	// The first agent's hash must be untouched by the failed registration.
	stored, err := service.repo.FindByID(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.PasswordHash != first.PasswordHash {
		t.Error("failed registration modified the stored password hash")
	}
}

func TestAgentService_AuthenticateFailures(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, "alice", "pw1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		agentID  string
		password string
	}{
		{
			name:     "wrong password for existing agent",
			agentID:  "alice",
			password: "wrong",
		},
		{
			name:     "unknown agent id",
			agentID:  "nobody",
			password: "pw1",
		},
		{
			name:     "empty password",
			agentID:  "alice",
			password: "",
		},
	}

	// Unknown ids and wrong passwords must be indistinguishable.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Authenticate(context.Background(), tt.agentID, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAgentService_HashNeverExposed(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	a, err := service.Register(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if a.PasswordHash == "" {
		t.Fatal("expected stored hash on the entity")
	}

	// The JSON projection of the entity must not leak the hash.
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal error = %v", err)
	}
	if strings.Contains(string(data), a.PasswordHash) {
		t.Error("serialized agent leaked the password hash")
	}
}
