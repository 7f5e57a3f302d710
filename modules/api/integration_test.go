package api

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/example/agent-taskboard/modules/agent"
	"github.com/example/agent-taskboard/modules/task"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
)

// setupApplication starts a mono application with the real agent, task and
// api modules wired through the service container, backed by in-memory
// SQLite and no cache. Requests are driven through the Fiber app directly,
// so the listener port is irrelevant.
func setupApplication(t *testing.T) *fiber.App {
	t.Helper()

	monoApp, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(5*time.Second),
		mono.WithLogLevel(mono.LogLevelError),
	)
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	apiModule := NewModule(0)
	monoApp.Register(agent.NewModule(":memory:"))
	monoApp.Register(task.NewModule(":memory:", nil))
	monoApp.Register(apiModule)

	if err := monoApp.Start(context.Background()); err != nil {
		t.Fatalf("failed to start application: %v", err)
	}
	t.Cleanup(func() {
		_ = monoApp.Stop(context.Background())
	})

	return apiModule.app
}

// TestTaskLifecycleEndToEnd drives the full register, create, list, update,
// delete sequence through the wired stack, including the error round trips
// whose service errors cross the container as strings.
func TestTaskLifecycleEndToEnd(t *testing.T) {
	app := setupApplication(t)

	status, env := doRequest(t, app, "POST", "/agent",
		`{"agent_id":"alice","agent_password":"pw1"}`)
	if status != fiber.StatusOK || env.Error {
		t.Fatalf("register: status = %v, envelope = %+v", status, env)
	}
	if env.Message != "data added successfully" {
		t.Errorf("register message = %q, want %q", env.Message, "data added successfully")
	}

	status, env = doRequest(t, app, "POST", "/agent",
		`{"agent_id":"alice","agent_password":"other"}`)
	if status != fiber.StatusPaymentRequired {
		t.Errorf("duplicate register: status = %v, want %v", status, fiber.StatusPaymentRequired)
	}
	if env.Message != "account already exists" {
		t.Errorf("duplicate register message = %q, want %q", env.Message, "account already exists")
	}

	status, env = doRequest(t, app, "POST", "/agent/auth",
		`{"agent_id":"alice","agent_password":"bad"}`)
	if status != fiber.StatusUnauthorized {
		t.Errorf("wrong password: status = %v, want %v", status, fiber.StatusUnauthorized)
	}
	if env.Message != "wrong password" {
		t.Errorf("wrong password message = %q, want %q", env.Message, "wrong password")
	}

	status, env = doRequest(t, app, "POST", "/agent/auth",
		`{"agent_id":"alice","agent_password":"pw1"}`)
	if status != fiber.StatusOK || env.Error {
		t.Fatalf("authenticate: status = %v, envelope = %+v", status, env)
	}

	status, env = doRequest(t, app, "POST", "/tasks/?agent=alice",
		`{"title":"Ship report","description":"Q3 numbers","category":"work","due_by":1700000000000}`)
	if status != fiber.StatusOK || env.Error {
		t.Fatalf("create: status = %v, envelope = %+v", status, env)
	}
	created, ok := env.Payload.(map[string]any)
	if !ok {
		t.Fatalf("create: unexpected payload type %T", env.Payload)
	}
	if created["task_id"] != float64(1) {
		t.Errorf("create task_id = %v, want 1", created["task_id"])
	}
	if created["category"] != "work" {
		t.Errorf("create category = %v, want %q", created["category"], "work")
	}
	if created["created_by"] != "alice" {
		t.Errorf("create created_by = %v, want %q", created["created_by"], "alice")
	}

	status, env = doRequest(t, app, "GET", "/tasks/?agent=alice", "")
	if status != fiber.StatusOK || env.Error {
		t.Fatalf("list: status = %v, envelope = %+v", status, env)
	}
	listed, ok := env.Payload.([]any)
	if !ok {
		t.Fatalf("list: unexpected payload type %T", env.Payload)
	}
	if len(listed) != 1 {
		t.Fatalf("list returned %d tasks, want 1", len(listed))
	}

	status, env = doRequest(t, app, "PUT", "/tasks/1",
		`{"title":"Ship report v2","description":"Q3+Q4 numbers","category":"work","due_by":1800000000000}`)
	if status != fiber.StatusOK || env.Error {
		t.Fatalf("update: status = %v, envelope = %+v", status, env)
	}
	updated, ok := env.Payload.(map[string]any)
	if !ok {
		t.Fatalf("update: unexpected payload type %T", env.Payload)
	}
	if updated["due_by"] != float64(1800000000000) {
		t.Errorf("update due_by = %v, want 1800000000000", updated["due_by"])
	}
	if updated["created_by"] != "alice" {
		t.Errorf("update must not change created_by, got %v", updated["created_by"])
	}

	status, env = doRequest(t, app, "DELETE", "/tasks/1", "")
	if status != fiber.StatusOK || env.Error {
		t.Fatalf("delete: status = %v, envelope = %+v", status, env)
	}
	if env.Message != "data deleted successfully" {
		t.Errorf("delete message = %q, want %q", env.Message, "data deleted successfully")
	}

	status, env = doRequest(t, app, "DELETE", "/tasks/1", "")
	if status != fiber.StatusNotFound {
		t.Errorf("second delete: status = %v, want %v", status, fiber.StatusNotFound)
	}
	if env.Message != "task not found" {
		t.Errorf("second delete message = %q, want %q", env.Message, "task not found")
	}

	status, env = doRequest(t, app, "GET", "/tasks/?agent=alice", "")
	if status != fiber.StatusOK || env.Error {
		t.Fatalf("final list: status = %v, envelope = %+v", status, env)
	}
	remaining, ok := env.Payload.([]any)
	if !ok {
		t.Fatalf("final list: unexpected payload type %T", env.Payload)
	}
	if len(remaining) != 0 {
		t.Errorf("final list returned %d tasks, want 0", len(remaining))
	}
}

// TestListOrderingEndToEnd verifies deadline ordering through the wired
// stack: tasks come back ascending by due_by with ties in insertion order.
func TestListOrderingEndToEnd(t *testing.T) {
	app := setupApplication(t)

	status, env := doRequest(t, app, "POST", "/agent",
		`{"agent_id":"bob","agent_password":"pw1"}`)
	if status != fiber.StatusOK || env.Error {
		t.Fatalf("register: status = %v, envelope = %+v", status, env)
	}

	deadlines := []int64{300, 100, 200, 200}
	for i, due := range deadlines {
		body := fmt.Sprintf(`{"title":"t%d","description":"d","due_by":%d}`, i, due)
		status, env = doRequest(t, app, "POST", "/tasks/?agent=bob", body)
		if status != fiber.StatusOK || env.Error {
			t.Fatalf("create %d: status = %v, envelope = %+v", i, status, env)
		}
	}

	status, env = doRequest(t, app, "GET", "/tasks/?agent=bob", "")
	if status != fiber.StatusOK || env.Error {
		t.Fatalf("list: status = %v, envelope = %+v", status, env)
	}
	listed, ok := env.Payload.([]any)
	if !ok {
		t.Fatalf("list: unexpected payload type %T", env.Payload)
	}
	if len(listed) != len(deadlines) {
		t.Fatalf("list returned %d tasks, want %d", len(listed), len(deadlines))
	}

	wantDue := []float64{100, 200, 200, 300}
	wantTitle := []string{"t1", "t2", "t3", "t0"}
	for i, item := range listed {
		entry, ok := item.(map[string]any)
		if !ok {
			t.Fatalf("entry %d: unexpected type %T", i, item)
		}
		if entry["due_by"] != wantDue[i] {
			t.Errorf("entry %d due_by = %v, want %v", i, entry["due_by"], wantDue[i])
		}
		if entry["title"] != wantTitle[i] {
			t.Errorf("entry %d title = %v, want %v", i, entry["title"], wantTitle[i])
		}
	}
}
