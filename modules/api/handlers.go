package api

import (
	"strconv"
	"strings"

	"github.com/example/agent-taskboard/modules/agent"
	"github.com/example/agent-taskboard/modules/task"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	agentPort agent.AgentPort
	taskPort  task.TaskPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(agentPort agent.AgentPort, taskPort task.TaskPort) *Handlers {
	return &Handlers{
		agentPort: agentPort,
		taskPort:  taskPort,
	}
}

// Home handles GET /.
func (h *Handlers) Home(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString("<h1>Welcome to Home Agent X</h1>")
}

// RegisterAgent handles POST /agent.
func (h *Handlers) RegisterAgent(c *fiber.Ctx) error {
	var req RegisterAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.AgentID == "" || req.Password == "" {
		return badRequest(c, "agent_id and agent_password are required")
	}

	resp, err := h.agentPort.Register(c.UserContext(), req.AgentID, req.Password)
	if err != nil {
		return h.handleAgentError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  "account created",
		Error:   false,
		Message: "data added successfully",
		Payload: AgentPayload{AgentID: resp.AgentID},
	})
}

// AuthenticateAgent handles POST /agent/auth.
func (h *Handlers) AuthenticateAgent(c *fiber.Ctx) error {
	var req RegisterAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.AgentID == "" || req.Password == "" {
		return badRequest(c, "agent_id and agent_password are required")
	}

	resp, err := h.agentPort.Authenticate(c.UserContext(), req.AgentID, req.Password)
	if err != nil {
		return h.handleAgentError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  "success",
		Error:   false,
		Message: "data authenticated",
		Payload: AgentPayload{AgentID: resp.AgentID},
	})
}

// CreateTask handles POST /tasks?agent=<id>.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var body TaskBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" || body.Description == "" {
		return badRequest(c, "title and description are required")
	}

	resp, err := h.taskPort.Create(c.UserContext(), &task.CreateTaskRequest{
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		CreatedBy:   c.Query("agent"),
		DueBy:       body.DueBy,
	})
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  "success",
		Error:   false,
		Message: "data added successfully",
		Payload: toTaskPayload(resp),
	})
}

// ListTasks handles GET /tasks?agent=<id>. Absence of tasks is not an error.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	resp, err := h.taskPort.ListByOwner(c.UserContext(), c.Query("agent"))
	if err != nil {
		return h.handleTaskError(c, err)
	}

	tasks := make([]TaskPayload, 0, len(resp.Tasks))
	for i := range resp.Tasks {
		tasks = append(tasks, toTaskPayload(&resp.Tasks[i]))
	}

	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  "success",
		Error:   false,
		Message: "data fetched successfully",
		Payload: tasks,
	})
}

// UpdateTask handles PUT /tasks/:task_id.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseInt(c.Params("task_id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid task id")
	}

	var body TaskBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	resp, err := h.taskPort.Update(c.UserContext(), &task.UpdateTaskRequest{
		TaskID:      taskID,
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		DueBy:       body.DueBy,
	})
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  "success",
		Error:   false,
		Message: "data updated successfully",
		Payload: toTaskPayload(resp),
	})
}

// DeleteTask handles DELETE /tasks/:task_id. The payload is the record's last
// known snapshot.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseInt(c.Params("task_id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid task id")
	}

	resp, err := h.taskPort.Delete(c.UserContext(), taskID)
	if err != nil {
		return h.handleTaskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status:  "success",
		Error:   false,
		Message: "data deleted successfully",
		Payload: toTaskPayload(resp),
	})
}

// handleAgentError maps agent service errors to envelopes. Errors cross the
// service-container boundary as strings, so known kinds are matched by
// message.
func (h *Handlers) handleAgentError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "account already exists"):
		return c.Status(fiber.StatusPaymentRequired).JSON(Envelope{
			Status:  "account already exists",
			Error:   true,
			Message: "account already exists",
			Payload: nil,
		})
	case strings.Contains(errStr, "wrong password"):
		return c.Status(fiber.StatusUnauthorized).JSON(Envelope{
			Status:  "failed",
			Error:   true,
			Message: "wrong password",
			Payload: nil,
		})
	default:
		return storageFailure(c, errStr)
	}
}

// handleTaskError maps task service errors to envelopes.
func (h *Handlers) handleTaskError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	if strings.Contains(errStr, "task not found") {
		return c.Status(fiber.StatusNotFound).JSON(Envelope{
			Status:  "failure",
			Error:   true,
			Message: "task not found",
			Payload: nil,
		})
	}
	return storageFailure(c, errStr)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Envelope{
		Status:  "failure",
		Error:   true,
		Message: message,
		Payload: nil,
	})
}

func storageFailure(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Status:  "failure",
		Error:   true,
		Message: message,
		Payload: nil,
	})
}

// toTaskPayload converts a task service response to its HTTP projection.
func toTaskPayload(t *task.TaskResponse) TaskPayload {
	return TaskPayload{
		TaskID:      t.TaskID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		TimeCreated: t.TimeCreated,
		CreatedBy:   t.CreatedBy,
		DueBy:       t.DueBy,
	}
}
