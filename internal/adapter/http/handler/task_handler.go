package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	. "taskapp/internal/adapter/http/helper"
	. "taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
	"taskapp/internal/core/util"
	. "taskapp/pkg/tracing"
)

type TaskHandler struct {
	svc port.TaskService
}

func NewTaskHandler(svc port.TaskService) *TaskHandler {
	return &TaskHandler{
		svc: svc,
	}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.task.CreateTask", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	params, err := util.ParamsToMap[request.TaskRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	task, err := h.svc.Create(ctx, params.Name, params.UserID, params.Priority.String())

	if err != nil {
		AddSpanError(span, err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, response.TaskResponse{
		UUID:      task.UUID,
		Name:      task.Name,
		UserID:    task.UserUUID,
		Priority:  task.Priority,
		CreatedAt: task.CreatedAt,
	})
}

func (h *TaskHandler) GetTaskByName(c *gin.Context) {
	ctx := c.Request.Context()

	task, err := h.svc.GetByName(ctx, c.Param("name"))

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.TaskResponse{
		UUID:      task.UUID,
		Name:      task.Name,
		UserID:    task.UserUUID,
		Priority:  task.Priority,
		CreatedAt: task.CreatedAt,
	})
}

func (h *TaskHandler) GetUserTasks(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.svc.ListByUser(ctx, c.Param("userId"))

	if err != nil {
		SendDomainError(c, err)
		return
	}

	data := make([]response.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		data = append(data, response.TaskResponse{
			UUID:      task.UUID,
			Name:      task.Name,
			UserID:    task.UserUUID,
			Priority:  task.Priority,
			CreatedAt: task.CreatedAt,
		})
	}

	SendSuccess(c, http.StatusOK, data)
}

func (h *TaskHandler) ResetTasks(c *gin.Context) {
	h.svc.Reset(c.Request.Context())

	SendSuccess(c, http.StatusOK, nil, "Task data reset")
}
