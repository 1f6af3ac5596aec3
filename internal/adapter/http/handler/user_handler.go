package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	. "taskapp/internal/adapter/http/helper"
	. "taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/model/response"
	"taskapp/internal/core/port"
)

type UserHandler struct {
	svc port.UserService
}

func NewUserHandler(svc port.UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.UserRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	savedUser, err := h.svc.Register(ctx, params.Email)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, response.UserResponse{
		UUID:      savedUser.UUID,
		Email:     savedUser.Email,
		CreatedAt: savedUser.CreatedAt,
	})
}

// GetUserByEmail returns the restricted profile projection, not the full
// record.
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	ctx := c.Request.Context()

	profile, err := h.svc.GetProfileByEmail(ctx, c.Param("email"))

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.ProfileResponse{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		CreatedAt: profile.CreatedAt,
	})
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.svc.ListWithTasks(ctx)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	data := make([]response.UserResponse, 0, len(users))

	for _, user := range users {
		item := response.UserResponse{
			UUID:      user.UUID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			Tasks:     make([]response.TaskResponse, 0, len(user.Tasks)),
		}

		for _, task := range user.Tasks {
			item.Tasks = append(item.Tasks, response.TaskResponse{
				UUID:      task.UUID,
				Name:      task.Name,
				UserID:    task.UserUUID,
				Priority:  task.Priority,
				CreatedAt: task.CreatedAt,
			})
		}

		data = append(data, item)
	}

	SendSuccess(c, http.StatusOK, data)
}

func (h *UserHandler) ResetUsers(c *gin.Context) {
	h.svc.Reset(c.Request.Context())

	SendSuccess(c, http.StatusOK, nil, "User data reset")
}
