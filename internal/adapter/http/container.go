package http

import (
	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
	"taskapp/internal/core/telemetry"
)

type Container struct {
	UserRepo port.UserRepository
	TaskRepo port.TaskRepository

	UserService port.UserService
	TaskService port.TaskService

	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

func NewContainer(userRepo port.UserRepository, taskRepo port.TaskRepository, metrics *telemetry.AppMetrics) *Container {
	userSvc := service.NewUserService(userRepo, taskRepo, metrics)
	taskSvc := service.NewTaskService(taskRepo, userRepo, metrics)

	userHandler := handler.NewUserHandler(userSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)

	return &Container{
		UserRepo:    userRepo,
		TaskRepo:    taskRepo,
		UserService: userSvc,
		TaskService: taskSvc,
		UserHandler: userHandler,
		TaskHandler: taskHandler,
	}
}
