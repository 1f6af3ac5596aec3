package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/database/memory"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	"taskapp/internal/core/service"
)

type TaskServiceTestSuite struct {
	suite.Suite
	Service  *service.TaskService
	Users    *service.UserService
	TaskRepo port.TaskRepository
	Owner    domain.User
}

func (s *TaskServiceTestSuite) SetupTest() {
	store := memory.NewStore()

	s.TaskRepo = store.Tasks()
	s.Service = service.NewTaskService(store.Tasks(), store.Users(), nil)
	s.Users = service.NewUserService(store.Users(), store.Tasks(), nil)

	owner, err := s.Users.Register(context.Background(), "owner@example.com")
	s.Require().NoError(err)

	s.Owner = owner
}

func TestTaskServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(TaskServiceTestSuite))
}

func (s *TaskServiceTestSuite) TestCreate_Success() {
	task, err := s.Service.Create(context.Background(), "clean kitchen", s.Owner.UUID.String(), "3")

	Expect(err).To(BeNil())
	Expect(task.Name).To(Equal("clean kitchen"))
	Expect(task.Priority).To(Equal(3))
	Expect(task.UserUUID).To(Equal(s.Owner.UUID))

	assert.NotEmpty(s.T(), task.UUID)
	assert.False(s.T(), task.CreatedAt.IsZero())
}

func (s *TaskServiceTestSuite) TestCreate_PriorityZero() {
	_, err := s.Service.Create(context.Background(), "clean kitchen", s.Owner.UUID.String(), "0")

	assert.ErrorIs(s.T(), err, domain.ErrInvalidInput)
}

func (s *TaskServiceTestSuite) TestCreate_PriorityNegative() {
	_, err := s.Service.Create(context.Background(), "clean kitchen", s.Owner.UUID.String(), "-1")

	assert.ErrorIs(s.T(), err, domain.ErrInvalidInput)
}

func (s *TaskServiceTestSuite) TestCreate_PriorityNotANumber() {
	_, err := s.Service.Create(context.Background(), "clean kitchen", s.Owner.UUID.String(), "high")

	assert.ErrorIs(s.T(), err, domain.ErrInvalidInput)
}

// Priority coercion runs before the other field checks, so a bad priority
// wins even when the name is also missing.
func (s *TaskServiceTestSuite) TestCreate_BadPriorityCheckedFirst() {
	_, err := s.Service.Create(context.Background(), "", "", "zero")

	assert.ErrorIs(s.T(), err, domain.ErrInvalidInput)
	assert.Contains(s.T(), err.Error(), "priority")
}

func (s *TaskServiceTestSuite) TestCreate_EmptyName() {
	_, err := s.Service.Create(context.Background(), "", s.Owner.UUID.String(), "1")

	assert.ErrorIs(s.T(), err, domain.ErrInvalidInput)
}

func (s *TaskServiceTestSuite) TestCreate_EmptyUserID() {
	_, err := s.Service.Create(context.Background(), "clean kitchen", "", "1")

	assert.ErrorIs(s.T(), err, domain.ErrInvalidInput)
}

func (s *TaskServiceTestSuite) TestCreate_MalformedUserID() {
	_, err := s.Service.Create(context.Background(), "clean kitchen", "not-a-uuid", "1")

	assert.ErrorIs(s.T(), err, domain.ErrInvalidFormat)
}

func (s *TaskServiceTestSuite) TestCreate_UnknownUser() {
	_, err := s.Service.Create(context.Background(), "clean kitchen", uuid.New().String(), "1")

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *TaskServiceTestSuite) TestGetByName_Success() {
	created, _ := s.Service.Create(context.Background(), "walk dog", s.Owner.UUID.String(), "1")

	task, err := s.Service.GetByName(context.Background(), "walk dog")

	Expect(err).To(BeNil())
	Expect(task.UUID).To(Equal(created.UUID))
}

// Duplicate names are allowed; lookup always returns the oldest one.
func (s *TaskServiceTestSuite) TestGetByName_FirstOfDuplicates() {
	first, _ := s.Service.Create(context.Background(), "laundry", s.Owner.UUID.String(), "1")
	s.Service.Create(context.Background(), "laundry", s.Owner.UUID.String(), "2")

	for i := 0; i < 3; i++ {
		task, err := s.Service.GetByName(context.Background(), "laundry")

		Expect(err).To(BeNil())
		Expect(task.UUID).To(Equal(first.UUID))
		Expect(task.Priority).To(Equal(1))
	}
}

func (s *TaskServiceTestSuite) TestGetByName_NotFound() {
	_, err := s.Service.GetByName(context.Background(), "missing")

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *TaskServiceTestSuite) TestListByUser_OnlyOwnTasks() {
	other, err := s.Users.Register(context.Background(), "other@example.com")
	s.Require().NoError(err)

	s.Service.Create(context.Background(), "mine", s.Owner.UUID.String(), "1")
	s.Service.Create(context.Background(), "theirs", other.UUID.String(), "1")

	tasks, err := s.Service.ListByUser(context.Background(), s.Owner.UUID.String())

	Expect(err).To(BeNil())
	Expect(tasks).To(HaveLen(1))
	Expect(tasks[0].Name).To(Equal("mine"))
}

func (s *TaskServiceTestSuite) TestListByUser_EmptyForUserWithoutTasks() {
	tasks, err := s.Service.ListByUser(context.Background(), s.Owner.UUID.String())

	Expect(err).To(BeNil())
	Expect(tasks).To(BeEmpty())
}

func (s *TaskServiceTestSuite) TestListByUser_MalformedID() {
	_, err := s.Service.ListByUser(context.Background(), "not-a-uuid")

	assert.ErrorIs(s.T(), err, domain.ErrInvalidFormat)
}

func (s *TaskServiceTestSuite) TestListByUser_UnknownUser() {
	_, err := s.Service.ListByUser(context.Background(), uuid.New().String())

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *TaskServiceTestSuite) TestReset_EmptiesStore() {
	s.Service.Create(context.Background(), "clean kitchen", s.Owner.UUID.String(), "1")
	s.Service.Create(context.Background(), "walk dog", s.Owner.UUID.String(), "2")

	s.Service.Reset(context.Background())

	tasks, err := s.Service.ListByUser(context.Background(), s.Owner.UUID.String())

	Expect(err).To(BeNil())
	Expect(tasks).To(BeEmpty())
}

func (s *TaskServiceTestSuite) TestReset_Idempotent() {
	s.Service.Create(context.Background(), "clean kitchen", s.Owner.UUID.String(), "1")

	s.Service.Reset(context.Background())
	s.Service.Reset(context.Background())

	tasks, err := s.Service.ListByUser(context.Background(), s.Owner.UUID.String())

	Expect(err).To(BeNil())
	Expect(tasks).To(BeEmpty())
}
