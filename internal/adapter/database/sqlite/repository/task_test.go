package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/database/sqlite/repository"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	. "taskapp/pkg/test"
)

type TaskRepositoryTestSuite struct {
	suite.Suite
	Repo  port.TaskRepository
	Users port.UserRepository
	Owner domain.User
}

func (s *TaskRepositoryTestSuite) SetupTest() {
	db := InitTestDB()

	s.Repo = repository.NewTaskRepository(db)
	s.Users = repository.NewUserRepository(db)

	owner, err := s.Users.Create(context.Background(), domain.User{
		UUID:      uuid.New(),
		Email:     "owner@example.com",
		CreatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)

	s.Owner = owner
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(TaskRepositoryTestSuite))
}

func (s *TaskRepositoryTestSuite) newTask(name string, createdAt time.Time) domain.Task {
	return domain.Task{
		UUID:      uuid.New(),
		Name:      name,
		UserUUID:  s.Owner.UUID,
		Priority:  1,
		CreatedAt: createdAt,
	}
}

func (s *TaskRepositoryTestSuite) TestCreateAndGetFirstByName() {
	created, err := s.Repo.Create(context.Background(), s.newTask("clean kitchen", time.Now().UTC()))
	Expect(err).To(BeNil())

	found, err := s.Repo.GetFirstByName(context.Background(), "clean kitchen")
	Expect(err).To(BeNil())

	assert.Equal(s.T(), created.UUID, found.UUID)
	assert.Equal(s.T(), s.Owner.UUID, found.UserUUID)
	assert.Equal(s.T(), 1, found.Priority)
}

func (s *TaskRepositoryTestSuite) TestGetFirstByName_OldestOfDuplicates() {
	base := time.Now().UTC().Truncate(time.Second)

	first, err := s.Repo.Create(context.Background(), s.newTask("laundry", base))
	Expect(err).To(BeNil())

	_, err = s.Repo.Create(context.Background(), s.newTask("laundry", base.Add(time.Second)))
	Expect(err).To(BeNil())

	found, err := s.Repo.GetFirstByName(context.Background(), "laundry")

	Expect(err).To(BeNil())
	Expect(found.UUID).To(Equal(first.UUID))
}

func (s *TaskRepositoryTestSuite) TestGetFirstByName_NotFound() {
	_, err := s.Repo.GetFirstByName(context.Background(), "missing")

	assert.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *TaskRepositoryTestSuite) TestGetAllByUser() {
	other, err := s.Users.Create(context.Background(), domain.User{
		UUID:      uuid.New(),
		Email:     "other@example.com",
		CreatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)

	s.Repo.Create(context.Background(), s.newTask("mine", time.Now().UTC()))
	s.Repo.Create(context.Background(), domain.Task{
		UUID:      uuid.New(),
		Name:      "theirs",
		UserUUID:  other.UUID,
		Priority:  2,
		CreatedAt: time.Now().UTC(),
	})

	tasks, err := s.Repo.GetAllByUser(context.Background(), s.Owner.UUID.String())

	Expect(err).To(BeNil())
	Expect(tasks).To(HaveLen(1))
	Expect(tasks[0].Name).To(Equal("mine"))
}

func (s *TaskRepositoryTestSuite) TestGetAllByUser_Empty() {
	tasks, err := s.Repo.GetAllByUser(context.Background(), s.Owner.UUID.String())

	Expect(err).To(BeNil())
	Expect(tasks).To(BeEmpty())
}

func (s *TaskRepositoryTestSuite) TestDeleteAll() {
	s.Repo.Create(context.Background(), s.newTask("a", time.Now().UTC()))
	s.Repo.Create(context.Background(), s.newTask("b", time.Now().UTC()))

	count, err := s.Repo.DeleteAll(context.Background())

	Expect(err).To(BeNil())
	Expect(count).To(Equal(int64(2)))

	count, err = s.Repo.DeleteAll(context.Background())

	Expect(err).To(BeNil())
	Expect(count).To(Equal(int64(0)))
}
