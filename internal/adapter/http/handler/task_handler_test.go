package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"taskapp/internal/adapter/database/memory"
	adapter "taskapp/internal/adapter/http"
	"taskapp/internal/adapter/http/routes"
)

type TaskHandlerTestSuite struct {
	suite.Suite
	Router  *gin.Engine
	OwnerID string
}

func (s *TaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	container := adapter.NewContainer(store.Users(), store.Tasks(), nil)

	s.Router = routes.SetupRouterForTests(routes.HandlersConfig{
		UserHandler: container.UserHandler,
		TaskHandler: container.TaskHandler,
	})

	w := s.performJSON("POST", "/users", gin.H{"email": "owner@example.com"})
	s.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	s.OwnerID = created.Data.ID
}

func TestTaskHandlerTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(TaskHandlerTestSuite))
}

func (s *TaskHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer

	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

func (s *TaskHandlerTestSuite) TestCreateTask_NumericPriority() {
	w := s.performJSON("POST", "/tasks", gin.H{
		"name":     "clean kitchen",
		"userId":   s.OwnerID,
		"priority": 3,
	})

	Expect(w.Code).To(Equal(http.StatusCreated))

	var body struct {
		Data struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			UserID   string `json:"user_id"`
			Priority int    `json:"priority"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	assert.NotEmpty(s.T(), body.Data.ID)
	assert.Equal(s.T(), "clean kitchen", body.Data.Name)
	assert.Equal(s.T(), s.OwnerID, body.Data.UserID)
	assert.Equal(s.T(), 3, body.Data.Priority)
}

// Priority may arrive as a numeric string; the payload contract is loose on
// purpose.
func (s *TaskHandlerTestSuite) TestCreateTask_StringPriority() {
	w := s.performJSON("POST", "/tasks", gin.H{
		"name":     "walk dog",
		"userId":   s.OwnerID,
		"priority": "2",
	})

	Expect(w.Code).To(Equal(http.StatusCreated))

	var body struct {
		Data struct {
			Priority int `json:"priority"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(s.T(), 2, body.Data.Priority)
}

func (s *TaskHandlerTestSuite) TestCreateTask_NonNumericPriority() {
	w := s.performJSON("POST", "/tasks", gin.H{
		"name":     "walk dog",
		"userId":   s.OwnerID,
		"priority": "high",
	})

	Expect(w.Code).To(Equal(http.StatusBadRequest))
}

func (s *TaskHandlerTestSuite) TestCreateTask_ZeroPriority() {
	w := s.performJSON("POST", "/tasks", gin.H{
		"name":     "walk dog",
		"userId":   s.OwnerID,
		"priority": 0,
	})

	Expect(w.Code).To(Equal(http.StatusBadRequest))
}

func (s *TaskHandlerTestSuite) TestCreateTask_MissingName() {
	w := s.performJSON("POST", "/tasks", gin.H{
		"userId":   s.OwnerID,
		"priority": 1,
	})

	Expect(w.Code).To(Equal(http.StatusBadRequest))
}

func (s *TaskHandlerTestSuite) TestCreateTask_MalformedUserID() {
	w := s.performJSON("POST", "/tasks", gin.H{
		"name":     "walk dog",
		"userId":   "not-a-uuid",
		"priority": 1,
	})

	Expect(w.Code).To(Equal(http.StatusBadRequest))
}

func (s *TaskHandlerTestSuite) TestCreateTask_UnknownUser() {
	w := s.performJSON("POST", "/tasks", gin.H{
		"name":     "walk dog",
		"userId":   uuid.New().String(),
		"priority": 1,
	})

	Expect(w.Code).To(Equal(http.StatusNotFound))
}

func (s *TaskHandlerTestSuite) TestGetTaskByName_Success() {
	s.performJSON("POST", "/tasks", gin.H{
		"name":     "laundry",
		"userId":   s.OwnerID,
		"priority": 1,
	})

	w := s.performJSON("GET", "/tasks/laundry", nil)

	Expect(w.Code).To(Equal(http.StatusOK))

	var body struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(s.T(), "laundry", body.Data.Name)
}

func (s *TaskHandlerTestSuite) TestGetTaskByName_FirstOfDuplicates() {
	s.performJSON("POST", "/tasks", gin.H{"name": "laundry", "userId": s.OwnerID, "priority": 1})
	s.performJSON("POST", "/tasks", gin.H{"name": "laundry", "userId": s.OwnerID, "priority": 2})

	w := s.performJSON("GET", "/tasks/laundry", nil)

	Expect(w.Code).To(Equal(http.StatusOK))

	var body struct {
		Data struct {
			Priority int `json:"priority"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(s.T(), 1, body.Data.Priority)
}

func (s *TaskHandlerTestSuite) TestGetTaskByName_NotFound() {
	w := s.performJSON("GET", "/tasks/missing", nil)

	Expect(w.Code).To(Equal(http.StatusNotFound))
}

func (s *TaskHandlerTestSuite) TestGetUserTasks_Success() {
	s.performJSON("POST", "/tasks", gin.H{"name": "a", "userId": s.OwnerID, "priority": 1})
	s.performJSON("POST", "/tasks", gin.H{"name": "b", "userId": s.OwnerID, "priority": 2})

	w := s.performJSON("GET", "/tasks/user/"+s.OwnerID, nil)

	Expect(w.Code).To(Equal(http.StatusOK))

	var body struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}

	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	assert.Len(s.T(), body.Data, 2)
}

func (s *TaskHandlerTestSuite) TestGetUserTasks_MalformedID() {
	w := s.performJSON("GET", "/tasks/user/not-a-uuid", nil)

	Expect(w.Code).To(Equal(http.StatusBadRequest))
}

func (s *TaskHandlerTestSuite) TestGetUserTasks_UnknownUser() {
	w := s.performJSON("GET", "/tasks/user/"+uuid.New().String(), nil)

	Expect(w.Code).To(Equal(http.StatusNotFound))
}

func (s *TaskHandlerTestSuite) TestResetTasks() {
	s.performJSON("POST", "/tasks", gin.H{"name": "a", "userId": s.OwnerID, "priority": 1})

	w := s.performJSON("DELETE", "/tasks/reset", nil)

	Expect(w.Code).To(Equal(http.StatusOK))
	assert.Contains(s.T(), w.Body.String(), "Task data reset")

	w = s.performJSON("GET", "/tasks/a", nil)
	Expect(w.Code).To(Equal(http.StatusNotFound))
}

func (s *TaskHandlerTestSuite) TestResetTasks_Idempotent() {
	w := s.performJSON("DELETE", "/tasks/reset", nil)
	Expect(w.Code).To(Equal(http.StatusOK))

	w = s.performJSON("DELETE", "/tasks/reset", nil)
	Expect(w.Code).To(Equal(http.StatusOK))
}
