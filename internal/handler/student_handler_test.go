package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skill-match-api/internal/domain"
	"skill-match-api/internal/dto"
	"skill-match-api/internal/response"
)

// MockStudentService is a mock implementation of StudentService
type MockStudentService struct {
	CreateFunc func(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	ListFunc   func(ctx context.Context) ([]domain.Student, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Student, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error
}

func (m *MockStudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockStudentService) Get(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStudentService) List(ctx context.Context) ([]domain.Student, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockStudentService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Student, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req, actorID, actorRole)
	}
	return nil, nil
}

func (m *MockStudentService) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, actorID, actorRole)
	}
	return nil
}

// sessionFor injects an authenticated session the way the auth middleware
// would after verifying a token.
func sessionFor(userID uuid.UUID, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func setupStudentRouter(svc *MockStudentService, actorID uuid.UUID, role domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStudentHandler(svc)
	authed := sessionFor(actorID, role)
	r.GET("/api/students", h.List)
	r.GET("/api/students/:id", h.Get)
	r.POST("/api/students", authed, h.Create)
	r.PUT("/api/students/:id", authed, h.Update)
	r.DELETE("/api/students/:id", authed, h.Delete)
	return r
}

func TestStudentHandler_Create(t *testing.T) {
	actor := uuid.New()

	t.Run("returns the created record", func(t *testing.T) {
		svc := &MockStudentService{
			CreateFunc: func(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error) {
				return &domain.Student{ID: uuid.New(), University: req.University, Year: req.Year, Availability: req.Availability}, nil
			},
		}
		r := setupStudentRouter(svc, actor, domain.RoleStudent)

		payload, _ := json.Marshal(dto.CreateStudentRequest{
			University:   "KAIST",
			Year:         "3",
			Availability: "part-time",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}
		var student domain.Student
		if err := json.Unmarshal(w.Body.Bytes(), &student); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if student.University != "KAIST" {
			t.Errorf("Expected university KAIST, got %s", student.University)
		}
	})

	t.Run("missing required field is a 400 and never reaches the service", func(t *testing.T) {
		svc := &MockStudentService{
			CreateFunc: func(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error) {
				t.Error("Service must not be called on invalid payload")
				return nil, nil
			},
		}
		r := setupStudentRouter(svc, actor, domain.RoleStudent)

		payload := []byte(`{"university": "KAIST"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestStudentHandler_Get(t *testing.T) {
	actor := uuid.New()

	t.Run("unknown id maps to 404", func(t *testing.T) {
		svc := &MockStudentService{
			GetFunc: func(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
				return nil, response.NewAppError(response.ErrCodeNotFound, "Student not found", "")
			},
		}
		r := setupStudentRouter(svc, actor, domain.RoleStudent)

		req := httptest.NewRequest(http.MethodGet, "/api/students/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
		var body response.ErrorBody
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if body.Error != "Student not found" {
			t.Errorf("Unexpected error message: %s", body.Error)
		}
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		r := setupStudentRouter(&MockStudentService{}, actor, domain.RoleStudent)

		req := httptest.NewRequest(http.MethodGet, "/api/students/not-a-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestStudentHandler_Update(t *testing.T) {
	actor := uuid.New()

	t.Run("forwards the session identity to the service", func(t *testing.T) {
		var gotActor uuid.UUID
		var gotRole domain.Role
		svc := &MockStudentService{
			UpdateFunc: func(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Student, error) {
				gotActor = actorID
				gotRole = actorRole
				return &domain.Student{ID: id}, nil
			},
		}
		r := setupStudentRouter(svc, actor, domain.RoleAdmin)

		payload := []byte(`{"year": "4"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/students/"+uuid.NewString(), bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		if gotActor != actor || gotRole != domain.RoleAdmin {
			t.Errorf("Session identity not forwarded: %s %s", gotActor, gotRole)
		}
	})

	t.Run("ownership rejection maps to 403", func(t *testing.T) {
		svc := &MockStudentService{
			UpdateFunc: func(ctx context.Context, id uuid.UUID, req dto.UpdateStudentRequest, actorID uuid.UUID, actorRole domain.Role) (*domain.Student, error) {
				return nil, response.NewAppError(response.ErrCodeForbidden, "cannot modify another user's profile", "")
			},
		}
		r := setupStudentRouter(svc, actor, domain.RoleStudent)

		payload := []byte(`{"year": "4"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/students/"+uuid.NewString(), bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Expected status 403, got %d", w.Code)
		}
	})
}

func TestStudentHandler_Delete(t *testing.T) {
	actor := uuid.New()

	t.Run("confirms the delete", func(t *testing.T) {
		r := setupStudentRouter(&MockStudentService{}, actor, domain.RoleStudent)

		req := httptest.NewRequest(http.MethodDelete, "/api/students/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		var body response.DeleteBody
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if body.Message != "Student deleted" {
			t.Errorf("Unexpected message: %s", body.Message)
		}
	})

	t.Run("deleting twice yields 404", func(t *testing.T) {
		svc := &MockStudentService{
			DeleteFunc: func(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole domain.Role) error {
				return response.NewAppError(response.ErrCodeNotFound, "Student not found", "")
			},
		}
		r := setupStudentRouter(svc, actor, domain.RoleStudent)

		req := httptest.NewRequest(http.MethodDelete, "/api/students/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
