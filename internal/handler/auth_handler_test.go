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

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	RegisterFunc  func(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	LoginFunc     func(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	ListUsersFunc func(ctx context.Context) ([]domain.User, error)
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func setupAuthRouter(svc *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/users", h.ListUsers)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		mockService    func(*MockAuthService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful registration",
			body: dto.RegisterRequest{
				Name:     "Dana",
				Email:    "dana@example.com",
				Password: "hunter2",
				Role:     domain.RoleStudent,
			},
			mockService: func(m *MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
					return &domain.User{ID: userID, Name: req.Name, Email: req.Email, Role: req.Role}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var user domain.User
				if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if user.ID != userID {
					t.Errorf("Expected id %s, got %s", userID, user.ID)
				}
			},
		},
		{
			name: "missing email is rejected before the service runs",
			body: map[string]string{"name": "Dana", "password": "hunter2", "role": "student"},
			mockService: func(m *MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
					t.Error("Service must not be called on invalid payload")
					return nil, nil
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: dto.RegisterRequest{
				Name:     "Dana",
				Email:    "dana@example.com",
				Password: "hunter2",
				Role:     domain.RoleStudent,
			},
			mockService: func(m *MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
					return nil, response.NewAppError(response.ErrCodeDuplicateEmail, "email already registered", "")
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body response.ErrorBody
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if body.Error != "email already registered" {
					t.Errorf("Unexpected error message: %s", body.Error)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAuthService{}
			tt.mockService(svc)
			r := setupAuthRouter(svc)

			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockService    func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful login returns token",
			body: dto.LoginRequest{Email: "dana@example.com", Password: "hunter2"},
			mockService: func(m *MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
					return &dto.AuthResponse{Token: "signed", ID: uuid.New(), Role: domain.RoleStudent}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong credentials map to 401",
			body: dto.LoginRequest{Email: "dana@example.com", Password: "wrong"},
			mockService: func(m *MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
					return nil, response.NewAppError(response.ErrCodeInvalidCredentials, "invalid email or password", "")
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed payload",
			body:           map[string]string{"email": "not-an-email"},
			mockService:    func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAuthService{}
			tt.mockService(svc)
			r := setupAuthRouter(svc)

			payload, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthHandler_ListUsers(t *testing.T) {
	svc := &MockAuthService{
		ListUsersFunc: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: uuid.New(), Name: "Dana", Email: "dana@example.com", Role: domain.RoleStudent},
				{ID: uuid.New(), Name: "Acme", Email: "acme@example.com", Role: domain.RoleStartup},
			}, nil
		},
	}
	r := setupAuthRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var users []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &users); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if _, ok := u["password"]; ok {
			t.Error("Password hash must never be serialized")
		}
	}
}
