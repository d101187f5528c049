package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
	"skill-match-api/internal/dto"
	"skill-match-api/internal/metrics"
	"skill-match-api/internal/repository"
	"skill-match-api/internal/response"
)

// AuthService defines the interface for account registration and login
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type authServiceImpl struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates an account with a bcrypt-hashed password. The role is
// fixed at creation.
func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if !domain.ValidRole(req.Role) {
		return nil, response.NewAppError(response.ErrCodeValidation, "role must be one of student, startup, admin", "")
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, response.NewAppError(response.ErrCodeDuplicateEmail, "email already registered", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Failed to check existing email", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two registrations can race past the email check; the unique index
		// decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewAppError(response.ErrCodeDuplicateEmail, "email already registered", "")
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	metrics.RecordUserRegistration()
	return user, nil
}

// Login verifies the password hash and issues a signed bearer token. A
// missing account and a wrong password are indistinguishable to callers.
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInvalidCredentials, "invalid email or password", "")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, response.NewAppError(response.ErrCodeInvalidCredentials, "invalid email or password", "")
	}

	token, err := s.signToken(user)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, err
	}

	metrics.RecordUserLogin()
	return &dto.AuthResponse{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// ListUsers returns every account. The whole directory is readable so
// clients can resolve ids to display names.
func (s *authServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *authServiceImpl) signToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
