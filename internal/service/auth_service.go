package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dtei-informatika/kegiatan-app/internal/dto"
	"github.com/dtei-informatika/kegiatan-app/internal/models"
	"github.com/dtei-informatika/kegiatan-app/internal/observability"
	"github.com/dtei-informatika/kegiatan-app/internal/repository"
)

var (
	// ErrValidation indicates missing or malformed input; the front end
	// re-prompts locally.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials indicates no stored user matches the supplied
	// username and password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidSession indicates the session token failed verification.
	ErrInvalidSession = errors.New("invalid session")
	// ErrUsernameTaken indicates the requested username already exists.
	ErrUsernameTaken = fmt.Errorf("username already registered: %w", repository.ErrDuplicateKey)
	// ErrExternalIDTaken indicates the student/staff number already exists.
	ErrExternalIDTaken = fmt.Errorf("external id already registered: %w", repository.ErrDuplicateKey)
)

// SessionVerifier is the gate mutating services consult before touching the
// store.
type SessionVerifier interface {
	Verify(session dto.Session) error
}

// AuthService handles login and signup. Authentication fails closed: a
// session is returned only when exactly the supplied username and password
// match a stored row by string equality. The plaintext comparison reproduces
// the legacy dataset's contract; there is no hashing, lockout or rate limit.
type AuthService interface {
	SessionVerifier
	Authenticate(ctx context.Context, req dto.LoginRequest) (dto.Session, error)
	Register(ctx context.Context, req dto.SignupRequest) (int, error)
}

type authService struct {
	users     repository.UserRepository
	validator *validator.Validate
	secret    []byte
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewAuthService constructs the session/auth gate.
func NewAuthService(users repository.UserRepository, validator *validator.Validate, secret string, logger zerolog.Logger) AuthService {
	return &authService{
		users:     users,
		validator: validator,
		secret:    []byte(secret),
		logger:    logger.With().Str("component", "auth_service").Logger(),
		tracer:    otel.Tracer("github.com/dtei-informatika/kegiatan-app/internal/service/auth"),
		now:       time.Now,
	}
}

func (s *authService) Authenticate(ctx context.Context, req dto.LoginRequest) (dto.Session, error) {
	ctx, span := s.tracer.Start(ctx, "auth.authenticate")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		return dto.Session{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.users.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			observability.AuthAttempts().WithLabelValues("failure").Inc()
			s.logger.Warn().Str("username", req.Username).Msg("login rejected")
			span.SetStatus(codes.Error, "credentials rejected")
			return dto.Session{}, ErrInvalidCredentials
		}
		span.RecordError(err)
		return dto.Session{}, err
	}

	session, err := s.mintSession(user)
	if err != nil {
		span.RecordError(err)
		return dto.Session{}, err
	}

	observability.AuthAttempts().WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Int("user_id", user.ID).Msg("login accepted")
	return session, nil
}

// Verify checks the session token signature and shape. Anything short of a
// fully valid token is rejected.
func (s *authService) Verify(session dto.Session) error {
	if session.Token == "" {
		return ErrInvalidSession
	}

	token, err := jwt.Parse(session.Token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidSession
	}
	return nil
}

func (s *authService) Register(ctx context.Context, req dto.SignupRequest) (int, error) {
	ctx, span := s.tracer.Start(ctx, "auth.register")
	defer span.End()

	req.Name = strings.TrimSpace(req.Name)
	req.ExternalID = strings.TrimSpace(req.ExternalID)
	req.Username = strings.TrimSpace(req.Username)

	if err := s.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	taken, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	if taken {
		span.SetStatus(codes.Error, "duplicate username")
		return 0, ErrUsernameTaken
	}

	taken, err = s.users.ExternalIDExists(ctx, req.ExternalID)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	if taken {
		span.SetStatus(codes.Error, "duplicate external id")
		return 0, ErrExternalIDTaken
	}

	maxID, err := s.users.MaxID(ctx)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	roleID := req.RoleID
	user := models.User{
		ID:         maxID + 1,
		Name:       req.Name,
		RoleID:     &roleID,
		ExternalID: req.ExternalID,
		Username:   req.Username,
		Password:   req.Password,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		span.RecordError(err)
		return 0, err
	}

	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user.ID, nil
}

func (s *authService) mintSession(user models.User) (dto.Session, error) {
	issuedAt := s.now()
	sessionID := uuid.NewString()

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"sid":  sessionID,
		"name": user.Name,
		"iat":  issuedAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return dto.Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return dto.Session{
		ID:       sessionID,
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Token:    token,
		IssuedAt: issuedAt,
	}, nil
}
