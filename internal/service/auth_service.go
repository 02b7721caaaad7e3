package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/domain"
	"backoffice/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("rate limited")
)

const loginWindow = 10 * time.Minute

// AuthService resuelve logins por password y registra eventos de login.
type AuthService struct {
	logger      *zap.Logger
	users       repository.UserRepository
	accounts    repository.AccountRepository
	loginEvents repository.LoginEventRepository
	limiter     LoginRateLimiter
}

func NewAuthService(
	logger *zap.Logger,
	users repository.UserRepository,
	accounts repository.AccountRepository,
	loginEvents repository.LoginEventRepository,
	limiter LoginRateLimiter,
) *AuthService {
	if limiter == nil {
		limiter = NewLoginRateLimiter(loginWindow, 10)
	}
	return &AuthService{
		logger:      logger,
		users:       users,
		accounts:    accounts,
		loginEvents: loginEvents,
		limiter:     limiter,
	}
}

// Login verifica email y password contra la cuenta credential del usuario y
// registra un evento de login exitoso.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (domain.User, error) {
	if s.users == nil || s.accounts == nil {
		return domain.User{}, errors.New("auth service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	if s.limiter != nil && !s.limiter.Allow(emailAddr) {
		return domain.User{}, ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	account, err := s.accounts.GetByUserAndProvider(ctx, user.ID, domain.ProviderCredential)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if account.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	if s.loginEvents != nil {
		event := domain.LoginEvent{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.loginEvents.Create(ctx, event); err != nil && s.logger != nil {
			s.logger.Warn("record login event failed", zap.Error(err), zap.String("user_id", user.ID))
		}
	}

	return user, nil
}

// LoginRateLimiter limita la frecuencia de intentos de login por clave.
type LoginRateLimiter interface {
	Allow(key string) bool
}

type loginRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewLoginRateLimiter crea un rate limiter en memoria.
func NewLoginRateLimiter(window time.Duration, max int) LoginRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &loginRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *loginRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}
