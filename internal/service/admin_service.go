package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/domain"
	"backoffice/internal/email"
	"backoffice/internal/repository"
)

// Session es la identidad resuelta del llamador, pasada explicitamente a cada
// operacion del panel administrativo.
type Session struct {
	UserID string
	Role   string
}

// IsAdmin indica si la sesion existe y tiene rol admin.
func (s Session) IsAdmin() bool {
	return s.UserID != "" && s.Role == domain.RoleAdmin
}

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrOrgNotFound  = errors.New("organization not found")
	ErrUserNotFound = errors.New("user not found")
	ErrOrgNameTaken = errors.New("organization name already exists")
	ErrEmailTaken   = errors.New("email already exists")
	ErrSelfRemoval  = errors.New("cannot remove own account")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	inviteTokenLength = 32
	inviteTTL         = 7 * 24 * time.Hour
	loginReportDays   = 30
	minPasswordLength = 8
)

// AdminService coordina las operaciones privilegiadas del back-office.
type AdminService struct {
	logger        *zap.Logger
	users         repository.UserRepository
	orgs          repository.OrganizationRepository
	accounts      repository.AccountRepository
	verifications repository.VerificationRepository
	memberships   repository.MembershipRepository
	loginEvents   repository.LoginEventRepository
	emailSender   email.Sender
	appBaseURL    string
}

func NewAdminService(
	logger *zap.Logger,
	users repository.UserRepository,
	orgs repository.OrganizationRepository,
	accounts repository.AccountRepository,
	verifications repository.VerificationRepository,
	memberships repository.MembershipRepository,
	loginEvents repository.LoginEventRepository,
	emailSender email.Sender,
	appBaseURL string,
) *AdminService {
	return &AdminService{
		logger:        logger,
		users:         users,
		orgs:          orgs,
		accounts:      accounts,
		verifications: verifications,
		memberships:   memberships,
		loginEvents:   loginEvents,
		emailSender:   emailSender,
		appBaseURL:    strings.TrimRight(appBaseURL, "/"),
	}
}

// ListUsers devuelve todos los usuarios con el resumen de su organizacion.
func (s *AdminService) ListUsers(ctx context.Context, session Session) ([]domain.UserWithOrganization, error) {
	if !session.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return s.users.ListWithOrganization(ctx)
}

// ListOrganizations devuelve todas las organizaciones.
func (s *AdminService) ListOrganizations(ctx context.Context, session Session) ([]domain.Organization, error) {
	if !session.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return s.orgs.List(ctx)
}

type CreateOrganizationInput struct {
	Name string
}

// CreateOrganization crea una organizacion con nombre unico.
func (s *AdminService) CreateOrganization(ctx context.Context, session Session, input CreateOrganizationInput) (domain.Organization, error) {
	if !session.IsAdmin() {
		return domain.Organization{}, ErrUnauthorized
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Organization{}, ErrInvalidInput
	}

	_, err := s.orgs.GetByName(ctx, name)
	if err == nil {
		return domain.Organization{}, ErrOrgNameTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Organization{}, err
	}

	org := domain.Organization{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.orgs.Create(ctx, org); err != nil {
		return domain.Organization{}, err
	}

	return org, nil
}

type CreateUserInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	OrganizationID string
}

// CreateUser crea un usuario verificado junto con su cuenta credential.
// El insert del usuario precede al de la cuenta; si el segundo falla esta capa
// no revierte el primero.
func (s *AdminService) CreateUser(ctx context.Context, session Session, input CreateUserInput) (domain.User, error) {
	if !session.IsAdmin() {
		return domain.User{}, ErrUnauthorized
	}

	name := strings.TrimSpace(input.Name)
	emailAddr := normalizeEmail(input.Email)
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if name == "" || emailAddr == "" || !isValidRole(role) {
		return domain.User{}, ErrInvalidInput
	}
	if len(input.Password) < minPasswordLength {
		return domain.User{}, ErrInvalidInput
	}

	if _, err := s.orgs.GetByID(ctx, input.OrganizationID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrOrgNotFound
		}
		return domain.User{}, err
	}

	_, err := s.users.GetByEmail(ctx, emailAddr)
	if err == nil {
		return domain.User{}, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          emailAddr,
		EmailVerified:  true,
		OrganizationID: input.OrganizationID,
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	account := domain.Account{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		ProviderID:   domain.ProviderCredential,
		AccountID:    user.ID,
		PasswordHash: string(hashBytes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

type InviteUserInput struct {
	Email          string
	OrganizationID string
	Role           string
}

type InviteResult struct {
	Email string `json:"email"`
}

// InviteUser persiste una invitacion de 7 dias y envia el correo de aceptacion.
// Un fallo en el envio no revierte la invitacion ya persistida.
func (s *AdminService) InviteUser(ctx context.Context, session Session, input InviteUserInput) (InviteResult, error) {
	if !session.IsAdmin() {
		return InviteResult{}, ErrUnauthorized
	}

	emailAddr := normalizeEmail(input.Email)
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if emailAddr == "" || !isValidRole(role) {
		return InviteResult{}, ErrInvalidInput
	}

	if _, err := s.orgs.GetByID(ctx, input.OrganizationID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return InviteResult{}, ErrOrgNotFound
		}
		return InviteResult{}, err
	}

	_, err := s.users.GetByEmail(ctx, emailAddr)
	if err == nil {
		return InviteResult{}, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return InviteResult{}, err
	}

	token, err := generateInviteToken(inviteTokenLength)
	if err != nil {
		return InviteResult{}, err
	}

	payload, err := json.Marshal(domain.InvitePayload{
		Token:          token,
		OrganizationID: input.OrganizationID,
		Role:           role,
	})
	if err != nil {
		return InviteResult{}, err
	}

	now := time.Now().UTC()
	verification := domain.Verification{
		ID:         uuid.NewString(),
		Identifier: emailAddr,
		Value:      string(payload),
		ExpiresAt:  now.Add(inviteTTL),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.verifications.Create(ctx, verification); err != nil {
		return InviteResult{}, err
	}

	acceptURL := fmt.Sprintf("%s/auth/register?token=%s&email=%s",
		s.appBaseURL, token, url.QueryEscape(emailAddr))
	if s.emailSender == nil {
		return InviteResult{}, errors.New("email sender not configured")
	}
	if err := s.emailSender.SendInvitation(ctx, emailAddr, acceptURL, verification.ExpiresAt); err != nil {
		if s.logger != nil {
			s.logger.Warn("send invitation failed", zap.Error(err), zap.String("email", emailAddr))
		}
		return InviteResult{}, err
	}

	return InviteResult{Email: emailAddr}, nil
}

// RemoveUser elimina membresias y cuentas dependientes antes que el usuario.
func (s *AdminService) RemoveUser(ctx context.Context, session Session, userID string) error {
	if !session.IsAdmin() {
		return ErrUnauthorized
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	if userID == session.UserID {
		return ErrSelfRemoval
	}

	if err := s.memberships.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.accounts.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

// UniqueLoginsPerDay devuelve logins unicos por dia, mas reciente primero.
func (s *AdminService) UniqueLoginsPerDay(ctx context.Context, session Session) ([]domain.LoginStat, error) {
	if !session.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return s.loginEvents.UniqueLoginsPerDay(ctx, loginReportDays)
}

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func generateInviteToken(length int) (string, error) {
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			return "", err
		}
		buf[i] = tokenAlphabet[n.Int64()]
	}
	return string(buf), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidRole(role string) bool {
	return role == domain.RoleAdmin || role == domain.RoleUser
}
