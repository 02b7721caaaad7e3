package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"backoffice/internal/service"
)

// AdminHandler mantiene dependencias para los endpoints administrativos.
type AdminHandler struct {
	logger   *zap.Logger
	adminSvc *service.AdminService
}

// NewAdminHandler crea una instancia de AdminHandler con dependencias necesarias.
func NewAdminHandler(logger *zap.Logger, adminSvc *service.AdminService) *AdminHandler {
	return &AdminHandler{
		logger:   logger,
		adminSvc: adminSvc,
	}
}

// ListUsers maneja GET /admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminSvc.ListUsers(c.Request.Context(), CallerSession(c))
	if err != nil {
		h.respondError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListOrganizations maneja GET /admin/organizations.
func (h *AdminHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.adminSvc.ListOrganizations(c.Request.Context(), CallerSession(c))
	if err != nil {
		h.respondError(c, err, "list organizations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

// CreateOrganization maneja POST /admin/organizations.
func (h *AdminHandler) CreateOrganization(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create organization request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	org, err := h.adminSvc.CreateOrganization(c.Request.Context(), CallerSession(c), service.CreateOrganizationInput{
		Name: req.Name,
	})
	if err != nil {
		h.respondError(c, err, "create organization")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"organization": org})
}

// CreateUser maneja POST /admin/users.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req struct {
		Name           string `json:"name" binding:"required"`
		Email          string `json:"email" binding:"required,email"`
		Password       string `json:"password" binding:"required,min=8"`
		Role           string `json:"role" binding:"required,oneof=admin user"`
		OrganizationID string `json:"organization_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.adminSvc.CreateUser(c.Request.Context(), CallerSession(c), service.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		h.respondError(c, err, "create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// InviteUser maneja POST /admin/invitations.
func (h *AdminHandler) InviteUser(c *gin.Context) {
	var req struct {
		Email          string `json:"email" binding:"required,email"`
		OrganizationID string `json:"organization_id" binding:"required"`
		Role           string `json:"role" binding:"required,oneof=admin user"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid invite user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.adminSvc.InviteUser(c.Request.Context(), CallerSession(c), service.InviteUserInput{
		Email:          req.Email,
		OrganizationID: req.OrganizationID,
		Role:           req.Role,
	})
	if err != nil {
		h.respondError(c, err, "invite user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "email": result.Email})
}

// RemoveUser maneja DELETE /admin/users/:id.
func (h *AdminHandler) RemoveUser(c *gin.Context) {
	userID := c.Param("id")
	if err := h.adminSvc.RemoveUser(c.Request.Context(), CallerSession(c), userID); err != nil {
		h.respondError(c, err, "remove user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LoginReport maneja GET /admin/reports/logins.
func (h *AdminHandler) LoginReport(c *gin.Context) {
	stats, err := h.adminSvc.UniqueLoginsPerDay(c.Request.Context(), CallerSession(c))
	if err != nil {
		h.respondError(c, err, "login report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *AdminHandler) respondError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, service.ErrOrgNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrOrgNameTaken),
		errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSelfRemoval):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
