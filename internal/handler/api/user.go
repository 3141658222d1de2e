package api

import (
	"errors"
	"net/http"

	reqdto "scms/internal/handler/dto/request"
	resdto "scms/internal/handler/dto/response"
	"scms/internal/handler/httperr"
	"scms/internal/pkg/jwt"
	"scms/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc     usecase.UserUseCase
	tokens *jwt.Service
}

func NewUserHandler(uc usecase.UserUseCase, tokens *jwt.Service) *UserHandler {
	return &UserHandler{uc: uc, tokens: tokens}
}

// @Summary Register user
// @Description Upsert a user on sign-in and issue an access token; a repeated email is a no-op success
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.UpsertUserRequest true "User profile"
// @Success 200 {object} resdto.UpsertUserResponse
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.uc.Upsert(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Register user failed", nil)
		return
	}
	token, err := h.tokens.GenerateToken(result.User.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue token", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":    resdto.FromUserRM(result.User),
		"created": result.Created,
		"token":   token,
	})
}

// @Summary Get user role
// @Description Look up the current role for an email; unknown emails yield the base role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} resdto.RoleResponse
// @Router /users/{email}/role [get]
func (h *UserHandler) GetRole(c *gin.Context) {
	email := c.Param("email")
	role, err := h.uc.GetRole(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			// Matches role lookups for not-yet-registered users.
			c.JSON(http.StatusOK, resdto.RoleResponse{Role: "user"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get role", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.RoleResponse{Role: role})
}

// @Summary List members
// @Description List promoted members, optionally filtered by name (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name"
// @Success 200 {array} resdto.UserResponse
// @Router /members [get]
func (h *UserHandler) ListMembers(c *gin.Context) {
	rms, err := h.uc.ListMembers(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list members", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": resdto.FromUserList(rms)})
}

// @Summary Delete member
// @Description Remove a member account (admin only)
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /members/{id} [delete]
func (h *UserHandler) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.uc.DeleteMember(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Admin stats
// @Description Headline counts for the admin dashboard (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AdminStatsResponse
// @Router /admin-stats [get]
func (h *UserHandler) AdminStats(c *gin.Context) {
	rm, err := h.uc.AdminStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdminStatsRM(rm))
}
