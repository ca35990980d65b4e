package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRoles(domain.RoleAdmin))
	{
		admin.GET("/stats", handler.GetStats)
		admin.GET("/users", handler.ListUsers)
		admin.POST("/users/:id/ban", handler.Ban)
		admin.POST("/users/:id/unban", handler.Unban)
		admin.DELETE("/users/:id", handler.DeleteUser)
	}
}

// GetStats godoc
// @Summary      Portal statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Portal statistics", stats)
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        role       query     string  false  "Role filter"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	result, err := h.adminUC.ListUsers(c.Request.Context(), middleware.PrincipalFrom(c), c.Query("role"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User list", result)
}

// Ban godoc
// @Summary      Ban a user
// @Description  Ban a non-admin user; their credentials stop working immediately
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id}/ban [post]
// @Security     BearerAuth
func (h *AdminHandler) Ban(c *gin.Context) {
	user, err := h.adminUC.SetUserBanned(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), true)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User banned", user)
}

// Unban godoc
// @Summary      Unban a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id}/unban [post]
// @Security     BearerAuth
func (h *AdminHandler) Unban(c *gin.Context) {
	user, err := h.adminUC.SetUserBanned(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), false)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User unbanned", user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Delete a non-admin user and cascade to their jobs and applications
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminUC.DeleteUser(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted", nil)
}
