package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	candidate := protected.Group("")
	candidate.Use(middleware.RequireRoles(domain.RoleCandidate))
	{
		candidate.POST("/jobs/:id/applications", handler.Apply)
		candidate.GET("/applications/mine", handler.ListMine)
	}

	owner := protected.Group("")
	owner.Use(middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin))
	{
		owner.GET("/jobs/:id/applications", handler.ListByJob)
		owner.PATCH("/applications/:id/status", handler.UpdateStatus)
	}

	// Withdrawal is open to candidates and admins; the usecase enforces
	// that only the applicant (or an admin) may delete it
	withdraw := protected.Group("")
	withdraw.Use(middleware.RequireRoles(domain.RoleCandidate, domain.RoleAdmin))
	{
		withdraw.DELETE("/applications/:id", handler.Withdraw)
	}
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
	Resume      string `json:"resume"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application to an active job (candidate only, one per job)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Job ID"
// @Param        body  body      ApplyRequest  true  "Application JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/{id}/applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}

	principal := middleware.PrincipalFrom(c)
	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), principal.ID, c.Param("id"), req.CoverLetter, req.Resume)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /applications/mine [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	apps, err := h.applicationUC.GetMyApplications(c.Request.Context(), principal.ID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My applications", apps)
}

// ListByJob godoc
// @Summary      List a job's applications
// @Description  List applications for a job (job owner or admin)
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	apps, err := h.applicationUC.ListByJobID(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applications", apps)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Accept or reject an application (job owner or admin)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}

	app, err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Delete an application (applicant or admin)
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	if err := h.applicationUC.WithdrawApplication(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}
