package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - listings only ever expose active jobs
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// Mutations require the employer or admin role
	employerJobs := protected.Group("/jobs")
	employerJobs.Use(middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin))
	{
		employerJobs.POST("", handler.Create)
		employerJobs.PUT("/:id", handler.Update)
		employerJobs.DELETE("/:id", handler.Delete)
	}

	employers := protected.Group("/employers")
	employers.Use(middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin))
	{
		employers.GET("/jobs", handler.ListOwn)
	}
}

type JobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	CompanyName string   `json:"company_name" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	JobType     string   `json:"job_type" binding:"required"`
	SalaryMin   *float64 `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax   *float64 `json:"salary_max" binding:"omitempty,gte=0"`
	Skills      []string `json:"skills"`
	JobStatus   string   `json:"job_status" binding:"omitempty,oneof=Active Inactive"`
}

func (r *JobRequest) toDomain() *domain.Job {
	return &domain.Job{
		Title:       r.Title,
		Description: r.Description,
		CompanyName: r.CompanyName,
		Location:    r.Location,
		JobType:     r.JobType,
		SalaryMin:   r.SalaryMin,
		SalaryMax:   r.SalaryMax,
		Skills:      r.Skills,
		JobStatus:   r.JobStatus,
	}
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a new job posting (employer or admin)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}

	principal := middleware.PrincipalFrom(c)
	job := req.toDomain()

	if err := h.jobUC.CreateJob(c.Request.Context(), principal.ID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List godoc
// @Summary      List active jobs
// @Description  List active jobs with optional substring filters
// @Tags         jobs
// @Produce      json
// @Param        title      query     string  false  "Title filter"
// @Param        location   query     string  false  "Location filter"
// @Param        job_type   query     string  false  "Job type filter"
// @Param        skill      query     string  false  "Skill filter"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filter := domain.JobFilter{
		Title:    c.Query("title"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
		Skill:    c.Query("skill"),
	}

	jobs, total, err := h.jobUC.ListActiveJobs(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// ListOwn godoc
// @Summary      List own jobs
// @Description  List jobs created by the authenticated employer
// @Tags         employers
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListOwn(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), principal.ID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Update an existing job posting (owner or admin)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string      true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}

	job := req.toDomain()
	job.ID = c.Param("id")
	if job.JobStatus == "" {
		job.JobStatus = domain.JobStatusActive
	}

	if err := h.jobUC.UpdateJob(c.Request.Context(), middleware.PrincipalFrom(c), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Delete a job and all applications referencing it (owner or admin)
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
