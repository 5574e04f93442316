package handlers

import (
	"net/http"

	"hiringbooth/internal/middleware"
	"hiringbooth/internal/models"
	"hiringbooth/internal/services"
	"hiringbooth/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует маршруты вакансий.
// Чтение открыто всем, изменения требуют токен работодателя.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
	}

	protected := rg.Group("/jobs")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", middleware.RequireRoles(models.UserRoleEmployer), h.Create)
		protected.GET("/my", middleware.RequireRoles(models.UserRoleEmployer), h.ListOwn)
		protected.PUT("/:id", middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin), h.Update)
		protected.DELETE("/:id", middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin), h.Delete)
	}

	// GET /jobs/:id после /jobs/my, статический сегмент имеет приоритет.
	// Токен не обязателен, но владелец и админ с ним видят и скрытые вакансии.
	jobs.GET("/:id", middleware.OptionalAuth(), h.Get)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.CreateJob(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.GetJob(db, c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.jobService.ListJobs(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	jobs, err := h.jobService.ListEmployerJobs(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.UpdateJob(db, c.Param("id"), userID, middleware.GetRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.DeleteJob(db, c.Param("id"), userID, middleware.GetRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
