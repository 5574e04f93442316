package handlers

import (
	"net/http"

	"hiringbooth/internal/middleware"
	"hiringbooth/internal/models"
	"hiringbooth/internal/services"
	"hiringbooth/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// RegisterRoutes регистрирует маршруты откликов
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("/:id/apply", middleware.RequireRoles(models.UserRoleSeeker), h.Apply)
		jobs.GET("/:id/applications", middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin), h.ListForJob)
	}

	apps := rg.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.GET("/my", middleware.RequireRoles(models.UserRoleSeeker), h.ListOwn)
		apps.PATCH("/:id/status", middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin), h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.Apply(db, c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListOwn(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplicationListResponse{
		Applications: applications,
		Total:        len(applications),
	})
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListForJob(db, c.Param("id"), userID, middleware.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplicationListResponse{
		Applications: applications,
		Total:        len(applications),
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.UpdateStatus(db, c.Param("id"), userID, middleware.GetRole(c), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
