package handlers

import (
	"net/http"

	"hiringbooth/internal/middleware"
	"hiringbooth/internal/models"
	"hiringbooth/internal/services"
	"hiringbooth/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes регистрирует маршруты профилей
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	{
		profiles.GET("/:id", h.GetPublic)
	}

	me := rg.Group("/profiles")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/me", h.GetOwn)
		me.PUT("/me", middleware.RequireRoles(models.UserRoleSeeker), h.UpdateOwn)
		me.PUT("/company", middleware.RequireRoles(models.UserRoleEmployer), h.UpdateCompany)
	}
}

func (h *ProfileHandler) GetOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	resp, err := h.profileService.GetOwn(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.UpdateUserProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.UpdateCompanyProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetPublic(c *gin.Context) {
	db := h.GetDB(c)

	resp, err := h.profileService.GetPublicProfile(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
