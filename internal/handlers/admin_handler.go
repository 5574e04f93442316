package handlers

import (
	"fmt"
	"net/http"
	"time"

	"hiringbooth/internal/middleware"
	"hiringbooth/internal/models"
	"hiringbooth/internal/services"
	"hiringbooth/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// RegisterRoutes регистрирует маршруты админки, все под ролью admin
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/stats", h.Stats)

		admin.GET("/employers/pending", h.PendingEmployers)
		admin.POST("/employers/:id/approve", h.ApproveEmployer)
		admin.POST("/employers/:id/reject", h.RejectEmployer)

		admin.GET("/users", h.ListUsers)
		admin.GET("/users/export", h.ExportUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	db := h.GetDB(c)

	stats, err := h.adminService.Stats(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) PendingEmployers(c *gin.Context) {
	db := h.GetDB(c)

	employers, err := h.adminService.PendingEmployers(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"employers": employers, "total": len(employers)})
}

func (h *AdminHandler) ApproveEmployer(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.adminService.ApproveEmployer(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employer approved"})
}

func (h *AdminHandler) RejectEmployer(c *gin.Context) {
	var req dto.RejectEmployerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.adminService.RejectEmployer(db, c.Param("id"), req.Reason); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employer rejected"})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.adminService.ListUsers(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.adminService.GetUser(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.adminService.UpdateUser(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.adminService.DeleteUser(db, adminID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ExportUsers отдаёт xlsx-файл; фильтры те же, что у списка пользователей
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	db := h.GetDB(c)

	var query dto.AdminUserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	data, err := h.adminService.ExportUsers(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("users-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data)
}
