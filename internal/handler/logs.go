package handler

import (
	"net/http"
	"strconv"

	"github.com/charlesmagnus93/epargnePro/internal/middleware"
	"github.com/charlesmagnus93/epargnePro/internal/models"
	"github.com/charlesmagnus93/epargnePro/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LogHandler lists the user's own audit trail.
type LogHandler struct {
	DB *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{DB: db}
}

func (h *LogHandler) ListLogs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}

	var total int64
	base := h.DB.Model(&models.AuditLog{}).Where("user_id = ?", user.ID)
	if err := base.Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to count logs")
		return
	}

	var logs []models.AuditLog
	if err := base.Order("created_at DESC, id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch logs")
		return
	}

	util.Success(c, util.Response{
		"items": logs,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
