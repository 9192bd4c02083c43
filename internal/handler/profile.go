package handler

import (
	"net/http"
	"strings"

	"github.com/charlesmagnus93/epargnePro/internal/middleware"
	"github.com/charlesmagnus93/epargnePro/internal/models"
	"github.com/charlesmagnus93/epargnePro/internal/store"
	"github.com/charlesmagnus93/epargnePro/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProfileHandler serves account management: rename, password change and
// account deletion.
type ProfileHandler struct {
	DB         *gorm.DB
	Store      *store.Store
	BcryptCost int
}

func NewProfileHandler(db *gorm.DB, st *store.Store, bcryptCost int) *ProfileHandler {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &ProfileHandler{DB: db, Store: st, BcryptCost: bcryptCost}
}

type updateProfileReq struct {
	Name string `json:"name" binding:"required,max=64"`
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "name is required")
		return
	}

	user.Name = strings.TrimSpace(req.Name)
	if err := h.DB.Save(user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
	})
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "old and new passwords are required")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		util.Error(c, http.StatusUnauthorized, "wrong current password")
		return
	}
	if len(req.NewPassword) < 8 || len(req.NewPassword) > 64 {
		util.Error(c, http.StatusBadRequest, "password must be 8-64 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user.PasswordHash = string(hash)
	if err := h.DB.Save(user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to change password")
		return
	}

	util.Success(c, util.Response{"message": "password changed"})
}

// DeleteAccount removes the user and all four documents.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.Store.DeleteAll(user.ID); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to delete account data")
		return
	}
	if err := h.DB.Delete(&models.User{}, user.ID).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to delete account")
		return
	}

	util.Success(c, util.Response{"message": "account deleted"})
}
