package handler

import (
	"net/http"
	"strings"

	"github.com/charlesmagnus93/epargnePro/internal/i18n"
	"github.com/charlesmagnus93/epargnePro/internal/ledger"
	"github.com/charlesmagnus93/epargnePro/internal/middleware"
	"github.com/charlesmagnus93/epargnePro/internal/models"
	"github.com/charlesmagnus93/epargnePro/internal/store"
	"github.com/charlesmagnus93/epargnePro/internal/util"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the settings document. Currency is a display label
// only.
type SettingsHandler struct {
	Store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{Store: st}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	settings, err := loadSettings(h.Store, user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to fetch settings")
		return
	}

	util.Success(c, util.Response{"settings": settings})
}

func (h *SettingsHandler) Put(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var settings ledger.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid settings document")
		return
	}

	settings.Currency = strings.TrimSpace(settings.Currency)
	if settings.Currency == "" {
		util.Error(c, http.StatusBadRequest, "currency is required")
		return
	}
	if settings.Language != i18n.LangFR && settings.Language != i18n.LangEN {
		util.Error(c, http.StatusBadRequest, "language must be fr or en")
		return
	}

	if err := h.Store.Set(user.ID, models.DocSettings, settings); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to update settings")
		return
	}

	util.Success(c, util.Response{"settings": settings})
}
