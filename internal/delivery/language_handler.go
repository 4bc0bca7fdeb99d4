package delivery

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/deepakshresthadhd-design/Group/internal/i18n"
)

// LanguageHandler keeps the active UI language and exposes the translation
// table. The setting is per-process, not persisted with the ledger.
type LanguageHandler struct {
	mu     sync.RWMutex
	active i18n.Language
	log    *logrus.Logger
}

func NewLanguageHandler(defaultLang i18n.Language, logger *logrus.Logger) *LanguageHandler {
	if !defaultLang.Valid() {
		defaultLang = i18n.English
	}
	return &LanguageHandler{
		active: defaultLang,
		log:    logger,
	}
}

func (h *LanguageHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/language", h.GetLanguage)
	router.PUT("/language", h.SetLanguage)
	router.GET("/translations", h.Translations)
	router.GET("/translations/*path", h.Translate)
}

func (h *LanguageHandler) current() i18n.Language {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.active
}

func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Active language retrieved", gin.H{"language": h.current()})
}

func (h *LanguageHandler) SetLanguage(c *gin.Context) {
	var body struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	lang := i18n.Language(body.Language)
	if !lang.Valid() {
		h.log.Warnf("Rejected unknown language '%s'", body.Language)
		ErrorResponse(c, http.StatusBadRequest, "invalid language: "+body.Language)
		return
	}

	h.mu.Lock()
	h.active = lang
	h.mu.Unlock()

	h.log.Infof("Active language switched to '%s'", lang)
	SuccessResponse(c, http.StatusOK, "Language updated successfully", gin.H{"language": lang})
}

func (h *LanguageHandler) Translations(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Translations retrieved successfully", i18n.Table(h.current()))
}

// Translate resolves a single dotted path, e.g. /translations/nav.dashboard.
// An unresolved path comes back verbatim, which the original UI also used as
// its missing-translation signal.
func (h *LanguageHandler) Translate(c *gin.Context) {
	path := strings.Trim(c.Param("path"), "/")
	if path == "" {
		h.Translations(c)
		return
	}

	SuccessResponse(c, http.StatusOK, "Translation retrieved successfully", gin.H{
		"path":  path,
		"value": i18n.T(h.current(), path),
	})
}
