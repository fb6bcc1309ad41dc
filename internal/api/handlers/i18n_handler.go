package handlers

import (
	"net/http"

	"github.com/driversetu/driver-setu/internal/api/dto"
	"github.com/driversetu/driver-setu/internal/i18n"
	apperrors "github.com/driversetu/driver-setu/pkg/errors"
	"github.com/driversetu/driver-setu/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Languages handles GET /v1/i18n/languages
func (h *Handlers) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LanguagesResponse{
		Languages: i18n.Languages(),
		Active:    h.Localizer.Language(),
		Suggested: i18n.Detect(c.GetHeader("Accept-Language")),
	})
}

// SetLanguage handles PUT /v1/i18n/language. The switch takes effect even
// when it cannot be saved; the client is told with a 503.
func (h *Handlers) SetLanguage(c *gin.Context) {
	var req dto.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	lang, err := i18n.Parse(req.Language)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.Localizer.SetLanguage(c.Request.Context(), lang); err != nil {
		h.respondError(c, apperrors.ServiceUnavailable("Language could not be saved", err))
		return
	}

	h.Logger.Info("Language changed", logger.String("language", string(lang)))
	h.Monitor.RecordLanguageChanged(string(lang))

	c.JSON(http.StatusOK, gin.H{"language": lang})
}

// Messages handles GET /v1/i18n/messages. ?lang= picks a language other
// than the active one; ?key= returns a single string.
func (h *Handlers) Messages(c *gin.Context) {
	lang := h.Localizer.Language()
	if code := c.Query("lang"); code != "" {
		parsed, err := i18n.Parse(code)
		if err != nil {
			h.respondError(c, err)
			return
		}
		lang = parsed
	}

	if key := c.Query("key"); key != "" {
		c.JSON(http.StatusOK, dto.MessageResponse{Language: lang, Key: key, Text: i18n.T(lang, key)})
		return
	}
	c.JSON(http.StatusOK, dto.MessagesResponse{Language: lang, Messages: i18n.Messages(lang)})
}
