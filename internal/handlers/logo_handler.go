package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BrunoPLacerda/CENTRO-DE-TREINAMENTO/internal/kv"
)

// logoKey is the single persisted key of the whole application.
const logoKey = "ct:logo"

// Data URIs for a reasonable logo stay well under this.
const maxLogoBytes = 2 << 20

// LogoHandler stores the academy logo as a data URI in the injected
// key/value backend. An absent logo means the client shows its built-in
// default.
type LogoHandler struct {
	KV kv.Store
}

func NewLogoHandler(store kv.Store) *LogoHandler {
	return &LogoHandler{KV: store}
}

func (h *LogoHandler) GetLogoHandler(c *gin.Context) {
	logo, err := h.KV.Get(c.Request.Context(), logoKey)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível carregar o logotipo."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logo": logo})
}

func (h *LogoHandler) SetLogoHandler(c *gin.Context) {
	var input struct {
		Logo string `json:"logo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Envie o logotipo como data URI.", "fields": bindingErrors(err)})
		return
	}
	if len(input.Logo) > maxLogoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Imagem grande demais (máximo 2MB)."})
		return
	}

	if err := h.KV.Set(c.Request.Context(), logoKey, input.Logo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível salvar o logotipo."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logotipo atualizado."})
}
