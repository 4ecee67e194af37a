package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-admin-panel/internal/adapters/out/clinicapi"
	"github.com/suchimauz/clinic-admin-panel/internal/core/services"
)

// respondError превращает ошибку в уведомление для пользователя:
// сообщение бэкенда уходит как есть, иначе запасной текст
func respondError(ctx *gin.Context, err error, fallback string) {
	var apiErr *clinicapi.APIError

	switch {
	case errors.Is(err, services.ErrDraftNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrUnknownField):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &apiErr):
		ctx.JSON(apiErr.StatusCode, gin.H{"error": clinicapi.ErrorMessage(err, fallback)})
	default:
		ctx.JSON(http.StatusBadGateway, gin.H{"error": fallback})
	}
}
