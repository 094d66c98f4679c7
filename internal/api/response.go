package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gaegulzip/wowa/internal/errs"
)

func errorBody(code, message string) gin.H {
	return gin.H{"error": gin.H{"code": code, "message": message}}
}

// respondError maps sentinel errors to stable HTTP statuses and codes so the
// frontends can tell forbidden from missing from retryable conflicts.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, errorBody("validation", err.Error()))
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorBody("unauthorized", err.Error()))
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, errorBody("forbidden", err.Error()))
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody("not_found", err.Error()))
	case errors.Is(err, errs.ErrConflict):
		c.JSON(http.StatusConflict, errorBody("conflict", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, errorBody("internal", "internal server error"))
	}
}
