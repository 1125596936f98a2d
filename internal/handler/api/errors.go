package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/auth"
	"github.com/Spok95/yard-terminal/internal/domain/preloads"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/report"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, app.ErrInvalid),
		errors.Is(err, yard.ErrBadDimensions),
		errors.Is(err, yard.ErrBadPosition),
		errors.Is(err, yard.ErrBadBlockName),
		errors.Is(err, report.ErrBadWorkbook),
		errors.Is(err, report.ErrMissingColumn),
		errors.Is(err, report.ErrNoRows),
		errors.Is(err, preloads.ErrBadAttachment):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrNotFound),
		errors.Is(err, app.ErrNotInYard),
		errors.Is(err, yard.ErrUnknownBlock):
		return http.StatusNotFound
	case errors.Is(err, app.ErrSlotOccupied),
		errors.Is(err, app.ErrUnknownSlot),
		errors.Is(err, app.ErrAlreadyInYard),
		errors.Is(err, app.ErrYardFull),
		errors.Is(err, app.ErrConfirmRequired),
		errors.Is(err, yard.ErrDuplicateBlock),
		errors.Is(err, yard.ErrLastBlock):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, app.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// fail отвечает ошибкой в формате {"error": ..., "fields": [...]}.
func fail(c *gin.Context, err error) {
	code := statusOf(err)
	body := gin.H{"error": err.Error()}
	var verr *app.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}
	if errors.Is(err, app.ErrConfirmRequired) {
		body["confirm"] = true
	}
	_ = c.Error(err)
	c.JSON(code, body)
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func list[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
}

func sendFile(c *gin.Context, f report.File) {
	c.Header("Content-Disposition", `attachment; filename="`+f.Name+`"`)
	c.Data(http.StatusOK, report.ContentType, f.Bytes)
}
