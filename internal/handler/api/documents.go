package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/domain/internments"
	"github.com/Spok95/yard-terminal/internal/domain/preloads"
	"github.com/Spok95/yard-terminal/internal/report"
)

// maxUpload — предел размера вложения и файла импорта.
const maxUpload = 10 << 20

type DocumentHandler struct {
	Session *app.Session
}

// Preloads - GET /api/preloads?q=
func (h *DocumentHandler) Preloads(c *gin.Context) {
	list(c, preloads.Search(h.Session.View().Preloads, c.Query("q")))
}

// MatchPreload - GET /api/preloads/match?note= - поиск по номеру ноты для формы въезда
func (h *DocumentHandler) MatchPreload(c *gin.Context) {
	p, ok := preloads.Match(h.Session.View().Preloads, c.Query("note"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "preload not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddPreload - POST /api/preloads
func (h *DocumentHandler) AddPreload(c *gin.Context) {
	var p preloads.Preload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	p.ID = ""
	out, err := h.Session.AddPreload(c.Request.Context(), p)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// DeletePreload - DELETE /api/preloads/:id
func (h *DocumentHandler) DeletePreload(c *gin.Context) {
	if err := h.Session.RemovePreload(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func readUpload(c *gin.Context) (*multipart.FileHeader, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil, err
	}
	if fh.Size > maxUpload {
		return nil, nil, fmt.Errorf("file too large: %d bytes", fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(io.LimitReader(f, maxUpload))
	if err != nil {
		return nil, nil, err
	}
	return fh, data, nil
}

// AttachFile - POST /api/preloads/:id/file (multipart, поле file)
func (h *DocumentHandler) AttachFile(c *gin.Context) {
	fh, data, err := readUpload(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.Session.AttachPreloadFile(c.Request.Context(), c.Param("id"), fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// File - GET /api/preloads/:id/file
func (h *DocumentHandler) File(c *gin.Context) {
	for _, p := range h.Session.View().Preloads {
		if p.ID != c.Param("id") {
			continue
		}
		name, mime, data, err := preloads.Attachment(p)
		if err != nil {
			fail(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, mime, data)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "preload not found"})
}

// Import - POST /api/preloads/import (multipart xlsx)
func (h *DocumentHandler) Import(c *gin.Context) {
	_, data, err := readUpload(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	rows, err := report.ParsePreloads(bytes.NewReader(data))
	if err != nil {
		fail(c, err)
		return
	}
	out, err := h.Session.ImportPreloads(c.Request.Context(), rows)
	if err != nil {
		fail(c, err)
		return
	}
	list(c, out)
}

// Template - GET /api/preloads/template
func (h *DocumentHandler) Template(c *gin.Context) {
	f, err := report.PreloadTemplate()
	if err != nil {
		fail(c, err)
		return
	}
	sendFile(c, f)
}

// Internments - GET /api/internments?op=&q=
func (h *DocumentHandler) Internments(c *gin.Context) {
	list(c, internments.Filter(h.Session.View().Internments, internments.Operation(c.Query("op")), c.Query("q")))
}

// AddInternment - POST /api/internments
func (h *DocumentHandler) AddInternment(c *gin.Context) {
	var in internments.Internment
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	in.ID = ""
	out, err := h.Session.AddInternment(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// DeleteInternment - DELETE /api/internments/:id
func (h *DocumentHandler) DeleteInternment(c *gin.Context) {
	if err := h.Session.RemoveInternment(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
