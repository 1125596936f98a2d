package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/domain/eir"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/report"
)

type YardHandler struct {
	Session *app.Session
}

// Map - GET /api/yard?block=&bay= - производная сетка слотов
func (h *YardHandler) Map(c *gin.Context) {
	cfg, slots := h.Session.Slots()
	block, bay := c.Query("block"), c.Query("bay")
	out := slots[:0:0]
	for _, s := range slots {
		if block != "" && s.Block != block {
			continue
		}
		if bay != "" && s.Bay != bay {
			continue
		}
		out = append(out, s)
	}
	c.JSON(http.StatusOK, gin.H{
		"config":   cfg,
		"bays":     yard.BayLabels(cfg.BaysCount),
		"slots":    out,
		"occupied": yard.Occupied(out),
	})
}

// Find - GET /api/yard/find?q= - быстрый поиск на карте
func (h *YardHandler) Find(c *gin.Context) {
	list(c, h.Session.QuickFind(c.Query("q")))
}

// Stats - GET /api/stats
func (h *YardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.Stats())
}

// Storage - GET /api/storage?q=
func (h *YardHandler) Storage(c *gin.Context) {
	list(c, h.Session.Storage(c.Query("q")))
}

// StorageXLSX - GET /api/storage/export
func (h *YardHandler) StorageXLSX(c *gin.Context) {
	f, err := report.StorageReport(h.Session.Storage(c.Query("q")), h.Session.Now(), h.Session.Location())
	if err != nil {
		fail(c, err)
		return
	}
	sendFile(c, f)
}

func force(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.Query("force"))
	return v
}

// UpdateYard - PUT /api/settings/yard?force=true
func (h *YardHandler) UpdateYard(c *gin.Context) {
	var cfg yard.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.Session.UpdateYard(c.Request.Context(), cfg, force(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type blockRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddBlock - POST /api/settings/yard/blocks
func (h *YardHandler) AddBlock(c *gin.Context) {
	var in blockRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.Session.AddBlock(c.Request.Context(), in.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// RemoveBlock - DELETE /api/settings/yard/blocks/:name?force=true
func (h *YardHandler) RemoveBlock(c *gin.Context) {
	out, err := h.Session.RemoveBlock(c.Request.Context(), c.Param("name"), force(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// SetLCLBlock - PUT /api/settings/yard/lcl
func (h *YardHandler) SetLCLBlock(c *gin.Context) {
	var in blockRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.Session.SetLCLBlock(c.Request.Context(), in.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type dimensionsRequest struct {
	Bays  int `json:"baysCount"`
	Rows  int `json:"rowsCount"`
	Tiers int `json:"tiersCount"`
}

// SetDimensions - PUT /api/settings/yard/dimensions?force=true
func (h *YardHandler) SetDimensions(c *gin.Context) {
	var in dimensionsRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.Session.SetDimensions(c.Request.Context(), in.Bays, in.Rows, in.Tiers, force(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetEIR - GET /api/settings/eir
func (h *YardHandler) GetEIR(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.EIRConfig())
}

// UpdateEIR - PUT /api/settings/eir
func (h *YardHandler) UpdateEIR(c *gin.Context) {
	var cfg eir.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.Session.UpdateEIR(c.Request.Context(), cfg)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
