package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/movements"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/report"
)

type ContainerHandler struct {
	Session *app.Session
}

// GateIn - POST /api/gate-in
func (h *ContainerHandler) GateIn(c *gin.Context) {
	var req app.GateInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.Session.GateIn(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

type prefillRequest struct {
	LoadType      containers.LoadType `json:"loadType"`
	OwnerCode     string              `json:"ownerCode"`
	Serial        string              `json:"serial"`
	CheckDigit    string              `json:"checkDigit"`
	ReceptionNote string              `json:"receptionNote"`
	DriverID      string              `json:"driverId"`
	TruckPlate    string              `json:"truckPlate"`
}

// Prefill - POST /api/gate-in/prefill - черновик формы въезда со всеми автоподстановками
func (h *ContainerHandler) Prefill(c *gin.Context) {
	var in prefillRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	load := in.LoadType
	if load == "" {
		load = containers.LoadFCL
	}
	f := h.Session.NewGateInForm(load)
	f.SetOwnerCode(in.OwnerCode)
	f.SetSerial(in.Serial)
	if in.CheckDigit != "" {
		f.SetCheckDigit(in.CheckDigit)
	}
	if in.TruckPlate != "" {
		f.SetTruckPlate(in.TruckPlate)
	}
	h.Session.FillForm(f, in.ReceptionNote, in.DriverID)
	c.JSON(http.StatusOK, gin.H{
		"request":   f.Request(),
		"autoDigit": f.AutoDigit(),
		"preloaded": f.Preloaded(),
		"newDriver": f.NewDriver(),
		"problems":  f.Problems(),
	})
}

// GateOut - POST /api/gate-out
func (h *ContainerHandler) GateOut(c *gin.Context) {
	var req app.GateOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.ExitDate.IsZero() {
		req.ExitDate = h.Session.Now()
	}
	res, err := h.Session.GateOut(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type relocateRequest struct {
	ContainerID string         `json:"containerId"`
	To          *yard.Location `json:"to"`
	Position    string         `json:"position"`
	Reason      string         `json:"reason"`
}

// Relocate - POST /api/relocations; цель либо объектом "to", либо строкой "A-01-1-1"
func (h *ContainerHandler) Relocate(c *gin.Context) {
	var in relocateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	var to yard.Location
	switch {
	case in.To != nil:
		to = *in.To
	case in.Position != "":
		loc, err := yard.ParsePosition(in.Position)
		if err != nil {
			fail(c, err)
			return
		}
		to = loc
	default:
		fail(c, &app.ValidationError{Fields: []string{"to"}})
		return
	}
	mv, err := h.Session.Relocate(c.Request.Context(), app.RelocateRequest{ContainerID: in.ContainerID, To: to, Reason: in.Reason})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, mv)
}

// List - GET /api/containers?q=&status=In
func (h *ContainerHandler) List(c *gin.Context) {
	items := h.Session.SearchContainers(c.Query("q"))
	if st := c.Query("status"); st != "" {
		filtered := items[:0:0]
		for _, x := range items {
			if string(x.Status) == st {
				filtered = append(filtered, x)
			}
		}
		items = filtered
	}
	list(c, items)
}

// Get - GET /api/containers/:id
func (h *ContainerHandler) Get(c *gin.Context) {
	ctr, ok := h.Session.Container(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "container not found"})
		return
	}
	c.JSON(http.StatusOK, ctr)
}

// Update - PATCH /api/containers/:id
func (h *ContainerHandler) Update(c *gin.Context) {
	var patch app.ContainerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	ctr, err := h.Session.UpdateContainer(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ctr)
}

// Delete - DELETE /api/containers/:id
func (h *ContainerHandler) Delete(c *gin.Context) {
	if err := h.Session.RemoveContainer(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// History - GET /api/containers/:id/history
func (h *ContainerHandler) History(c *gin.Context) {
	list(c, h.Session.ContainerHistory(c.Param("id")))
}

// EIR - GET /api/containers/:id/eir - квитанция в xlsx
func (h *ContainerHandler) EIR(c *gin.Context) {
	ctr, ok := h.Session.Container(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "container not found"})
		return
	}
	f, err := report.EIRReceipt(ctr, h.Session.EIRConfig(), h.Session.Location())
	if err != nil {
		fail(c, err)
		return
	}
	sendFile(c, f)
}

// Movements - GET /api/movements?q=&type=
func (h *ContainerHandler) Movements(c *gin.Context) {
	list(c, h.Session.History(c.Query("q"), movements.Kind(c.Query("type"))))
}
