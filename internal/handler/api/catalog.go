package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/domain/catalog"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
)

// entry — запись справочника, id которой можно задать из пути.
type entry[T any] interface {
	*T
	SetID(id string)
}

// CatalogHandler — CRUD одного справочника поверх сессии.
type CatalogHandler[T catalog.Entry, P entry[T]] struct {
	Session *app.Session
	List    func(st *app.State) []T
	Add     func(ctx context.Context, item T) (T, error)
	Update  func(ctx context.Context, item T) error
	Remove  func(ctx context.Context, id string) error
}

// Register вешает GET/POST на path и PUT/DELETE на path/:id.
func (h *CatalogHandler[T, P]) Register(g *gin.RouterGroup, path string) {
	g.GET(path, h.getAll)
	g.POST(path, h.create)
	g.PUT(path+"/:id", h.update)
	g.DELETE(path+"/:id", h.delete)
}

func (h *CatalogHandler[T, P]) getAll(c *gin.Context) {
	list(c, catalog.Search(h.List(h.Session.View()), c.Query("q")))
}

func (h *CatalogHandler[T, P]) create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	P(&item).SetID("")
	out, err := h.Add(c.Request.Context(), item)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *CatalogHandler[T, P]) update(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, err)
		return
	}
	P(&item).SetID(c.Param("id"))
	if err := h.Update(c.Request.Context(), item); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler[T, P]) delete(c *gin.Context) {
	if err := h.Remove(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func NewVessels(s *app.Session) *CatalogHandler[catalog.Vessel, *catalog.Vessel] {
	return &CatalogHandler[catalog.Vessel, *catalog.Vessel]{
		Session: s,
		List:    func(st *app.State) []catalog.Vessel { return st.Vessels },
		Add:     s.AddVessel, Update: s.UpdateVessel, Remove: s.RemoveVessel,
	}
}

func NewLines(s *app.Session) *CatalogHandler[catalog.ShippingLine, *catalog.ShippingLine] {
	return &CatalogHandler[catalog.ShippingLine, *catalog.ShippingLine]{
		Session: s,
		List:    func(st *app.State) []catalog.ShippingLine { return st.Lines },
		Add:     s.AddLine, Update: s.UpdateLine, Remove: s.RemoveLine,
	}
}

func NewAgencies(s *app.Session) *CatalogHandler[catalog.CustomsAgency, *catalog.CustomsAgency] {
	return &CatalogHandler[catalog.CustomsAgency, *catalog.CustomsAgency]{
		Session: s,
		List:    func(st *app.State) []catalog.CustomsAgency { return st.Agencies },
		Add:     s.AddAgency, Update: s.UpdateAgency, Remove: s.RemoveAgency,
	}
}

func NewClients(s *app.Session) *CatalogHandler[catalog.Client, *catalog.Client] {
	return &CatalogHandler[catalog.Client, *catalog.Client]{
		Session: s,
		List:    func(st *app.State) []catalog.Client { return st.Clients },
		Add:     s.AddClient, Update: s.UpdateClient, Remove: s.RemoveClient,
	}
}

func NewMaterials(s *app.Session) *CatalogHandler[catalog.Material, *catalog.Material] {
	return &CatalogHandler[catalog.Material, *catalog.Material]{
		Session: s,
		List:    func(st *app.State) []catalog.Material { return st.Materials },
		Add:     s.AddMaterial, Update: s.UpdateMaterial, Remove: s.RemoveMaterial,
	}
}

type DriverHandler struct {
	Session *app.Session
}

// List - GET /api/drivers?q=
func (h *DriverHandler) List(c *gin.Context) {
	list(c, drivers.Search(h.Session.View().Drivers, c.Query("q")))
}

// Save - PUT /api/drivers - upsert по номеру документа
func (h *DriverHandler) Save(c *gin.Context) {
	var d drivers.TransportInfo
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.Session.SaveDriver(c.Request.Context(), d)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Delete - DELETE /api/drivers/:id
func (h *DriverHandler) Delete(c *gin.Context) {
	if err := h.Session.RemoveDriver(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
