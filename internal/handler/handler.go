package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/yard-terminal/internal/app"
	"github.com/Spok95/yard-terminal/internal/auth"
	"github.com/Spok95/yard-terminal/internal/handler/api"
	"github.com/Spok95/yard-terminal/internal/handler/middleware"
)

type Handler struct {
	Session   *app.Session
	Auth      *auth.Service
	Log       *slog.Logger
	Auths     *api.AuthHandler
	Container *api.ContainerHandler
	Yard      *api.YardHandler
	Drivers   *api.DriverHandler
	Documents *api.DocumentHandler
}

func NewHandler(s *app.Session, svc *auth.Service, log *slog.Logger) *Handler {
	return &Handler{
		Session:   s,
		Auth:      svc,
		Log:       log,
		Auths:     &api.AuthHandler{Session: s, Auth: svc},
		Container: &api.ContainerHandler{Session: s},
		Yard:      &api.YardHandler{Session: s},
		Drivers:   &api.DriverHandler{Session: s},
		Documents: &api.DocumentHandler{Session: s},
	}
}

// Router — gin-движок с API площадки; монтируется в общий mux под /api/.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(h.Log))
	h.SetupRoutes(router)
	return router
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	apiGroup.POST("/login", h.Auths.Login)

	authGroup := apiGroup.Group("/", middleware.AuthMiddleware(h.Auth, h.Session))
	{
		authGroup.POST("/logout", h.Auths.Logout)

		// Ворота и перемещения
		authGroup.POST("/gate-in", h.Container.GateIn)
		authGroup.POST("/gate-in/prefill", h.Container.Prefill)
		authGroup.POST("/gate-out", h.Container.GateOut)
		authGroup.POST("/relocations", h.Container.Relocate)
		authGroup.GET("/movements", h.Container.Movements)

		// Контейнеры
		authGroup.GET("/containers", h.Container.List)
		authGroup.GET("/containers/:id", h.Container.Get)
		authGroup.PATCH("/containers/:id", h.Container.Update)
		authGroup.DELETE("/containers/:id", h.Container.Delete)
		authGroup.GET("/containers/:id/history", h.Container.History)
		authGroup.GET("/containers/:id/eir", h.Container.EIR)

		// Площадка и отчёты
		authGroup.GET("/yard", h.Yard.Map)
		authGroup.GET("/yard/find", h.Yard.Find)
		authGroup.GET("/stats", h.Yard.Stats)
		authGroup.GET("/storage", h.Yard.Storage)
		authGroup.GET("/storage/export", h.Yard.StorageXLSX)

		// Настройки
		authGroup.PUT("/settings/yard", h.Yard.UpdateYard)
		authGroup.POST("/settings/yard/blocks", h.Yard.AddBlock)
		authGroup.DELETE("/settings/yard/blocks/:name", h.Yard.RemoveBlock)
		authGroup.PUT("/settings/yard/lcl", h.Yard.SetLCLBlock)
		authGroup.PUT("/settings/yard/dimensions", h.Yard.SetDimensions)
		authGroup.GET("/settings/eir", h.Yard.GetEIR)
		authGroup.PUT("/settings/eir", h.Yard.UpdateEIR)

		// Справочники
		api.NewVessels(h.Session).Register(authGroup, "/vessels")
		api.NewLines(h.Session).Register(authGroup, "/lines")
		api.NewAgencies(h.Session).Register(authGroup, "/agencies")
		api.NewClients(h.Session).Register(authGroup, "/clients")
		api.NewMaterials(h.Session).Register(authGroup, "/materials")
		authGroup.GET("/drivers", h.Drivers.List)
		authGroup.PUT("/drivers", h.Drivers.Save)
		authGroup.DELETE("/drivers/:id", h.Drivers.Delete)

		// Документация
		authGroup.GET("/preloads", h.Documents.Preloads)
		authGroup.GET("/preloads/match", h.Documents.MatchPreload)
		authGroup.GET("/preloads/template", h.Documents.Template)
		authGroup.POST("/preloads", h.Documents.AddPreload)
		authGroup.POST("/preloads/import", h.Documents.Import)
		authGroup.DELETE("/preloads/:id", h.Documents.DeletePreload)
		authGroup.POST("/preloads/:id/file", h.Documents.AttachFile)
		authGroup.GET("/preloads/:id/file", h.Documents.File)
		authGroup.GET("/internments", h.Documents.Internments)
		authGroup.POST("/internments", h.Documents.AddInternment)
		authGroup.DELETE("/internments/:id", h.Documents.DeleteInternment)
	}
}
