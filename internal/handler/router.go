package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fuelpos/internal/domain/user"
	"fuelpos/internal/handler/api"
	"fuelpos/internal/handler/middleware"
	"fuelpos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	pumpHandler *api.PumpHandler,
	shiftHandler *api.ShiftHandler,
	paymentHandler *api.PaymentHandler,
	adminHandler *api.AdminHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, pumpHandler, shiftHandler, paymentHandler, adminHandler, reportHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())

	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"status": "error", "message": "Method not allowed"})
	})
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
	})
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	pumpHandler *api.PumpHandler,
	shiftHandler *api.ShiftHandler,
	paymentHandler *api.PaymentHandler,
	adminHandler *api.AdminHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/status", Handler: statusCheck},
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodGet, Path: "/pumps", Handler: pumpHandler.ListPumps},
				{Method: http.MethodGet, Path: "/shifts", Handler: pumpHandler.ListShiftTemplates},
				{Method: http.MethodPost, Path: "/shift/open", Handler: shiftHandler.OpenShift},
				{Method: http.MethodPost, Path: "/shift/close", Handler: shiftHandler.CloseShift},
				{Method: http.MethodPost, Path: "/payments/stk_push", Handler: paymentHandler.StkPush},
				{Method: http.MethodGet, Path: "/reports/sales", Handler: reportHandler.SalesReport},
				{Method: http.MethodGet, Path: "/filters", Handler: reportHandler.FilterOptions},
			})

			admin := authRequired.Group("/admin")
			admin.Use(authMiddleware.RequireRole(user.RoleAdmin))
			{
				addRoutes(admin, []route{
					{Method: http.MethodGet, Path: "/users", Handler: adminHandler.ListUsers},
					{Method: http.MethodPost, Path: "/users", Handler: adminHandler.CreateUser},
					{Method: http.MethodPatch, Path: "/users/:id/active", Handler: adminHandler.SetUserActive},
					{Method: http.MethodGet, Path: "/settings", Handler: adminHandler.ListSettings},
					{Method: http.MethodPut, Path: "/settings", Handler: adminHandler.UpdateSetting},
				})
			}
		}
	}
}

func statusCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
