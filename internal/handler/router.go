package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"courtpass/internal/handler/api"
	"courtpass/internal/handler/middleware"
	"courtpass/internal/obs"
	"courtpass/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, passHandler *api.PassHandler, scanHandler *api.ScanHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, passHandler, scanHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, passHandler *api.PassHandler, scanHandler *api.ScanHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(obs.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		passes := apiGroup.Group("/passes")
		passes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(passes, []route{
				{Method: http.MethodPost, Path: "", Handler: passHandler.IssuePass,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleStaff)}},
				{Method: http.MethodGet, Path: "/:reservationId", Handler: passHandler.GetCredential},
				{Method: http.MethodDelete, Path: "/:reservationId", Handler: passHandler.CancelCredentials,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin)}},
			})
		}

		scans := apiGroup.Group("/scans")
		scans.Use(authMiddleware.RequireAuth())
		scans.Use(authMiddleware.RequireRoleAtLeast(middleware.RoleStaff))
		{
			addRoutes(scans, []route{
				{Method: http.MethodPost, Path: "", Handler: scanHandler.Adjudicate},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
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
