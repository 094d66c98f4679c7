package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gaegulzip/wowa/internal/service"
)

// NewRouter assembles the gin engine with middleware and all WOD routes.
func NewRouter(
	log *zap.Logger,
	jwtSecret string,
	allowOrigins []string,
	wodSvc service.WodService,
	proposalSvc service.ProposalService,
	selectionSvc service.SelectionService,
) *gin.Engine {
	router := gin.New()
	router.Use(Recover(log))
	router.Use(RequestLogger(log))

	if len(allowOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = allowOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	wodHandler := NewWodHandler(wodSvc)
	proposalHandler := NewProposalHandler(proposalSvc)
	selectionHandler := NewSelectionHandler(selectionSvc)

	apiV1 := router.Group("/api/v1")
	apiV1.Use(AuthMiddleware(jwtSecret))
	{
		wods := apiV1.Group("/wods")
		{
			wods.POST("", wodHandler.Register)

			proposals := wods.Group("/proposals")
			{
				proposals.POST("", proposalHandler.Create)
				proposals.GET("", proposalHandler.List)
				proposals.POST("/:proposalId/approve", proposalHandler.Approve)
				proposals.POST("/:proposalId/reject", proposalHandler.Reject)
			}

			selections := wods.Group("/selections")
			{
				selections.POST("", selectionHandler.Select)
				selections.GET("", selectionHandler.List)
			}

			// Path params come last so they do not shadow the fixed routes.
			wods.GET("/:boxId/:date", wodHandler.ByDate)
		}
	}

	return router
}
