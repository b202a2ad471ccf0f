package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/sendnow-backend-go/internal/handler"
	"github.com/jengzang/sendnow-backend-go/internal/middleware"
	"github.com/jengzang/sendnow-backend-go/internal/service"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	Limiter        *middleware.RateLimiter
	Submissions    handler.SubmissionService
	Charts         *service.ChartService
	Content        *service.ContentService
}

// SetupRouter builds the HTTP routes
func SetupRouter(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger.Named("http")),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.AllowedOrigins),
	)

	r.GET("/health", handler.Health)

	api := r.Group("/api")
	{
		forms := handler.NewSubmissionHandler(d.Submissions)
		limited := api.Group("")
		if d.Limiter != nil {
			limited.Use(middleware.RateLimit(d.Limiter))
		}
		limited.POST("/contact", forms.Contact)
		limited.POST("/newsletter-signup", forms.Newsletter)

		content := handler.NewContentHandler(d.Content)
		api.GET("/content", content.GetAll)
		api.GET("/content/:section", content.GetSection)

		charts := handler.NewChartHandler(d.Charts)
		api.GET("/charts", charts.ListKinds)
		api.GET("/charts/:kind", charts.RenderSample)
		api.POST("/charts/:kind", charts.RenderDataset)
	}

	return r
}
