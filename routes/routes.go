package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/brianmaleek/alx-listing-app-deployed/config"
	"github.com/brianmaleek/alx-listing-app-deployed/controllers"
	"github.com/brianmaleek/alx-listing-app-deployed/middleware"
	"github.com/brianmaleek/alx-listing-app-deployed/views"
)

// Controllers groups the handlers mounted by SetupRouter.
type Controllers struct {
	Pages      *controllers.PageController
	Properties *controllers.PropertyController
	Reviews    *controllers.ReviewController
}

// SetupRouter builds the engine: pages at the root, the mock API under /api, plus
// /health and /metrics.
func SetupRouter(cfg *config.Config, logger log.Logger, reg *prometheus.Registry, ctl Controllers) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))
	if reg != nil {
		r.Use(middleware.NewHTTPMetrics(reg).Handler())
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials(),
		MaxAge:           12 * time.Hour,
	}))

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if reg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	r.GET("/", ctl.Pages.Home)
	r.GET("/properties/:id", ctl.Pages.PropertyDetail)
	r.GET("/booking", ctl.Pages.BookingForm)
	r.POST("/booking", ctl.Pages.SubmitBooking)

	api := r.Group("/api")
	{
		// Any, so that non-GET methods get the JSON 405 from the handlers.
		properties := api.Group("/properties")
		{
			properties.Any("", ctl.Properties.ListProperties)
			properties.Any("/:id", ctl.Properties.GetProperty)
			properties.Any("/:id/reviews", ctl.Reviews.GetReviews)
		}
	}

	return r, nil
}
