package main

import (
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/seo-audit-tool/backend/config"
	"github.com/seo-audit-tool/backend/geo"
	"github.com/seo-audit-tool/backend/logging"
	"github.com/seo-audit-tool/backend/middleware"
	"github.com/seo-audit-tool/backend/onpage"
	"github.com/seo-audit-tool/backend/report"
	"github.com/seo-audit-tool/backend/searchvis"
	"github.com/seo-audit-tool/backend/seohealth"
	"github.com/seo-audit-tool/backend/stats"
	"github.com/seo-audit-tool/backend/traffic"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.Debug)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	seed := time.Now().UnixNano()
	seoService := seohealth.NewServiceFromKey(cfg.PageSpeedAPIKey, seed)
	searchService := searchvis.NewService(cfg.GSCAccessToken, cfg.BingAPIKey, seed)
	geoService := geo.NewService(cfg.GeminiAPIKey, cfg.ApifyAPIToken, cfg.Debug)
	trafficService := traffic.NewService(seed)
	onpageAnalyzer := onpage.NewAnalyzer()

	tracker := stats.NewTracker()
	rateLimiter := middleware.NewRateLimiter(2, 5)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimiter.RateLimit())
	r.Use(middleware.Stats(tracker))

	api := r.Group("/api")
	{
		api.GET("", apiRoot(cfg))
		api.GET("/health", health(cfg))
		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, tracker.Snapshot())
		})

		seohealth.NewHandler(seoService).RegisterRoutes(api.Group("/seo"))
		searchvis.NewHandler(searchService).RegisterRoutes(api.Group("/search"))
		geo.NewHandler(geoService).RegisterRoutes(api.Group("/geo"))
		traffic.NewHandler(trafficService).RegisterRoutes(api.Group("/traffic"))
		report.NewHandler().RegisterRoutes(api.Group("/report"))
		onpage.NewHandler(onpageAnalyzer).RegisterRoutes(api.Group("/onpage"))
	}

	log.WithField("port", cfg.Port).
		WithField("pagespeed_live", cfg.HasPageSpeed()).
		WithField("gemini_live", cfg.HasGemini()).
		WithField("bing_live", cfg.HasBing()).
		Info("server starting")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func apiRoot(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "SEO Audit Tool API",
			"version": version,
			"apis_configured": gin.H{
				"pagespeed": cfg.HasPageSpeed(),
				"gemini":    cfg.HasGemini(),
				"bing":      cfg.HasBing(),
			},
			"endpoints": gin.H{
				"seo_health":        "/api/seo/analyze",
				"search_visibility": "/api/search/analyze",
				"geo":               "/api/geo/analyze",
				"traffic":           "/api/traffic/estimate",
				"report":            "/api/report/generate",
				"onpage":            "/api/onpage/analyze",
			},
		})
	}
}

func health(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"apis": gin.H{
				"pagespeed": cfg.HasPageSpeed(),
				"gemini":    cfg.HasGemini(),
				"bing":      cfg.HasBing(),
			},
		})
	}
}
