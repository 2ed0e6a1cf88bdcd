package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"likeat/internal/auth"
	"likeat/internal/client"
	"likeat/internal/middleware"
	"likeat/internal/restaurant"
)

type Deps struct {
	Log         logrus.FieldLogger
	Tokens      *auth.TokenManager
	Restaurants *restaurant.Handler
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(),
	)

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ───────────────────────── PUBLIC CATALOG ─────────────────────────
	r.GET("/restaurants", d.Restaurants.ListApproved)

	// ───────────────────────── CLIENT ─────────────────────────
	mine := r.Group("/restaurants/me")
	mine.Use(
		middleware.AuthMiddleware(d.Tokens),
		middleware.RequireRole(client.RoleClient),
	)
	{
		mine.GET("", d.Restaurants.ListMyRestaurants)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(d.Tokens),
		middleware.RequireRole(client.RoleAdmin),
	)
	{
		admin.GET("/restaurants", d.Restaurants.ListByStatus)
		admin.GET("/clients/:id/restaurants", d.Restaurants.ListClientRestaurants)
	}

	return r
}
