package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	copymodel "library-backend/internal/domains/copy/model"
	usermodel "library-backend/internal/domains/user/model"
	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/summary", catalogSummaryHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupGenreRoutes(v1, c)
		setupLanguageRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupCopyRoutes(v1, c)
		setupLoanRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/:id", c.AuthorHandler.GetByID)
	}

	manage := v1.Group("/authors")
	manage.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.RequirePermission(usermodel.PermManageCatalog),
	)
	{
		manage.POST("", c.AuthorHandler.Create)
		manage.PUT("/:id", c.AuthorHandler.Update)
		manage.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

// ========================================
// GENRE ROUTES
// ========================================
func setupGenreRoutes(v1 *gin.RouterGroup, c *container.Container) {
	genres := v1.Group("/genres")
	{
		genres.GET("", c.GenreHandler.GetAll)
		genres.GET("/:id", c.GenreHandler.GetByID)
	}

	manage := v1.Group("/genres")
	manage.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.RequirePermission(usermodel.PermManageCatalog),
	)
	{
		manage.POST("", c.GenreHandler.Create)
	}
}

// ========================================
// LANGUAGE ROUTES
// ========================================
func setupLanguageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	languages := v1.Group("/languages")
	{
		languages.GET("", c.LanguageHandler.GetAll)
		languages.GET("/:id", c.LanguageHandler.GetByID)
	}

	manage := v1.Group("/languages")
	manage.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.RequirePermission(usermodel.PermManageCatalog),
	)
	{
		manage.POST("", c.LanguageHandler.Create)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.GetAll)
		books.GET("/:id", c.BookHandler.GetByID)
	}

	manage := v1.Group("/books")
	manage.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.RequirePermission(usermodel.PermManageCatalog),
	)
	{
		manage.POST("", c.BookHandler.Create)
		manage.PUT("/:id", c.BookHandler.Update)
		manage.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// COPY ROUTES
// ========================================
func setupCopyRoutes(v1 *gin.RouterGroup, c *container.Container) {
	copies := v1.Group("/copies")
	{
		copies.GET("/:id", c.CopyHandler.GetByID)
	}

	manage := v1.Group("/copies")
	manage.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.RequirePermission(usermodel.PermManageCatalog),
	)
	{
		manage.POST("", c.CopyHandler.Create)
	}

	// Renewal requires the mark-returned capability, for both the
	// read-only display step and the committing write step.
	renew := v1.Group("/copies")
	renew.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.RequirePermission(usermodel.PermCanMarkReturned),
	)
	{
		renew.GET("/:id/renew", c.CopyHandler.PrepareRenewal)
		renew.POST("/:id/renew", c.CopyHandler.Renew)
	}
}

// ========================================
// LOAN ROUTES
// ========================================
func setupLoanRoutes(v1 *gin.RouterGroup, c *container.Container) {
	loans := v1.Group("/loans")
	loans.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		loans.GET("/mine", c.CopyHandler.ListMyLoans)
	}

	all := v1.Group("/loans")
	all.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.RequirePermission(usermodel.PermCanMarkReturned),
	)
	{
		all.GET("", c.CopyHandler.ListAllLoans)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

// ========================================
// CATALOG SUMMARY HANDLER
// ========================================
// catalogSummaryHandler reports catalog-wide counts plus how many times
// the current session has viewed the summary. The per-session counter
// lives in Redis, keyed by a cookie that is minted on first visit.
func catalogSummaryHandler(appCtx *container.Container) gin.HandlerFunc {
	const sessionCookie = "session_id"
	const sessionTTL = 14 * 24 * time.Hour

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		numBooks, err := appCtx.BookRepo.CountAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
			return
		}
		numCopies, err := appCtx.CopyRepo.CountAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
			return
		}
		numAvailable, err := appCtx.CopyRepo.CountByStatus(ctx, copymodel.StatusAvailable)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
			return
		}
		numAuthors, err := appCtx.AuthorRepo.CountAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
			return
		}
		numGenres, err := appCtx.GenreRepo.CountAll(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
			return
		}

		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, int(sessionTTL.Seconds()), "/", "", false, true)
		}

		// Best effort: a Redis outage should not break the summary page.
		var visits int64 = 1
		if appCtx.Cache != nil {
			key := "visits:" + sessionID
			if n, err := appCtx.Cache.Increment(ctx, key); err == nil {
				visits = n
				_ = appCtx.Cache.Expire(ctx, key, sessionTTL)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"num_books":            numBooks,
				"num_copies":           numCopies,
				"num_copies_available": numAvailable,
				"num_authors":          numAuthors,
				"num_genres":           numGenres,
				"num_visits":           visits,
			},
		})
	}
}
