package app

import (
	"time"

	"Dashboard/internal/auth"
	"Dashboard/internal/cache"
	"Dashboard/internal/config"
	"Dashboard/internal/handlers"
	"Dashboard/internal/password"
	"Dashboard/internal/repo"
	"Dashboard/internal/service"
	"Dashboard/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")
	api.GET("/health", healthHandler(cfg))

	tokens := token.NewManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL.Duration())
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	userRepo := repo.NewPGUserRepo(db)
	sessionRepo := repo.NewPGSessionRepo(db)

	authSvc := service.NewAuthService(userRepo, sessionRepo, hasher, tokens)
	authHandler := handlers.NewAuthHandler(authSvc)
	registerAuthRoutes(api, authHandler)

	var profileCache *cache.ProfileCache
	if rdb != nil {
		profileCache = cache.NewProfileCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}
	userSvc := service.NewUserService(userRepo, sessionRepo, profileCache)
	userHandler := handlers.NewUserHandler(userSvc)

	protected := api.Group("", auth.RequireAuth(tokens))
	registerUserRoutes(protected, userHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Dashboard API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/api/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "env": cfg.App.Env, "timestamp": time.Now().UTC()})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
}

func registerUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler) {
	api.GET("/user/me", h.Me)
	api.PATCH("/user/me", h.UpdateMe)
	api.GET("/user/sessions", h.Sessions)
}
