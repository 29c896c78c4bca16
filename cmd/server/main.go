package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/falaoperador/admin-api/internal/config"
	"github.com/falaoperador/admin-api/internal/constants"
	"github.com/falaoperador/admin-api/internal/database"
	"github.com/falaoperador/admin-api/internal/geocoding"
	"github.com/falaoperador/admin-api/internal/handlers"
	"github.com/falaoperador/admin-api/internal/logging"
	"github.com/falaoperador/admin-api/internal/middleware"
	"github.com/falaoperador/admin-api/internal/repository"
	"github.com/falaoperador/admin-api/internal/services"
	"github.com/falaoperador/admin-api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.Logging.Production)
	defer logger.Sync()

	gin.SetMode(cfg.Server.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	store, err := sessionStore(cfg)
	if err != nil {
		logger.Fatal("Failed to create session store", zap.Error(err))
	}

	// Repositories
	usuarioRepo := repository.NewUsuarioRepository(db)
	eventoRepo := repository.NewEventoRepository(db)
	tarefaRepo := repository.NewTarefaRepository(db)
	patrocinadorRepo := repository.NewPatrocinadorRepository(db)

	// File storage and optional geocoding
	fileStorage := storage.NewLocalStorage(cfg.Storage.UploadsPath)

	var geocoder geocoding.Geocoder
	if cfg.Geocoding.APIKey != "" {
		geocoder = geocoding.NewClient(cfg.Geocoding)
	}

	// Services
	authService := services.NewAuthService(usuarioRepo)
	usuarioService := services.NewUsuarioService(usuarioRepo, fileStorage, logger)
	eventoService := services.NewEventoService(eventoRepo, usuarioRepo, fileStorage, geocoder, logger)
	tarefaService := services.NewTarefaService(tarefaRepo)
	patrocinadorService := services.NewPatrocinadorService(patrocinadorRepo, fileStorage, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioService, logger)
	eventoHandler := handlers.NewEventoHandler(eventoService, logger)
	tarefaHandler := handlers.NewTarefaHandler(tarefaService, logger)
	patrocinadorHandler := handlers.NewPatrocinadorHandler(patrocinadorService, logger)

	r := gin.Default()
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.LoadSession(usuarioRepo))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded images are served directly from disk
	r.Static("/uploads", cfg.Storage.UploadsPath)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/registro", authHandler.Registro)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.Me)
		}

		// Listagem e leitura reduzida são públicas; escrita exige sessão.
		usuarios := api.Group("/usuarios")
		{
			usuarios.GET("", usuarioHandler.List)
			usuarios.GET("/:id", usuarioHandler.Get)
			usuarios.PUT("/:id", middleware.RequireAuth(), usuarioHandler.Update)
			usuarios.PUT("/:id/senha", middleware.RequireAuth(), usuarioHandler.UpdateSenha)
			usuarios.DELETE("/:id", middleware.RequireAuth(), usuarioHandler.Delete)
		}

		// Leitura de eventos é aberta; a política decide por evento.
		eventos := api.Group("/eventos")
		{
			eventos.GET("", eventoHandler.List)
			eventos.GET("/:id", eventoHandler.Get)
			eventos.POST("", middleware.RequireAuth(), eventoHandler.Create)
			eventos.PUT("/:id", middleware.RequireAuth(), eventoHandler.Update)
			eventos.DELETE("/:id", middleware.RequireAuth(), eventoHandler.Delete)
		}

		tarefas := api.Group("/tarefas")
		tarefas.Use(middleware.RequireAuth())
		{
			tarefas.GET("", tarefaHandler.List)
			tarefas.GET("/:id", tarefaHandler.Get)
			tarefas.POST("", tarefaHandler.Create)
			tarefas.PUT("/:id", tarefaHandler.Update)
			tarefas.DELETE("/:id", tarefaHandler.Delete)
		}

		patrocinadores := api.Group("/patrocinadores")
		{
			patrocinadores.GET("", patrocinadorHandler.List)
			patrocinadores.GET("/:id", patrocinadorHandler.Get)
			patrocinadores.POST("", middleware.RequireAdmin(), patrocinadorHandler.Create)
			patrocinadores.PUT("/:id", middleware.RequireAdmin(), patrocinadorHandler.Update)
			patrocinadores.DELETE("/:id", middleware.RequireAdmin(), patrocinadorHandler.Delete)
		}
	}

	logger.Info("Server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// sessionStore usa Redis quando configurado e cai para o cookie store
// assinado em desenvolvimento.
func sessionStore(cfg *config.Config) (sessions.Store, error) {
	isProduction := cfg.Server.GinMode == "release"
	options := sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // Lax
	}

	if cfg.Session.RedisHost != "" {
		store, err := redisStore.NewStore(
			10,
			"tcp",
			cfg.Session.RedisHost+":"+cfg.Session.RedisPort,
			"",
			"",
			[]byte(cfg.Session.Secret),
		)
		if err != nil {
			return nil, err
		}
		store.Options(options)
		return store, nil
	}

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(options)
	return store, nil
}
