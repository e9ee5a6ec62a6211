package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/codeskillotech/taskmanagement-backend/internal/adapter/db"
	httpadapter "github.com/codeskillotech/taskmanagement-backend/internal/adapter/http"
	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/handlers"
	httpmiddleware "github.com/codeskillotech/taskmanagement-backend/internal/adapter/http/middleware"
	"github.com/codeskillotech/taskmanagement-backend/internal/adapter/token"
	appservice "github.com/codeskillotech/taskmanagement-backend/internal/app/service"
	"github.com/codeskillotech/taskmanagement-backend/internal/config"
	"github.com/codeskillotech/taskmanagement-backend/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JwtSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	revocationStore := dbadapter.NewRevokedTokenRepository(db)
	tokenManager := token.NewJWTManager(cfg.JwtSecret, cfg.TokenTTL)

	authService := appservice.NewAuthService(userRepository, tokenManager, revocationStore, cfg.BcryptCost)
	taskService := appservice.NewTaskService(taskRepository, userRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	authenticate := httpmiddleware.Authenticate(tokenManager, revocationStore)
	httpadapter.RegisterRoutes(r, healthHandler, authHandler, taskHandler, authenticate)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
