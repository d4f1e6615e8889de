package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/internal/database"
	"github.com/AlexNT-maker/auto-payroll-system/internal/middleware"
	"github.com/AlexNT-maker/auto-payroll-system/internal/router"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; real environment variables win.
	envErr := godotenv.Load()

	utils.InitLogger(utils.Getenv("LOG_LEVEL", "info"))
	if envErr != nil {
		utils.LogDebug("No .env file loaded, using process environment")
	}

	dbCfg := database.Config{
		Host:        utils.Getenv("DB_HOST", "localhost"),
		Port:        utils.Getenv("DB_PORT", "5432"),
		User:        utils.Getenv("DB_USER", "payroll_user"),
		Password:    utils.Getenv("DB_PASSWORD", "payroll_password"),
		Name:        utils.Getenv("DB_NAME", "payroll_db"),
		SSLMode:     utils.Getenv("DB_SSLMODE", "disable"),
		ApplySchema: utils.GetenvBool("DB_APPLY_SCHEMA", true),
	}
	db, err := database.InitDB(dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if utils.Getenv("GIN_MODE", "") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())
	engine.Use(middleware.Metrics())

	config := cors.DefaultConfig()
	config.AllowOrigins = utils.GetenvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	router.Setup(engine, router.NewHandlers(db, router.Options{
		PDFFontPath: utils.Getenv("PDF_FONT_PATH", ""),
	}))

	port := utils.Getenv("PORT", "8000")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.LogInfo("Server starting", map[string]interface{}{"port": port})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.LogError(err, "Server shutdown failed")
	}
	utils.LogInfo("Server stopped")
}
