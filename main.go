// @title Intranet Backend API
// @version 1.0
// @description Municipal intranet social platform backend.
// @host localhost:5000
// @BasePath /api

package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	_ "intranet-backend/docs"

	"intranet-backend/bootstrap"
	"intranet-backend/config"
	"intranet-backend/database"
	"intranet-backend/internal/handlers"
	"intranet-backend/internal/middleware"
	"intranet-backend/internal/notify"
	"intranet-backend/internal/observability"
	"intranet-backend/internal/repositories"
	"intranet-backend/internal/routes"
	"intranet-backend/internal/ws"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongodb connect failed", zap.Error(err))
	}
	defer database.Disconnect(client)

	db := client.Database(cfg.MongoDB)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		cancel()
		logger.Fatal("ensure indexes failed", zap.Error(err))
	}
	cancel()

	users := repositories.NewUserRepository(db)
	posts := repositories.NewPostRepository(db)
	comments := repositories.NewCommentRepository(db)
	groups := repositories.NewGroupRepository(db)
	members := repositories.NewGroupMemberRepository(db)
	chats := repositories.NewChatRepository(db)
	messages := repositories.NewMessageRepository(db)
	events := repositories.NewEventRepository(db)
	news := repositories.NewNewsRepository(db)
	files := repositories.NewFileRepository(db)
	notifications := repositories.NewNotificationRepository(db)
	departments := repositories.NewDepartmentRepository(db)
	quickAccess := repositories.NewQuickAccessRepository(db)
	activityLogs := repositories.NewActivityLogRepository(db)

	notifier := notify.New(notifications, logger)
	uploader := middleware.NewUploader(cfg.UploadDir)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.NewErrorHandler(cfg.Production(), logger),
		BodyLimit:    25 << 20,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	app.Use(observability.HTTPMetricsMiddleware())

	routes.Register(app, routes.Deps{
		Cfg:          cfg,
		Log:          logger,
		Hub:          ws.NewHub(logger),
		Users:        users,
		Logs:         activityLogs,
		Auth:         handlers.NewAuthHandler(users, cfg),
		User:         handlers.NewUserHandler(users, departments),
		Post:         handlers.NewPostHandler(posts, comments, users, uploader, notifier),
		Group:        handlers.NewGroupHandler(groups, members, posts, files, events, users, uploader, notifier),
		Chat:         handlers.NewChatHandler(chats, messages, users, uploader, notifier),
		Event:        handlers.NewEventHandler(events, users, notifier),
		News:         handlers.NewNewsHandler(news, users, uploader, notifier),
		File:         handlers.NewFileHandler(files, users, uploader, notifier, logger),
		Notification: handlers.NewNotificationHandler(notifications),
		Department:   handlers.NewDepartmentHandler(departments, users, posts),
		Admin:        handlers.NewAdminHandler(users, posts, groups, events, news, activityLogs),
		QuickAccess:  handlers.NewQuickAccessHandler(quickAccess),
	})

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
