package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gyruslabs/gyrus-api/internal/config"
	"github.com/gyruslabs/gyrus-api/internal/database"
	"github.com/gyruslabs/gyrus-api/internal/handler"
	"github.com/gyruslabs/gyrus-api/internal/middleware"
	"github.com/gyruslabs/gyrus-api/internal/models"
	"github.com/gyruslabs/gyrus-api/internal/repository"
	"github.com/gyruslabs/gyrus-api/internal/router"
	"github.com/gyruslabs/gyrus-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Teacher{}, &models.Group{}, &models.Test{}, &models.Report{}, &models.Question{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	groupRepo := repository.NewGroupRepository(db)
	testRepo := repository.NewTestRepository(db)
	reportRepo := repository.NewReportRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	codeSender := service.NewLogCodeSender(logger)
	otpService := service.NewOTPService(redisClient, codeSender, cfg.OTPTTL, logger)
	groupService := service.NewGroupService(groupRepo, teacherRepo, testRepo, validate, logger)
	testService := service.NewTestService(testRepo, groupRepo, validate, logger)
	reportService := service.NewReportService(reportRepo, groupRepo, validate, logger)
	sessionService := service.NewStudentSessionService(groupRepo, testRepo, teacherRepo, validate, logger)
	completionService := service.NewCompletionService(groupRepo, reportRepo, logger)
	teacherService := service.NewTeacherService(teacherRepo, otpService, validate, cfg.JWTSecret, logger)
	questionService := service.NewQuestionService(questionRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		GroupHandler:       handler.NewGroupHandler(groupService, logger),
		TestHandler:        handler.NewTestHandler(testService, logger),
		ReportHandler:      handler.NewReportHandler(reportService, completionService, logger),
		StudentAuthHandler: handler.NewStudentAuthHandler(sessionService, logger),
		TeacherHandler:     handler.NewTeacherHandler(teacherService, logger),
		OTPHandler:         handler.NewOTPHandler(otpService, logger),
		QuestionHandler:    handler.NewQuestionHandler(questionService, logger),
		JWTMiddleware:      middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
