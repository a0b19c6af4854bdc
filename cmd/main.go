package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"jobportal-backend/internal/config"
	"jobportal-backend/internal/db"
	"jobportal-backend/internal/handlers"
	"jobportal-backend/internal/ingest"
	"jobportal-backend/internal/middleware"
	"jobportal-backend/internal/scheduler"
	"jobportal-backend/internal/services"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg := config.Load()

	// Initialize Fiber
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Connect to MongoDB. A dead store at startup is logged inside, not
	// fatal: the server keeps serving and requests fail until the
	// database comes back.
	mongoDB := db.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)

	ctx := context.Background()
	if err := db.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Printf("Error creating indexes: %v", err)
	}

	authService := services.NewAuthService(mongoDB.Collection("users"), cfg.JWTSecret)
	jobService := services.NewJobService(mongoDB.Collection("jobs"))
	handlers.InitAuthHandler(authService)
	handlers.InitJobHandler(jobService)
	middleware.Init(cfg.JWTSecret)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("hello")
	})

	// User routes
	users := app.Group("/api/users")
	users.Post("/register", handlers.RegisterHandler)
	users.Post("/login", handlers.LoginHandler)

	// Job routes (all public)
	jobs := app.Group("/api/jobs")
	jobs.Get("/", handlers.GetAllJobsHandler)
	jobs.Get("/featured", handlers.GetFeaturedJobsHandler)
	jobs.Get("/search/advanced", handlers.AdvancedSearchHandler)
	jobs.Get("/locations", handlers.GetJobLocationsHandler)
	jobs.Get("/job-types", handlers.GetJobTypesHandler)
	jobs.Get("/experience-levels", handlers.GetExperienceLevelsHandler)
	jobs.Get("/company/:company", handlers.GetJobsByCompanyHandler)
	jobs.Get("/:id", handlers.GetJobByIDHandler)

	// Scheduled routines: hourly ingestion (plus one immediate pass) and
	// daily retention cleanup.
	jobStore := ingest.NewMongoJobStore(mongoDB.Collection("jobs"))
	fetcher := ingest.NewJSearchFetcher(cfg.RapidAPIKey)
	sched := scheduler.New(ingest.NewService(fetcher, jobStore), ingest.NewRetention(jobStore))
	if err := sched.Start(ctx); err != nil {
		log.Printf("Error starting scheduler: %v", err)
	}

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
