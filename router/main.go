package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/internship-simulator/config"
	"github.com/sahilchouksey/internship-simulator/database"
	"github.com/sahilchouksey/internship-simulator/handlers"
	auth_handlers "github.com/sahilchouksey/internship-simulator/handlers/auth"
	internship_handlers "github.com/sahilchouksey/internship-simulator/handlers/internship"
	supervisor_handlers "github.com/sahilchouksey/internship-simulator/handlers/supervisor"
	task_handlers "github.com/sahilchouksey/internship-simulator/handlers/task"
	upload_handlers "github.com/sahilchouksey/internship-simulator/handlers/upload"
	"github.com/sahilchouksey/internship-simulator/services"
	"github.com/sahilchouksey/internship-simulator/services/evaluator"
	"github.com/sahilchouksey/internship-simulator/services/llm"
	"github.com/sahilchouksey/internship-simulator/services/storage"
	"github.com/sahilchouksey/internship-simulator/services/supervisor"
	"github.com/sahilchouksey/internship-simulator/utils/auth"
	"github.com/sahilchouksey/internship-simulator/utils/cache"
	"github.com/sahilchouksey/internship-simulator/utils/middleware"
)

// SetupRoutes wires every endpoint with its handlers and backing
// services. All external collaborators are optional; a missing one
// degrades its feature rather than failing startup.
func SetupRoutes(app *fiber.App, store database.Storage, env *config.EnviornmentVariable) {
	if env.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "internship-simulator-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        env.JWT_SECRET,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        jwtIssuer,
	})

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis cache for resource suggestions. Optional.
	var redisCache *cache.RedisCache
	if env.REDIS_URL != "" {
		var err error
		redisCache, err = cache.NewRedisCache(env.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Resource caching disabled.", err)
			redisCache = nil
		}
	}

	// Completion client. Optional; the supervisor serves deterministic
	// fallbacks without it.
	var llmClient *llm.Client
	if env.LLM_ENDPOINT != "" && env.LLM_API_KEY != "" {
		llmClient = llm.NewClient(llm.Config{
			APIKey:  env.LLM_API_KEY,
			BaseURL: env.LLM_ENDPOINT,
			Model:   env.LLM_DEPLOYMENT,
		})
	}

	// Spaces bucket for generated-content mirroring and submission
	// attachments. Optional.
	var spacesClient *storage.SpacesClient
	if env.SPACES_ACCESS_KEY != "" && env.SPACES_SECRET_KEY != "" && env.SPACES_BUCKET != "" {
		var err error
		spacesClient, err = storage.NewSpacesClient(storage.SpacesConfig{
			AccessKey: env.SPACES_ACCESS_KEY,
			SecretKey: env.SPACES_SECRET_KEY,
			Bucket:    env.SPACES_BUCKET,
			Region:    env.SPACES_REGION,
			Endpoint:  env.SPACES_ENDPOINT,
		})
		if err != nil {
			log.Printf("Warning: Failed to create Spaces client: %v. Uploads and mirroring disabled.", err)
			spacesClient = nil
		}
	}

	var mirror supervisor.Mirror
	if spacesClient != nil {
		mirror = spacesClient
	}
	supervisorGen := supervisor.New(llmClient, mirror)

	evaluatorClient := evaluator.NewClient(evaluator.Config{
		Endpoint: env.EVALUATOR_ENDPOINT,
		APIKey:   env.EVALUATOR_KEY,
	})

	internshipService := services.NewInternshipService(db, supervisorGen, evaluatorClient)
	supervisorService := services.NewSupervisorService(db, supervisorGen, redisCache)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager)
	internshipHandler := internship_handlers.NewInternshipHandler(db, internshipService)
	taskHandler := task_handlers.NewTaskHandler(internshipService, env.EVALUATOR_KEY)
	supervisorHandler := supervisor_handlers.NewSupervisorHandler(supervisorService, internshipService)
	uploadHandler := upload_handlers.NewUploadHandler(spacesClient)

	// Health check endpoint (public)
	app.Get("/ping", handlers.HealthCheck(store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Protected auth routes
	authGroup.Get("/profile", authMiddleware.Required(), authHandler.GetProfile)
	authGroup.Put("/profile", authMiddleware.Required(), authHandler.UpdateProfile)

	// Internship routes
	internshipGroup := api.Group("/internships", authMiddleware.Required())
	internshipGroup.Get("/industries", internshipHandler.ListIndustries)
	internshipGroup.Get("/companies", internshipHandler.ListCompanies)
	internshipGroup.Post("/start", internshipHandler.Start)
	internshipGroup.Get("/", internshipHandler.List)
	internshipGroup.Get("/:id", internshipHandler.Get)
	internshipGroup.Post("/:id/complete", internshipHandler.Complete)

	// Task routes. The evaluation callback authenticates with a shared
	// key instead of a user token.
	taskGroup := api.Group("/tasks")
	taskGroup.Post("/submissions/:id/evaluate", taskHandler.Evaluate)
	taskGroup.Get("/submissions/:id", authMiddleware.Required(), taskHandler.GetSubmission)
	taskGroup.Get("/:id", authMiddleware.Required(), taskHandler.Get)
	taskGroup.Post("/:id/submissions", authMiddleware.Required(), taskHandler.Submit)

	// Supervisor routes
	supervisorGroup := api.Group("/supervisor", authMiddleware.Required())
	supervisorGroup.Post("/ask", supervisorHandler.Ask)
	supervisorGroup.Post("/resources", supervisorHandler.Resources)
	supervisorGroup.Get("/certificates/:id", supervisorHandler.GetCertificate)

	// Upload routes
	uploadGroup := api.Group("/uploads", authMiddleware.Required())
	uploadGroup.Post("/presign", uploadHandler.Presign)
}
