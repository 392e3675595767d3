package api

import (
	"context"
	"time"

	"course-recommender/docs"
	"course-recommender/internal/api/handlers"
	"course-recommender/pkg/auth"
	"course-recommender/pkg/config"
	"course-recommender/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Pinger reports database reachability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

func SetupRouter(
	recHandler *handlers.RecommendationHandler,
	pathHandler *handlers.LearningPathHandler,
	jwtManager *auth.JWTManager,
	db Pinger,
	serverCfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))

	// Swagger - importing docs registers the API document through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			appLogger.Warn("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	requireAuth := middleware.AuthMiddleware(jwtManager, appLogger)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtManager, appLogger)

	// Static segments are registered before /:id
	recs := app.Group("/api/v1/recommendations")
	recs.Post("/clarify", optionalAuth, recHandler.Clarify)
	recs.Get("/my-paths", requireAuth, pathHandler.ListPaths)
	recs.Post("/my-paths", requireAuth, pathHandler.ListPaths)

	recs.Post("", requireAuth, recHandler.Generate)
	recs.Get("/:id", requireAuth, recHandler.Get)
	recs.Post("/:id/save", requireAuth, recHandler.Save)
	recs.Post("/:id/followup", requireAuth, recHandler.FollowUp)
	recs.Post("/:id/save-path", requireAuth, pathHandler.SavePath)

	return app
}
