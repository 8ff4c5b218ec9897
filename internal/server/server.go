package server

import (
	"github.com/Trenton-Brown/Visa-Stay/internal/auth"
	"github.com/Trenton-Brown/Visa-Stay/internal/config"
	"github.com/Trenton-Brown/Visa-Stay/internal/trip"
	"github.com/Trenton-Brown/Visa-Stay/internal/visa"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	visa.RegisterRoutes(s.App.Group("/visa"), visa.NewService(s.cacheStore(), visa.NewClient(s.Cfg)))
	trip.RegisterRoutes(s.App.Group("/trips"), trip.NewService(s.DB), jwtMiddleware)
}

// cacheStore picks where visa lookups are memoized: Redis when one is
// configured, the visa_cache table otherwise.
func (s *Server) cacheStore() visa.Store {
	if s.Redis != nil {
		return visa.NewRedisStore(s.Redis)
	}
	return visa.NewPGStore(s.DB)
}
