package cityweather

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"strconv"
)

const serviceName = "cityweather"

var validate = validator.New()

type weatherQuery struct {
	City string `validate:"omitempty,max=64"`
}

type recentQuery struct {
	Limit int `validate:"min=1,max=20"`
}

// App builds the fiber app serving the weather api.
func (s *Service) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": serviceName,
		})
	})

	s.RegisterRoutes(app)
	return app
}

func (s *Service) RegisterRoutes(app *fiber.App) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/recent", s.RecentHandler)
	v1.Get("/weather/:city", func(c *fiber.Ctx) error {
		return s.weatherFor(c, c.Params("city"))
	})
	v1.Get("/weather", func(c *fiber.Ctx) error {
		return s.weatherFor(c, c.Query("city"))
	})
}

func (s *Service) weatherFor(c *fiber.Ctx, city string) error {
	q := weatherQuery{City: utils.CopyString(city)}
	if err := validate.Struct(q); err != nil {
		return CodeError{code: 400, msg: "'city' must be at most 64 characters"}
	}

	resp, err := s.Weather(c.UserContext(), q.City)
	if err != nil {
		return err
	}
	return c.JSON(ok(resp))
}

func (s *Service) RecentHandler(c *fiber.Ctx) error {
	limitErr := CodeError{code: 400, msg: "'limit' parameter must be an integer between 1 and 20"}
	q := recentQuery{Limit: 10}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return limitErr
		}
		q.Limit = limit
	}
	if err := validate.Struct(q); err != nil {
		return limitErr
	}

	cities, err := s.Recent(c.UserContext(), q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(ok(fiber.Map{"cities": cities}))
}
