package routes

import (
	"strings"

	"mergington-activities/src/controllers"
	"mergington-activities/src/metrics"
	"mergington-activities/src/middleware"
	"mergington-activities/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Handlers รวม controller ทั้งหมดที่ router ต้องใช้
type Handlers struct {
	Activities *controllers.ActivityController
	Health     *controllers.HealthController
	Metrics    *metrics.Collector
	StaticDir  string
}

// NewApp สร้าง fiber app พร้อม middleware และ routes ทั้งหมด
func NewApp(h Handlers, allowedOrigins []string, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Mergington Activities API",
		ErrorHandler: utils.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOrigins, ","),
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	InitRoutes(app, h)
	return app
}

func InitRoutes(app *fiber.App, h Handlers) {
	// หน้าเว็บหลักอยู่ใน static
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusTemporaryRedirect)
	})
	if h.StaticDir != "" {
		app.Static("/static", h.StaticDir)
	}

	activityRoutes(app, h.Activities)

	app.Get("/healthz", h.Health.Health)
	if h.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(h.Metrics.Handler()))
	}

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)
}
