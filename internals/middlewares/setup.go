package middlewares

import (
	"github.com/gofiber/fiber/v2"

	mwlogger "schoolku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dengan urutan yang benar:
// recovery paling luar, lalu CORS, logger, rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(mwlogger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
