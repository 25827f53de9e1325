package api

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func NewApp(name string, logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(logger),
	})
}

// SetupRouter registers every route behind auth. Prediction routes are served
// both at the root and under /api/v1.
func SetupRouter(app *fiber.App, handler *PredictionHandler, auth fiber.Handler) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(auth)

	app.Get("/health", handler.HandleHealth)
	app.Get("/usage", handler.HandleUsage)

	predictions := func(r fiber.Router) {
		r.Post("/predicaoVenda", handler.HandleSales)
		r.Post("/classificacaoCliente", handler.HandleClient)
		r.Post("/predicaoDemanda", handler.HandleDemand)
		r.Post("/classificacaoSentimento", handler.HandleSentiment)
	}
	predictions(app)
	predictions(app.Group("/api/v1"))
}
