package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/izonak/localbox/internal/http/controllers"
	"github.com/izonak/localbox/internal/logging"
	"github.com/izonak/localbox/internal/storage"
	"github.com/izonak/localbox/internal/tusproto"
)

// Api wires the upload transport and the REST surface onto the app.
func Api(app fiber.Router, store *storage.Store, log logging.Logger, maxUpload int64) {
	tusproto.New(store, log, maxUpload).Register(app)

	files := controllers.NewFilesController(store)
	folders := controllers.NewFoldersController(store)
	transfer := controllers.NewTransferController(store, log)
	stats := controllers.NewStatsController(store, log)

	api := app.Group("/api")

	api.Get("/files", files.List)
	api.Get("/categories", files.Categories)
	api.Get("/stats", stats.Stats)

	api.Get("/folders/:category", folders.Recursive)
	api.Post("/folders", folders.Create)
	api.Delete("/folders/:category/*", folders.Delete)
	// Folder path ends in /move; the controller strips the action segment.
	api.Patch("/folders/:category/*", folders.Move)

	api.Put("/files/:category/*", files.Rename)
	api.Delete("/files/:category/*", files.Delete)
	api.Patch("/files/:category/*", files.Move)

	api.Get("/download/:category/*", transfer.Download)
	api.Get("/thumbnail/:category/*", transfer.Thumbnail)
	api.Get("/download-folder/:category/*", transfer.DownloadFolder)
}
