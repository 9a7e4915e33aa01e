package controllers

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/izonak/localbox/internal/archiver"
	"github.com/izonak/localbox/internal/logging"
	"github.com/izonak/localbox/internal/storage"
	"github.com/izonak/localbox/internal/utils"
)

type TransferController struct {
	store *storage.Store
	log   logging.Logger
}

func NewTransferController(store *storage.Store, log logging.Logger) *TransferController {
	return &TransferController{store: store, log: log}
}

// Download serves GET /api/download/:category/* with attachment disposition.
func (t *TransferController) Download(c *fiber.Ctx) error {
	path, err := t.store.FilePath(c.Params("category"), wildcardPath(c, ""))
	if err != nil {
		return fail(c, err)
	}
	return c.Download(path, filepath.Base(path))
}

// Thumbnail serves GET /api/thumbnail/:category/*: image files only, with
// long-lived cache headers so browsers stop re-fetching grid previews.
func (t *TransferController) Thumbnail(c *fiber.Ctx) error {
	rel := wildcardPath(c, "")
	if !utils.IsImage(rel) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "not an image file"})
	}
	path, err := t.store.FilePath(c.Params("category"), rel)
	if err != nil {
		return fail(c, err)
	}
	c.Set("Cache-Control", "public, max-age=31536000, immutable")
	return c.SendFile(path)
}

// DownloadFolder serves GET /api/download-folder/:category/*, streaming the
// folder's recursive contents as a zip archive.
func (t *TransferController) DownloadFolder(c *fiber.Ctx) error {
	rel := wildcardPath(c, "")
	dir, err := t.store.FolderPath(c.Params("category"), rel)
	if err != nil {
		return fail(c, err)
	}
	name := filepath.Base(dir) + ".zip"
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		// Headers are gone by now; a mid-stream failure can only be logged.
		if err := archiver.WriteZip(w, dir); err != nil {
			t.log.Error(context.Background(), "zip stream aborted", "dir", dir, "error", err)
		}
		w.Flush()
	})
	return nil
}
