package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/izonak/localbox/internal/category"
	"github.com/izonak/localbox/internal/http/requests"
	"github.com/izonak/localbox/internal/storage"
)

type FilesController struct {
	store *storage.Store
}

func NewFilesController(store *storage.Store) *FilesController {
	return &FilesController{store: store}
}

// List serves GET /api/files. No category (or "all") flattens every
// category's root-level files into one list.
func (f *FilesController) List(c *fiber.Ctx) error {
	listing, err := f.store.List(
		c.Query("category"),
		c.Query("path"),
		c.Query("sort"),
		c.Query("order"),
	)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(listing)
}

// Categories serves GET /api/categories.
func (f *FilesController) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": category.All()})
}

// Rename serves PUT /api/files/:category/*.
func (f *FilesController) Rename(c *fiber.Ctx) error {
	req, err := requests.Validate[requests.Rename](c)
	if err != nil {
		return badRequest(c, err)
	}
	newName, err := f.store.Rename(c.UserContext(), c.Params("category"), wildcardPath(c, ""), req.NewName)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "File renamed", "newName": newName})
}

// Delete serves DELETE /api/files/:category/*.
func (f *FilesController) Delete(c *fiber.Ctx) error {
	if err := f.store.DeleteFile(c.UserContext(), c.Params("category"), wildcardPath(c, "")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "File deleted"})
}

// Move serves PATCH /api/files/:category/*/move.
func (f *FilesController) Move(c *fiber.Ctx) error {
	req, err := requests.Validate[requests.Move](c)
	if err != nil {
		return badRequest(c, err)
	}
	entry, err := f.store.Move(c.UserContext(), c.Params("category"), wildcardPath(c, "move"), req.NewCategory, req.TargetPath)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "File moved", "entry": entry})
}
