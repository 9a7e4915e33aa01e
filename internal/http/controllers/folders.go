package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/izonak/localbox/internal/http/requests"
	"github.com/izonak/localbox/internal/storage"
)

type FoldersController struct {
	store *storage.Store
}

func NewFoldersController(store *storage.Store) *FoldersController {
	return &FoldersController{store: store}
}

// Recursive serves GET /api/folders/:category, listing every folder in the
// category with its full relative path.
func (f *FoldersController) Recursive(c *fiber.Ctx) error {
	folders, err := f.store.FoldersRecursive(c.Params("category"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"folders": folders})
}

// Create serves POST /api/folders.
func (f *FoldersController) Create(c *fiber.Ctx) error {
	req, err := requests.Validate[requests.CreateFolder](c)
	if err != nil {
		return badRequest(c, err)
	}
	folder, err := f.store.CreateFolder(c.UserContext(), req.Category, req.Path, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "folder": folder})
}

// Delete serves DELETE /api/folders/:category/*. Only empty folders go.
func (f *FoldersController) Delete(c *fiber.Ctx) error {
	if err := f.store.DeleteFolder(c.UserContext(), c.Params("category"), wildcardPath(c, "")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Folder deleted"})
}

// Move serves PATCH /api/folders/:category/*/move.
func (f *FoldersController) Move(c *fiber.Ctx) error {
	req, err := requests.Validate[requests.Move](c)
	if err != nil {
		return badRequest(c, err)
	}
	entry, err := f.store.Move(c.UserContext(), c.Params("category"), wildcardPath(c, "move"), req.NewCategory, req.TargetPath)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Folder moved", "entry": entry})
}
