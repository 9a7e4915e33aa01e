package controllers

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/izonak/localbox/internal/storage"
)

// fail maps a storage error onto its HTTP status and a JSON error body.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, storage.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, storage.ErrInvalidInput):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// wildcardPath returns the route's wildcard segment, percent-decoded, with
// an optional trailing action segment (e.g. "/move") stripped.
func wildcardPath(c *fiber.Ctx, action string) string {
	raw := c.Params("*")
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	if action != "" {
		raw = strings.TrimSuffix(raw, "/"+action)
	}
	return strings.Trim(raw, "/")
}
