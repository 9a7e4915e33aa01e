// Package tusproto implements the core of the tus resumable-upload protocol
// (v1.0.0 with the creation and termination extensions) on fiber. Uploads
// assemble in the store's staging directory under a uuid, with a JSON
// sidecar holding length and client metadata; on completion the finished
// file is handed to the storage placement engine and the sidecar removed.
package tusproto

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/izonak/localbox/internal/category"
	"github.com/izonak/localbox/internal/logging"
	"github.com/izonak/localbox/internal/storage"
)

const tusVersion = "1.0.0"

// Handler serves the upload transport and invokes placement on completion.
type Handler struct {
	store   *storage.Store
	log     logging.Logger
	maxSize int64
}

// uploadInfo is the sidecar persisted next to the staging file.
type uploadInfo struct {
	ID        string            `json:"id"`
	Size      int64             `json:"size"`
	Metadata  map[string]string `json:"metadata"`
	CreatedAt time.Time         `json:"createdAt"`
}

func New(store *storage.Store, log logging.Logger, maxSize int64) *Handler {
	return &Handler{store: store, log: log, maxSize: maxSize}
}

// Register mounts the transport at /files.
func (h *Handler) Register(app fiber.Router) {
	app.Options("/files", h.capabilities)
	app.Options("/files/:id", h.capabilities)
	app.Post("/files", h.create)
	app.Head("/files/:id", h.status)
	app.Patch("/files/:id", h.append)
	app.Delete("/files/:id", h.terminate)
}

func (h *Handler) capabilities(c *fiber.Ctx) error {
	c.Set("Tus-Resumable", tusVersion)
	c.Set("Tus-Version", tusVersion)
	c.Set("Tus-Extension", "creation,termination")
	c.Set("Tus-Max-Size", strconv.FormatInt(h.maxSize, 10))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) create(c *fiber.Ctx) error {
	c.Set("Tus-Resumable", tusVersion)
	if c.Get("Tus-Resumable") != tusVersion {
		return c.SendStatus(fiber.StatusPreconditionFailed)
	}
	length, err := strconv.ParseInt(c.Get("Upload-Length"), 10, 64)
	if err != nil || length < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing or invalid Upload-Length"})
	}
	if h.maxSize > 0 && length > h.maxSize {
		return c.SendStatus(fiber.StatusRequestEntityTooLarge)
	}

	info := uploadInfo{
		ID:        uuid.NewString(),
		Size:      length,
		Metadata:  ParseMetadata(c.Get("Upload-Metadata")),
		CreatedAt: time.Now(),
	}
	if err := os.WriteFile(h.dataPath(info.ID), nil, 0o644); err != nil {
		return fmt.Errorf("creating staging file: %w", err)
	}
	if err := h.writeInfo(info); err != nil {
		os.Remove(h.dataPath(info.ID))
		return err
	}

	h.log.Debug(c.UserContext(), "upload created", "id", info.ID, "size", length)
	c.Set("Location", "/files/"+info.ID)
	return c.SendStatus(fiber.StatusCreated)
}

func (h *Handler) status(c *fiber.Ctx) error {
	c.Set("Tus-Resumable", tusVersion)
	info, offset, err := h.lookup(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	c.Set("Cache-Control", "no-store")
	c.Set("Upload-Offset", strconv.FormatInt(offset, 10))
	c.Set("Upload-Length", strconv.FormatInt(info.Size, 10))
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handler) append(c *fiber.Ctx) error {
	c.Set("Tus-Resumable", tusVersion)
	if c.Get("Tus-Resumable") != tusVersion {
		return c.SendStatus(fiber.StatusPreconditionFailed)
	}
	if c.Get("Content-Type") != "application/offset+octet-stream" {
		return c.SendStatus(fiber.StatusUnsupportedMediaType)
	}
	info, offset, err := h.lookup(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	claimed, err := strconv.ParseInt(c.Get("Upload-Offset"), 10, 64)
	if err != nil || claimed != offset {
		return c.SendStatus(fiber.StatusConflict)
	}

	body := c.Body()
	if offset+int64(len(body)) > info.Size {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "chunk exceeds declared upload length"})
	}
	f, err := os.OpenFile(h.dataPath(info.ID), os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening staging file: %w", err)
	}
	if _, err := f.Write(body); err != nil {
		f.Close()
		return fmt.Errorf("appending chunk: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	newOffset := offset + int64(len(body))
	c.Set("Upload-Offset", strconv.FormatInt(newOffset, 10))
	if newOffset == info.Size {
		if err := h.finish(c, info); err != nil {
			h.log.Error(c.UserContext(), "upload placement failed", "id", info.ID, "error", err)
			return err
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) terminate(c *fiber.Ctx) error {
	c.Set("Tus-Resumable", tusVersion)
	id := c.Params("id")
	if _, _, err := h.lookup(id); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	os.Remove(h.dataPath(id))
	os.Remove(h.infoPath(id))
	h.log.Debug(c.UserContext(), "upload terminated", "id", id)
	return c.SendStatus(fiber.StatusNoContent)
}

// finish hands the fully-assembled staging file to the placement engine and
// discards the metadata sidecar.
func (h *Handler) finish(c *fiber.Ctx, info uploadInfo) error {
	req := storage.PlacementRequest{
		StagingPath:  h.dataPath(info.ID),
		OriginalName: info.Metadata["filename"],
		RelativePath: info.Metadata["relativePath"],
	}
	if req.OriginalName == "" {
		req.OriginalName = fmt.Sprintf("upload_%d", time.Now().UnixMilli())
	}
	if cat, ok := category.Parse(info.Metadata["category"]); ok {
		req.Explicit = &storage.ExplicitTarget{
			Category: cat,
			Subpath:  info.Metadata["uploadPath"],
		}
	}

	entry, err := h.store.Place(c.UserContext(), req)
	if err != nil {
		return err
	}
	os.Remove(h.infoPath(info.ID))
	h.log.Info(c.UserContext(), "upload complete",
		"id", info.ID,
		"category", entry.Category,
		"name", entry.Name,
	)
	return nil
}

func (h *Handler) lookup(id string) (uploadInfo, int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return uploadInfo{}, 0, err
	}
	raw, err := os.ReadFile(h.infoPath(id))
	if err != nil {
		return uploadInfo{}, 0, err
	}
	var info uploadInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return uploadInfo{}, 0, err
	}
	st, err := os.Stat(h.dataPath(id))
	if err != nil {
		return uploadInfo{}, 0, err
	}
	return info, st.Size(), nil
}

func (h *Handler) writeInfo(info uploadInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return os.WriteFile(h.infoPath(info.ID), raw, 0o644)
}

func (h *Handler) dataPath(id string) string {
	return filepath.Join(h.store.StagingDir(), id)
}

func (h *Handler) infoPath(id string) string {
	return filepath.Join(h.store.StagingDir(), id+".info")
}
