package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/izonak/localbox/internal/logging"
	"github.com/izonak/localbox/internal/storage"
	"github.com/izonak/localbox/internal/sysinfo"
	"github.com/izonak/localbox/internal/utils"
)

type StatsController struct {
	store *storage.Store
	log   logging.Logger
}

func NewStatsController(store *storage.Store, log logging.Logger) *StatsController {
	return &StatsController{store: store, log: log}
}

// Stats serves GET /api/stats: per-category and total counts/bytes plus
// host disk and memory figures.
func (s *StatsController) Stats(c *fiber.Ctx) error {
	perCategory, totals, err := s.store.Stats()
	if err != nil {
		return fail(c, err)
	}
	s.log.Debug(c.UserContext(), "stats computed",
		"files", totals.Files,
		"size", utils.HumanSize(totals.Size),
	)
	return c.JSON(fiber.Map{
		"categories": perCategory,
		"total":      totals,
		"disk":       sysinfo.Disk(s.store.Base()),
		"memory":     sysinfo.Memory(),
	})
}
