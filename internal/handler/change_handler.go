package handler

import (
	"go-backoffice-console/internal/model"
	"go-backoffice-console/internal/repository"
	"go-backoffice-console/pkg/clock"

	"github.com/gofiber/fiber/v2"
)

// ChangeSource is satisfied by *changefeed.Feed.
type ChangeSource interface {
	Since(seq uint64) []model.Change
}

type ChangeHandler struct {
	feed  ChangeSource
	repo  repository.ChangeLogRepository
	clock clock.Clock
}

// NewChangeHandler serves the live feed. repo may be nil when no database is
// configured; the history endpoints then answer 503.
func NewChangeHandler(feed ChangeSource, repo repository.ChangeLogRepository, clk clock.Clock) *ChangeHandler {
	return &ChangeHandler{feed: feed, repo: repo, clock: clk}
}

// GetChanges returns the retained changes after a sequence number.
// Query params: since (default 0)
func (h *ChangeHandler) GetChanges(c *fiber.Ctx) error {
	since := c.QueryInt("since")
	if since < 0 {
		since = 0
	}
	changes := h.feed.Since(uint64(since))
	if changes == nil {
		changes = []model.Change{}
	}
	var last uint64
	if n := len(changes); n > 0 {
		last = changes[n-1].Seq
	}
	return c.JSON(fiber.Map{"data": changes, "last": last})
}

// GetHistory returns the most recent persisted changes.
// Query params: limit (default 50, max 500)
func (h *ChangeHandler) GetHistory(c *fiber.Ctx) error {
	if h.repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Change history is not configured"})
	}
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	records, err := h.repo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch change history"})
	}
	return c.JSON(records)
}

// GetActivity counts persisted changes per entity and operation.
// Query params: days (default 7)
func (h *ChangeHandler) GetActivity(c *fiber.Ctx) error {
	if h.repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Change history is not configured"})
	}
	days := c.QueryInt("days", 7)
	if days <= 0 {
		days = 7
	}

	end := h.clock.Now()
	data, err := h.repo.GetActivity(end.AddDate(0, 0, -days), end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch change activity"})
	}
	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}
