package handler

import (
	"errors"
	"log"

	"go-backoffice-console/internal/service"
	"go-backoffice-console/internal/store"
	"go-backoffice-console/pkg/idcodec"

	"github.com/gofiber/fiber/v2"
)

type listItem[T any] struct {
	Item        T      `json:"item"`
	Selected    bool   `json:"selected"`
	StatusColor string `json:"statusColor,omitempty"`
}

type listResponse[T any] struct {
	Data          []listItem[T] `json:"data"`
	Total         int           `json:"total"`
	SelectedCount int           `json:"selectedCount"`
}

// sendList wraps items with their selection flag. color may be nil.
func sendList[T store.Keyed](c *fiber.Ctx, items []T, sel service.Selection, color func(T) string) error {
	resp := listResponse[T]{
		Data:          make([]listItem[T], 0, len(items)),
		Total:         len(items),
		SelectedCount: len(sel.Selected()),
	}
	for _, it := range items {
		row := listItem[T]{Item: it, Selected: sel.IsSelected(it.Key())}
		if color != nil {
			row.StatusColor = color(it)
		}
		resp.Data = append(resp.Data, row)
	}
	return c.JSON(resp)
}

// sendError maps service errors to a status code.
func sendError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	var berr *service.BackendError
	var rerr requestError
	switch {
	case errors.As(err, &rerr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": string(rerr)})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Validation failed", "details": verr.Messages})
	case errors.Is(err, idcodec.ErrInvalidIDFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	case errors.Is(err, service.ErrDetailUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &berr):
		log.Printf("Backend write failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Backend request failed", "details": []string{berr.Error()}})
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

// requestError is a malformed request, answered with 400 and its text.
type requestError string

func (e requestError) Error() string { return string(e) }

const (
	errInvalidJSON requestError = "Invalid JSON"
	errNoSelection requestError = "No items selected"
)

type idsRequest struct {
	IDs []string `json:"ids"`
}

// bulkIDs reads explicit ids from the body, or takes the current selection
// when the body names none.
func bulkIDs(c *fiber.Ctx, sel service.Selection) ([]string, error) {
	var req idsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return nil, errInvalidJSON
		}
	}
	if len(req.IDs) == 0 {
		req.IDs = sel.Selected()
	}
	if len(req.IDs) == 0 {
		return nil, errNoSelection
	}
	return req.IDs, nil
}

func toggle(c *fiber.Ctx, sel service.Selection) error {
	id := c.Params("id")
	on, err := sel.Toggle(id)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{"id": id, "selected": on, "selectedCount": len(sel.Selected())})
}

func clearSelection(c *fiber.Ctx, sel service.Selection) error {
	sel.ClearSelection()
	return c.SendStatus(fiber.StatusNoContent)
}
