// Package server exposes the transliteration engine, the mapping table
// and the saved history over HTTP.
package server

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/npillmayer/schuko/tracing"

	"github.com/helatype/helatype/config"
	"github.com/helatype/helatype/helatype"
)

// tracer writes to trace with key 'helatype.server'
func tracer() tracing.Trace {
	return tracing.Select("helatype.server")
}

type handlers struct {
	engine       *helatype.Engine
	history      *helatype.History
	historyLimit int
}

type transliterateRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"` // "si" (default) or "en"
}

type transliterateResponse struct {
	Text   string `json:"text"`
	Output string `json:"output"`
}

type mappingResponse struct {
	Romanized string `json:"romanized"`
	Glyph     string `json:"glyph"`
	Category  string `json:"category"`
}

// New makes the fiber app. history may be nil, the history routes then
// answer 503.
func New(cfg *config.Config, engine *helatype.Engine, history *helatype.History) *fiber.App {
	h := &handlers{
		engine:       engine,
		history:      history,
		historyLimit: cfg.HistoryLimit,
	}

	app := fiber.New(fiber.Config{
		AppName:      "helatype",
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Post("/transliterate", h.transliterate)
	api.Get("/mappings", h.mappings)
	api.Get("/history", h.listHistory)
	api.Post("/history", h.saveHistory)
	api.Delete("/history", h.clearHistory)
	api.Delete("/history/:id", h.deleteHistory)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	switch {
	case errors.Is(err, helatype.ErrEmptyText):
		code = fiber.StatusBadRequest
	case errors.Is(err, helatype.ErrNotFound):
		code = fiber.StatusNotFound
	}

	if code == fiber.StatusInternalServerError {
		tracer().Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (h *handlers) transliterate(c *fiber.Ctx) error {
	var req transliterateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON")
	}

	output := req.Text
	switch strings.ToLower(req.Mode) {
	case "", "si":
		output = h.engine.Transliterate(req.Text)
	case "en":
	default:
		return fiber.NewError(fiber.StatusBadRequest, "mode should be si or en")
	}

	return c.JSON(transliterateResponse{Text: req.Text, Output: output})
}

func (h *handlers) mappings(c *fiber.Ctx) error {
	results := []mappingResponse{}
	for _, entry := range h.engine.Table().Search(c.Query("q")) {
		results = append(results, mappingResponse{entry.Romanized, entry.Glyph, entry.Category.String()})
	}
	return c.JSON(results)
}

func (h *handlers) requireHistory() error {
	if h.history == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "history is not enabled")
	}
	return nil
}

func (h *handlers) listHistory(c *fiber.Ctx) error {
	if err := h.requireHistory(); err != nil {
		return err
	}

	limit := h.historyLimit
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "limit should be a number")
		}
		limit = n
	}

	items, err := h.history.List(c.UserContext(), limit)
	if err != nil {
		return err
	}
	if items == nil {
		items = []helatype.HistoryItem{}
	}
	return c.JSON(items)
}

func (h *handlers) saveHistory(c *fiber.Ctx) error {
	if err := h.requireHistory(); err != nil {
		return err
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON")
	}

	item, err := h.history.Save(c.UserContext(), req.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *handlers) deleteHistory(c *fiber.Ctx) error {
	if err := h.requireHistory(); err != nil {
		return err
	}

	if err := h.history.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *handlers) clearHistory(c *fiber.Ctx) error {
	if err := h.requireHistory(); err != nil {
		return err
	}

	if err := h.history.Clear(c.UserContext()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
