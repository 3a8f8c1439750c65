package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"wheel/internal/metrics"
	"wheel/internal/store"
	"wheel/internal/wheel"
)

// maxItemTextLen is the longest item label the wheel accepts.
const maxItemTextLen = 20

// HTTPHandler holds the dependencies for the HTTP handlers.
type HTTPHandler struct {
	store   *store.MemStore
	spinner *wheel.Spinner
	metrics *metrics.Metrics
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(st *store.MemStore, spinner *wheel.Spinner, m *metrics.Metrics) *HTTPHandler {
	return &HTTPHandler{
		store:   st,
		spinner: spinner,
		metrics: m,
	}
}

// RegisterRoutes registers all the API routes.
func (h *HTTPHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/api/wheel-items", h.ListItems)
	router.POST("/api/wheel-items", h.AddItem)
	router.DELETE("/api/wheel-items/:id", h.DeleteItem)
	router.DELETE("/api/wheel-items", h.ClearItems)
	router.POST("/api/spins", h.RecordSpin)
	router.GET("/api/spins", h.ListSpins)
	router.GET("/api/spin-stats", h.SpinStats)
	router.POST("/api/spin", h.Spin)
}

// errorBody is the shape of every error response.
type errorBody struct {
	Message string `json:"message"`
}

// addItemRequest is the body of POST /api/wheel-items. Order is a pointer
// so an omitted field can default to 0.
type addItemRequest struct {
	Text  string `json:"text"`
	Color string `json:"color"`
	Order *int   `json:"order"`
}

// recordSpinRequest is the body of POST /api/spins.
type recordSpinRequest struct {
	Result string `json:"result"`
	SpunAt string `json:"spunAt"`
}

// ListItems handles GET /api/wheel-items.
func (h *HTTPHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListItems())
}

// AddItem handles POST /api/wheel-items. The text is trimmed and must be
// 1-20 characters; the color must be present; order defaults to 0.
func (h *HTTPHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Message: "Invalid wheel item data"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" || utf8.RuneCountInString(text) > maxItemTextLen || req.Color == "" {
		c.JSON(http.StatusBadRequest, errorBody{Message: "Invalid wheel item data"})
		return
	}
	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	item := h.store.CreateItem(text, req.Color, order)
	h.metrics.ItemsCreated.Inc()
	c.JSON(http.StatusCreated, item)
}

// DeleteItem handles DELETE /api/wheel-items/:id. A non-existent id is a
// distinct not-found outcome, not a validation error.
func (h *HTTPHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Message: "Invalid wheel item id"})
		return
	}

	if !h.store.DeleteItem(id) {
		c.JSON(http.StatusNotFound, errorBody{Message: "Wheel item not found"})
		return
	}
	h.metrics.ItemsDeleted.Inc()
	c.Status(http.StatusNoContent)
}

// ClearItems handles DELETE /api/wheel-items.
func (h *HTTPHandler) ClearItems(c *gin.Context) {
	h.store.ClearItems()
	h.metrics.ItemsCleared.Inc()
	c.Status(http.StatusNoContent)
}

// RecordSpin handles POST /api/spins. The client reports the winner it
// resolved after its animation completed; spunAt must be an RFC 3339
// timestamp.
func (h *HTTPHandler) RecordSpin(c *gin.Context) {
	var req recordSpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Message: "Invalid spin data"})
		return
	}

	if strings.TrimSpace(req.Result) == "" || req.SpunAt == "" {
		c.JSON(http.StatusBadRequest, errorBody{Message: "Invalid spin data"})
		return
	}
	if _, err := time.Parse(time.RFC3339, req.SpunAt); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Message: "Invalid spin data"})
		return
	}

	rec := h.store.CreateSpinRecord(req.Result, req.SpunAt)
	h.metrics.SpinsRecorded.Inc()
	c.JSON(http.StatusCreated, rec)
}

// ListSpins handles GET /api/spins, most recent first.
func (h *HTTPHandler) ListSpins(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListSpinHistory())
}

// SpinStats handles GET /api/spin-stats.
func (h *HTTPHandler) SpinStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetSpinStats())
}

// Spin handles POST /api/spin: a headless server-side spin that draws a
// rotation, waits out the animation window and records the winner. An
// empty wheel or an in-flight spin is reported as a conflict.
func (h *HTTPHandler) Spin(c *gin.Context) {
	result, err := h.spinner.Spin()
	if err != nil {
		if errors.Is(err, wheel.ErrEmptyWheel) || errors.Is(err, wheel.ErrSpinInProgress) {
			c.JSON(http.StatusConflict, errorBody{Message: err.Error()})
			return
		}
		logger.Infof("spin failed: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody{Message: "Failed to spin the wheel"})
		return
	}
	h.metrics.SpinsRecorded.Inc()
	c.JSON(http.StatusOK, result)
}
