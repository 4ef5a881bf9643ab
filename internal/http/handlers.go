package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/GriffinCanCode/uncertain/internal/api/middleware"
	"github.com/GriffinCanCode/uncertain/internal/service"
	"github.com/GriffinCanCode/uncertain/internal/shared/types"
	"github.com/GriffinCanCode/uncertain/internal/worksheet"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version is reported by the root endpoint.
const Version = "0.1.0"

// WorksheetObserver receives the step count of each evaluated worksheet.
type WorksheetObserver interface {
	ObserveWorksheet(steps int)
}

// Options configures the handler set.
type Options struct {
	MaxWorksheetBytes int64
	Limits            worksheet.Limits
	Observer          WorksheetObserver
	Logger            *zap.Logger
}

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	opts     Options
	log      *zap.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, opts Options) *Handlers {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{registry: registry, opts: opts, log: log}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "uncertain",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateToolID(req.ToolID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := middleware.GetRequestID(c)
	clientIP := c.ClientIP()
	ctx := &types.Context{RequestID: &requestID, ClientIP: &clientIP}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, ctx)
	if err != nil {
		// Unknown services are a client mistake, not a server fault
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// EvaluateWorksheet decodes a worksheet body and returns every named quantity
func (h *Handlers) EvaluateWorksheet(c *gin.Context) {
	format, err := requestFormat(c)
	if err != nil {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		return
	}

	body := c.Request.Body
	if h.opts.MaxWorksheetBytes > 0 {
		body = http.MaxBytesReader(c.Writer, body, h.opts.MaxWorksheetBytes)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "worksheet too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sheet, err := worksheet.Decode(data, format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := worksheet.Evaluate(c.Request.Context(), sheet, h.opts.Limits)
	if err != nil {
		h.log.Debug("worksheet rejected",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, worksheet.ErrTooManySteps) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if h.opts.Observer != nil {
		h.opts.Observer.ObserveWorksheet(len(sheet.Steps))
	}

	c.JSON(http.StatusOK, gin.H{
		"format":     string(format),
		"quantities": quantityData(results),
	})
}

// requestFormat prefers ?format= and falls back to Content-Type.
func requestFormat(c *gin.Context) (worksheet.Format, error) {
	if raw := c.Query("format"); raw != "" {
		return worksheet.ParseFormat(raw)
	}
	return worksheet.FormatFromContentType(strings.TrimSpace(c.ContentType())), nil
}
