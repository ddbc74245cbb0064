package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/weiawesome/pxid/internal/domain"
	"github.com/weiawesome/pxid/internal/service"
	"github.com/weiawesome/pxid/pkg/log"
	"github.com/weiawesome/pxid/pkg/prefixid"
	"github.com/weiawesome/pxid/pkg/response"
)

// Handler handles HTTP requests for the id service.
type Handler struct {
	idService service.IDService
}

// NewHandler creates a new HTTP handler.
func NewHandler(idService service.IDService) *Handler {
	return &Handler{idService: idService}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	api := r.Group("/api/v1")
	{
		ids := api.Group("/ids")
		{
			ids.POST("", h.Generate)
			ids.POST("/parse", h.ParseBatch)
			ids.GET("/:id", h.Parse)
			ids.GET("/:id/validate", h.Validate)
		}
	}
}

// Generate mints one or more ids.
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid generate request")
		response.BadRequest(c, "invalid request body", bindingDetails(err)...)
		return
	}

	result, err := h.idService.Generate(ctx, &req)
	if err != nil {
		h.writeError(c, err, "failed to generate ids")
		return
	}

	response.Created(c, result)
}

// Parse decodes a single id.
func (h *Handler) Parse(c *gin.Context) {
	result, err := h.idService.Parse(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "failed to parse id")
		return
	}
	response.Success(c, result)
}

// ParseBatch decodes a list of ids. Malformed entries are rejected by the
// prefixid binding rule before the service is called.
func (h *Handler) ParseBatch(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)
	var req domain.ParseBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid parse request")
		response.BadRequest(c, "invalid request body", bindingDetails(err)...)
		return
	}

	result, err := h.idService.ParseBatch(ctx, req.IDs)
	if err != nil {
		h.writeError(c, err, "failed to parse ids")
		return
	}
	response.Success(c, gin.H{"ids": result})
}

// Validate reports whether an id is valid, optionally for ?prefix=.
func (h *Handler) Validate(c *gin.Context) {
	response.Success(c, h.idService.Validate(c.Request.Context(), c.Param("id"), c.Query("prefix")))
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	l := log.Ctx(c.Request.Context())
	_ = c.Error(err)

	switch {
	case errors.Is(err, prefixid.ErrMissingSeparator):
		response.Error(c, http.StatusBadRequest, response.CodeMissingSeparator, err.Error())
	case errors.Is(err, prefixid.ErrParse):
		response.Error(c, http.StatusBadRequest, response.CodeParseFailure, err.Error())
	case errors.Is(err, prefixid.ErrInvalidPrefix):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidPrefix, err.Error())
	case errors.Is(err, prefixid.ErrIDTooLong):
		response.Error(c, http.StatusBadRequest, response.CodeIDTooLong, err.Error())
	case errors.Is(err, service.ErrBatchTooLarge):
		response.BadRequest(c, err.Error())
	default:
		l.Error().Err(err).Msg(fallback)
		response.InternalError(c, fallback)
	}
}

func bindingDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fe.Field()+": failed "+fe.Tag())
	}
	return details
}
