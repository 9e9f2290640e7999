package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"itemcompare/internal/dto"
	apperrors "itemcompare/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const TraceHeader = "X-Trace-Id"

type CatalogUseCase interface {
	ListProducts(ctx context.Context) ([]dto.ProductDTO, error)
	GetProduct(ctx context.Context, id int64) (*dto.ProductDTO, error)
	CompareProducts(ctx context.Context, csv string) ([]dto.ProductDTO, error)
	CountProducts(ctx context.Context) (int, error)
}

type ProductsController struct {
	useCase CatalogUseCase
	logger  *zap.Logger
}

func NewProductsController(useCase CatalogUseCase, logger *zap.Logger) *ProductsController {
	return &ProductsController{
		useCase: useCase,
		logger:  logger,
	}
}

// Routes mounts the handlers under the router it is given, normally /products.
// The static compare routes win over the {productId} pattern.
func (c *ProductsController) Routes(r chi.Router) {
	r.Get("/", c.ListProducts)
	r.Get("/compare", c.CompareProductsQuery)
	r.Get("/compare/", c.CompareProductsQuery)
	r.Get("/compare/{productIds}", c.CompareProducts)
	r.Get("/{productId}", c.GetProduct)
}

func (c *ProductsController) ListProducts(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(w)

	products, err := c.useCase.ListProducts(r.Context())
	if err != nil {
		c.handleError(w, r, err, logger)
		return
	}

	if len(products) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	c.writeJSON(w, http.StatusOK, products)
}

func (c *ProductsController) GetProduct(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(w)

	idStr := chi.URLParam(r, "productId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.Warn("invalid productId in path", zap.String("productId", idStr), zap.Error(err))
		c.handleError(w, r, apperrors.NewValidationError("productId must be an integer", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be an integer",
		}), logger)
		return
	}

	product, err := c.useCase.GetProduct(r.Context(), id)
	if err != nil {
		c.handleError(w, r, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, product)
}

// CompareProducts reads the csv from the path. chi hands the segment over
// still escaped when the request path carries escapes such as %2C.
func (c *ProductsController) CompareProducts(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "productIds")
	csv, err := url.PathUnescape(raw)
	if err != nil {
		logger := c.requestLogger(w)
		logger.Warn("invalid productIds escape in path", zap.String("productIds", raw), zap.Error(err))
		c.handleError(w, r, apperrors.NewValidationError("productIds is not a valid path segment", apperrors.ValidationDetail{
			Field:   "productIds",
			Message: "productIds is not a valid path segment",
		}), logger)
		return
	}
	c.compare(w, r, csv)
}

func (c *ProductsController) CompareProductsQuery(w http.ResponseWriter, r *http.Request) {
	c.compare(w, r, r.URL.Query().Get("ids"))
}

func (c *ProductsController) compare(w http.ResponseWriter, r *http.Request, csv string) {
	logger := c.requestLogger(w)

	products, err := c.useCase.CompareProducts(r.Context(), csv)
	if err != nil {
		c.handleError(w, r, err, logger)
		return
	}

	if len(products) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	logger.Debug("products compared", zap.Int("count", len(products)))
	c.writeJSON(w, http.StatusOK, products)
}

func (c *ProductsController) Health(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(w)

	n, err := c.useCase.CountProducts(r.Context())
	if err != nil {
		c.handleError(w, r, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Products: n})
}

// NotFound answers unknown routes with the same error body as the handlers.
func (c *ProductsController) NotFound(w http.ResponseWriter, r *http.Request) {
	c.requestLogger(w)
	c.writeErrorResponse(w, r, http.StatusNotFound, "no route for "+r.Method+" "+r.URL.Path)
}

func (c *ProductsController) requestLogger(w http.ResponseWriter) *zap.Logger {
	traceID := uuid.New().String()
	w.Header().Set(TraceHeader, traceID)
	return c.logger.With(zap.String("traceId", traceID))
}

// handleError translates error kinds into status codes. Internal details
// are logged and never returned to the client.
func (c *ProductsController) handleError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeErrorResponse(w, r, http.StatusBadRequest, ve.Message)
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, r, http.StatusNotFound, nf.Message)
		return
	}

	logger.Error("unexpected error", zap.String("path", r.URL.Path), zap.Error(err))
	c.writeErrorResponse(w, r, http.StatusInternalServerError, "an unexpected error occurred")
}

func (c *ProductsController) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	})
}

func (c *ProductsController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
