package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	ratesdomain "orders-retriever/internal/features/rates/domain"
	"orders-retriever/internal/features/retrieval/domain"
	"orders-retriever/internal/features/retrieval/service"
)

// RetrievalHandler handles HTTP requests for order retrieval.
type RetrievalHandler struct {
	retriever *service.Retriever
}

// NewRetrievalHandler creates a new RetrievalHandler.
func NewRetrievalHandler(retriever *service.Retriever) *RetrievalHandler {
	return &RetrievalHandler{
		retriever: retriever,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// RetrievalResponse is the normalized result of one single-day retrieval.
type RetrievalResponse struct {
	// Marketplace is the marketplace code the retrieval ran for.
	Marketplace string `json:"marketplace"`
	// Date is the requested yyyy-MM-dd calendar day.
	Date string `json:"date"`
	// Orders are the normalized order rows.
	Orders []domain.OrderRecord `json:"orders"`
	// Items are the normalized line-item rows.
	Items []domain.ItemRecord `json:"items"`
}

// GetOrders godoc
// @Summary Retrieve one day of orders for a marketplace
// @Description Fetches all orders and line items created during one calendar day of the marketplace's timezone, normalized to USD
// @Tags orders
// @Accept json
// @Produce json
// @Param marketplace path string true "Marketplace code (e.g., US, DE, GB)"
// @Param date query string true "Calendar day in yyyy-MM-dd"
// @Param timezone query string false "IANA timezone overriding the marketplace's business-day timezone"
// @Success 200 {object} RetrievalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders/{marketplace} [get]
func (h *RetrievalHandler) GetOrders(c *fiber.Ctx) error {
	marketplace := c.Params("marketplace")
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "date query parameter is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	var orders []domain.OrderRecord
	var items []domain.ItemRecord
	var err error
	if timezone := c.Query("timezone"); timezone != "" {
		orders, items, err = h.retriever.RetrieveOrdersInTimezone(c.Context(), marketplace, date, timezone)
	} else {
		orders, items, err = h.retriever.RetrieveOrders(c.Context(), marketplace, date)
	}
	if err != nil {
		return h.errorResponse(c, err)
	}

	if orders == nil {
		orders = []domain.OrderRecord{}
	}
	if items == nil {
		items = []domain.ItemRecord{}
	}
	return c.JSON(RetrievalResponse{
		Marketplace: marketplace,
		Date:        date,
		Orders:      orders,
		Items:       items,
	})
}

// errorResponse maps the retrieval error taxonomy onto HTTP statuses.
func (h *RetrievalHandler) errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var inputErr *domain.InputError
	var confErr *domain.ConfigurationError
	var missingErr *ratesdomain.MissingRateError
	var retrErr *domain.RetrievalError
	switch {
	case errors.As(err, &inputErr):
		status = fiber.StatusBadRequest
	case errors.As(err, &confErr):
		status = fiber.StatusNotFound
	case errors.As(err, &missingErr):
		status = fiber.StatusUnprocessableEntity
	case errors.As(err, &retrErr):
		status = fiber.StatusBadGateway
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}
