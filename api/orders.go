package api

import (
	"net/http"

	"github.com/Domenick1991/airlines/internal/service/orders"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service orders.OrderUseCase
}

type passengerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type ticketRequest struct {
	Flight    int64            `json:"flight" validate:"required,gt=0"`
	Row       int              `json:"row" validate:"required,gte=1"`
	Seat      int              `json:"seat" validate:"required,gte=1"`
	Passenger passengerRequest `json:"passenger"`
}

type createOrderRequest struct {
	Tickets []ticketRequest `json:"tickets" validate:"required,min=1,dive"`
}

func NewOrderHandler(service orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

// Register mounts the order endpoints; all of them require RequireUser upstream.
func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.POST("/:id/cancel", h.cancel)
}

func (h *OrderHandler) list(c *gin.Context) {
	list, err := h.service.ListOrders(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *OrderHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.service.GetOrder(c.Request.Context(), userID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if details := validateRequest(req); details != nil {
		respondValidationError(c, details)
		return
	}

	input := orders.CreateOrderInput{
		UserID:  userID(c),
		Tickets: make([]orders.TicketInput, 0, len(req.Tickets)),
	}
	for _, t := range req.Tickets {
		input.Tickets = append(input.Tickets, orders.TicketInput{
			FlightID:  t.Flight,
			Row:       t.Row,
			Seat:      t.Seat,
			FirstName: t.Passenger.FirstName,
			LastName:  t.Passenger.LastName,
		})
	}

	order, err := h.service.CreateOrder(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.service.CancelOrder(c.Request.Context(), userID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
