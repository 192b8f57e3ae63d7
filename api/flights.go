package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airlines/internal/api/views"
	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/Domenick1991/airlines/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightListResponse struct {
	Page    int                `json:"page"`
	Limit   int                `json:"limit"`
	Results []views.FlightView `json:"results"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	filter := domain.FlightFilter{DepartureDate: c.Query("departure_date")}
	if route := c.Query("route"); route != "" {
		id, err := strconv.ParseInt(route, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "route must be an integer id"})
			return
		}
		filter.RouteID = id
	}

	page := getPagination(c)
	filter.Limit = page.Limit
	filter.Offset = page.Skip

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, flightListResponse{
		Page:    page.Page,
		Limit:   page.Limit,
		Results: views.Flights(list),
	})
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}
