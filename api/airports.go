package api

import (
	"net/http"

	"github.com/Domenick1991/airlines/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service catalog.CatalogUseCase
}

type createAirportRequest struct {
	Name string `json:"name" validate:"required"`
	City string `json:"closest_big_city" validate:"required"`
}

func NewAirportHandler(service catalog.CatalogUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *AirportHandler) list(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context(), c.Query("name"), c.Query("closest_big_city"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *AirportHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airport, err := h.service.GetAirport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) create(c *gin.Context) {
	var req createAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if details := validateRequest(req); details != nil {
		respondValidationError(c, details)
		return
	}

	airport, err := h.service.CreateAirport(c.Request.Context(), catalog.CreateAirportInput{
		Name: req.Name,
		City: req.City,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airport)
}
