package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airlines/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service catalog.CatalogUseCase
}

type createRouteRequest struct {
	Source      int64 `json:"source" validate:"required,gt=0"`
	Destination int64 `json:"destination" validate:"required,gt=0,nefield=Source"`
	Distance    int   `json:"distance" validate:"required,gt=0"`
}

func NewRouteHandler(service catalog.CatalogUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *RouteHandler) list(c *gin.Context) {
	source, ok := optionalID(c, "source")
	if !ok {
		return
	}
	destination, ok := optionalID(c, "destination")
	if !ok {
		return
	}

	routes, err := h.service.ListRoutes(c.Request.Context(), source, destination)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *RouteHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) create(c *gin.Context) {
	var req createRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if details := validateRequest(req); details != nil {
		respondValidationError(c, details)
		return
	}

	route, err := h.service.CreateRoute(c.Request.Context(), catalog.CreateRouteInput{
		SourceID:      req.Source,
		DestinationID: req.Destination,
		Distance:      req.Distance,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

func optionalID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer id"})
		return 0, false
	}
	return id, true
}
