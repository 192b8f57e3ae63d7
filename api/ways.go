package api

import (
	"net/http"

	"github.com/Domenick1991/airlines/internal/api/views"
	"github.com/Domenick1991/airlines/internal/service/ways"
	"github.com/gin-gonic/gin"
)

type WaysHandler struct {
	finder ways.WaysUseCase
}

type waysQuery struct {
	Airport1 int64  `form:"airport1"`
	Airport2 int64  `form:"airport2"`
	Date     string `form:"date"`
}

func NewWaysHandler(finder ways.WaysUseCase) *WaysHandler {
	return &WaysHandler{finder: finder}
}

func (h *WaysHandler) Register(router *gin.RouterGroup, middleware ...gin.HandlerFunc) {
	router.GET("", append(middleware, h.find)...)
}

func (h *WaysHandler) find(c *gin.Context) {
	var q waysQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "airport1 and airport2 must be integer ids"})
		return
	}

	res, err := h.finder.FindWays(c.Request.Context(), ways.Query{
		Source:      q.Airport1,
		Destination: q.Airport2,
		Date:        q.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": views.WaysResult(res)})
}
