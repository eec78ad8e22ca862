package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pasarkita/marketplace/internal/api/handler/v1/request"
	"github.com/pasarkita/marketplace/internal/api/handler/v1/response"
	"github.com/pasarkita/marketplace/internal/domain"
)

type PriceService interface {
	ListPrices(ctx context.Context) ([]domain.Price, error)
	AddPrice(ctx context.Context, price float64) (domain.Price, error)
}

type PriceHandler struct {
	svc PriceService
}

func NewPriceHandler(svc PriceService) *PriceHandler {
	return &PriceHandler{
		svc: svc,
	}
}

func (h *PriceHandler) HandleListPrices(c *gin.Context) {
	prices, err := h.svc.ListPrices(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPrices -> h.svc.ListPrices -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error loading prices", err)

		return
	}

	c.HTML(http.StatusOK, "prices.html", gin.H{"Prices": prices, "Error": nil})
}

func (h *PriceHandler) HandleAddPrice(c *gin.Context) {
	var req request.PriceRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if err := req.Validate(); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	price, err := req.PriceValue()
	if err != nil {
		h.renderListWithError(c, "Price must be a number")

		return
	}

	if _, err := h.svc.AddPrice(c.Request.Context(), price); err != nil {
		err = fmt.Errorf("v1.HandleAddPrice -> h.svc.AddPrice -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error adding price", err)

		return
	}

	response.Redirect(c, "/prices")
}

func (h *PriceHandler) renderListWithError(c *gin.Context, msg string) {
	prices, err := h.svc.ListPrices(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.renderListWithError -> h.svc.ListPrices -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error loading prices", err)

		return
	}

	c.HTML(http.StatusOK, "prices.html", gin.H{"Prices": prices, "Error": msg})
}
