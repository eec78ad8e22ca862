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

type StockService interface {
	ListStocks(ctx context.Context) ([]domain.Stock, error)
	AddStock(ctx context.Context, productName string, quantity int) (domain.Stock, error)
}

type StockHandler struct {
	svc StockService
}

func NewStockHandler(svc StockService) *StockHandler {
	return &StockHandler{
		svc: svc,
	}
}

func (h *StockHandler) HandleListStocks(c *gin.Context) {
	stocks, err := h.svc.ListStocks(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStocks -> h.svc.ListStocks -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error loading stocks", err)

		return
	}

	c.HTML(http.StatusOK, "stocks.html", gin.H{"Stocks": stocks, "Error": nil})
}

func (h *StockHandler) HandleAddStock(c *gin.Context) {
	var req request.StockRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if err := req.Validate(); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	quantity, err := req.QuantityValue()
	if err != nil {
		h.renderListWithError(c, "Quantity must be a number")

		return
	}

	if _, err := h.svc.AddStock(c.Request.Context(), req.ProductName, quantity); err != nil {
		err = fmt.Errorf("v1.HandleAddStock -> h.svc.AddStock -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error adding stock", err)

		return
	}

	response.Redirect(c, "/stocks")
}

func (h *StockHandler) renderListWithError(c *gin.Context, msg string) {
	stocks, err := h.svc.ListStocks(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.renderListWithError -> h.svc.ListStocks -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error loading stocks", err)

		return
	}

	c.HTML(http.StatusOK, "stocks.html", gin.H{"Stocks": stocks, "Error": msg})
}
