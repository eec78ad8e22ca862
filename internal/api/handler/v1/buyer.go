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

type BuyerService interface {
	ListBuyers(ctx context.Context) ([]domain.Buyer, error)
	AddBuyer(ctx context.Context, name string) (domain.Buyer, error)
}

type BuyerHandler struct {
	svc BuyerService
}

func NewBuyerHandler(svc BuyerService) *BuyerHandler {
	return &BuyerHandler{
		svc: svc,
	}
}

func (h *BuyerHandler) HandleListBuyers(c *gin.Context) {
	buyers, err := h.svc.ListBuyers(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListBuyers -> h.svc.ListBuyers -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error loading buyers", err)

		return
	}

	c.HTML(http.StatusOK, "buyers.html", gin.H{"Buyers": buyers, "Error": nil})
}

func (h *BuyerHandler) HandleAddBuyer(c *gin.Context) {
	var req request.BuyerRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if err := req.Validate(); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if _, err := h.svc.AddBuyer(c.Request.Context(), req.Name); err != nil {
		err = fmt.Errorf("v1.HandleAddBuyer -> h.svc.AddBuyer -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error adding buyer", err)

		return
	}

	response.Redirect(c, "/buyers")
}

func (h *BuyerHandler) renderListWithError(c *gin.Context, msg string) {
	buyers, err := h.svc.ListBuyers(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.renderListWithError -> h.svc.ListBuyers -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error loading buyers", err)

		return
	}

	c.HTML(http.StatusOK, "buyers.html", gin.H{"Buyers": buyers, "Error": msg})
}
