package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pasarkita/marketplace/internal/api/handler/v1/request"
	"github.com/pasarkita/marketplace/internal/api/handler/v1/response"
	"github.com/pasarkita/marketplace/internal/domain"
	"github.com/pasarkita/marketplace/internal/service"
)

type SellerService interface {
	ListSellers(ctx context.Context) ([]domain.Seller, error)
	GetSeller(ctx context.Context, id uint) (domain.Seller, error)
	AddSeller(ctx context.Context, name string) (domain.Seller, error)
	UpdateSeller(ctx context.Context, id uint, name string) error
	DeleteSeller(ctx context.Context, id uint) error
}

type SellerHandler struct {
	svc SellerService
}

func NewSellerHandler(svc SellerService) *SellerHandler {
	return &SellerHandler{
		svc: svc,
	}
}

func (h *SellerHandler) HandleListSellers(c *gin.Context) {
	sellers, err := h.svc.ListSellers(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSellers -> h.svc.ListSellers -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Database error", err)

		return
	}

	c.HTML(http.StatusOK, "sellers.html", gin.H{"Sellers": sellers, "Error": nil})
}

func (h *SellerHandler) HandleAddSeller(c *gin.Context) {
	var req request.SellerRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if err := req.Validate(); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if _, err := h.svc.AddSeller(c.Request.Context(), req.Name); err != nil {
		err = fmt.Errorf("v1.HandleAddSeller -> h.svc.AddSeller -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error adding seller", err)

		return
	}

	response.Redirect(c, "/sellers")
}

// HandleShowEditSeller serves the edit form for one seller.
func (h *SellerHandler) HandleShowEditSeller(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Redirect(c, "/sellers")

		return
	}

	seller, err := h.svc.GetSeller(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSellerNotFound) {
			response.RenderErr(c, http.StatusNotFound, "Seller not found", nil)

			return
		}

		err = fmt.Errorf("v1.HandleShowEditSeller -> h.svc.GetSeller -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Database error", err)

		return
	}

	c.HTML(http.StatusOK, "edit_seller.html", gin.H{"Seller": seller})
}

func (h *SellerHandler) HandleEditSeller(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		// A malformed id matches no row; the update is a no-op.
		response.Redirect(c, "/sellers")

		return
	}

	var req request.SellerRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if err := req.Validate(); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if err := h.svc.UpdateSeller(c.Request.Context(), id, req.Name); err != nil {
		err = fmt.Errorf("v1.HandleEditSeller -> h.svc.UpdateSeller -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error updating seller", err)

		return
	}

	response.Redirect(c, "/sellers")
}

func (h *SellerHandler) HandleDeleteSeller(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Redirect(c, "/sellers")

		return
	}

	if err := h.svc.DeleteSeller(c.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteSeller -> h.svc.DeleteSeller -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error deleting seller", err)

		return
	}

	response.Redirect(c, "/sellers")
}

func (h *SellerHandler) renderListWithError(c *gin.Context, msg string) {
	sellers, err := h.svc.ListSellers(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.renderListWithError -> h.svc.ListSellers -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Database error", err)

		return
	}

	c.HTML(http.StatusOK, "sellers.html", gin.H{"Sellers": sellers, "Error": msg})
}
