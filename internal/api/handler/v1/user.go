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

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	AddUser(ctx context.Context, username, password string) (domain.User, error)
	UpdateUsername(ctx context.Context, id uint, username string) error
	DeleteUser(ctx context.Context, id uint) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

func (h *UserHandler) HandleListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error loading users", err)

		return
	}

	c.HTML(http.StatusOK, "users.html", gin.H{"Users": users, "Error": nil})
}

func (h *UserHandler) HandleAddUser(c *gin.Context) {
	var req request.AddUserRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if err := req.Validate(); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if _, err := h.svc.AddUser(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.renderListWithError(c, "Username sudah terdaftar")

			return
		}

		err = fmt.Errorf("v1.HandleAddUser -> h.svc.AddUser -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error adding user", err)

		return
	}

	response.Redirect(c, "/users")
}

func (h *UserHandler) HandleEditUser(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		// A malformed id matches no row; the update is a no-op.
		response.Redirect(c, "/users")

		return
	}

	var req request.EditUserRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if err := req.Validate(); err != nil {
		h.renderListWithError(c, err.Error())

		return
	}

	if err := h.svc.UpdateUsername(c.Request.Context(), id, req.Username); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.renderListWithError(c, "Username sudah terdaftar")

			return
		}

		err = fmt.Errorf("v1.HandleEditUser -> h.svc.UpdateUsername -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error updating user", err)

		return
	}

	response.Redirect(c, "/users")
}

func (h *UserHandler) HandleDeleteUser(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.Redirect(c, "/users")

		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error deleting user", err)

		return
	}

	response.Redirect(c, "/users")
}

func (h *UserHandler) renderListWithError(c *gin.Context, msg string) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.renderListWithError -> h.svc.ListUsers -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Error loading users", err)

		return
	}

	c.HTML(http.StatusOK, "users.html", gin.H{"Users": users, "Error": msg})
}
