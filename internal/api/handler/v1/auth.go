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
	"github.com/pasarkita/marketplace/internal/session"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
}

type AuthHandler struct {
	svc      AuthService
	sessions *session.Manager
}

func NewAuthHandler(svc AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		sessions: sessions,
	}
}

func (h *AuthHandler) HandleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *AuthHandler) HandleShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Error": nil})
}

func (h *AuthHandler) HandleRegister(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": "Terjadi kesalahan saat mendaftar"})

		return
	}

	if err := req.Validate(); err != nil {
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": err.Error()})

		return
	}

	if _, err := h.svc.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.HTML(http.StatusOK, "register.html", gin.H{"Error": "Username sudah terdaftar"})

			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Terjadi kesalahan saat mendaftar", err)

		return
	}

	response.Redirect(c, "/login")
}

func (h *AuthHandler) HandleShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Error": nil})
}

func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Username atau password salah"})

		return
	}

	if err := req.Validate(); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Username atau password salah"})

		return
	}

	user, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Unknown username and wrong password render the exact same
		// message; the difference never leaves the server.
		if errors.Is(err, service.ErrWrongCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Username atau password salah"})

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Database error", err)

		return
	}

	if err := h.sessions.Issue(c.Request.Context(), c.Writer, c.Request, user); err != nil {
		err = fmt.Errorf("v1.HandleLogin -> h.sessions.Issue -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Database error", err)

		return
	}

	response.Redirect(c, "/users")
}

func (h *AuthHandler) HandleLogout(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context(), c.Writer, c.Request); err != nil {
		err = fmt.Errorf("v1.HandleLogout -> h.sessions.Clear -> %w", err)
		response.RenderErr(c, http.StatusInternalServerError, "Database error", err)

		return
	}

	response.Redirect(c, "/login")
}
