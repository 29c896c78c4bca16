package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/constants"
	"github.com/falaoperador/admin-api/internal/dto"
	"github.com/falaoperador/admin-api/internal/middleware"
	"github.com/falaoperador/admin-api/internal/services"
)

// AuthHandler handles registration, login and session endpoints.
type AuthHandler struct {
	authService *services.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Registro handles POST /registro.
func (h *AuthHandler) Registro(c *gin.Context) {
	req, apiErr := dto.DecodeRegistro(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	usuario, err := h.authService.Registro(req)
	if err != nil {
		h.logError("registro", err)
		apierrors.Respond(c, err)
		return
	}

	apierrors.Created(c, dto.ToUsuarioDTO(*usuario))
}

// Login handles POST /login. Sessão é regravada a cada login.
func (h *AuthHandler) Login(c *gin.Context) {
	req, apiErr := dto.DecodeLogin(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	usuario, err := h.authService.Login(req)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, usuario.ID)
	if err := session.Save(); err != nil {
		h.logError("login", err)
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, dto.ToUsuarioDTO(*usuario), "Login realizado com sucesso")
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	if err := session.Save(); err != nil {
		h.logError("logout", err)
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, nil, "Logout realizado com sucesso")
}

// Me handles GET /me.
func (h *AuthHandler) Me(c *gin.Context) {
	caller := middleware.GetCaller(c)

	usuario, err := h.authService.GetUsuario(caller.ID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OK(c, dto.ToUsuarioDTO(*usuario))
}

func (h *AuthHandler) logError(op string, err error) {
	if _, ok := err.(*apierrors.APIError); ok {
		return
	}
	h.logger.Error("falha na autenticação", zap.String("op", op), zap.Error(err))
}
