package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/dto"
	"github.com/falaoperador/admin-api/internal/middleware"
	"github.com/falaoperador/admin-api/internal/policy"
	"github.com/falaoperador/admin-api/internal/services"
	"github.com/falaoperador/admin-api/internal/utils"
)

// UsuarioHandler handles user profile endpoints.
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
	logger         *zap.Logger
}

// NewUsuarioHandler creates a new UsuarioHandler.
func NewUsuarioHandler(usuarioService *services.UsuarioService, logger *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService, logger: logger}
}

// List handles GET /usuarios.
func (h *UsuarioHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	usuarios, total, err := h.usuarioService.List(params)
	if err != nil {
		h.logger.Error("falha ao listar usuários", zap.Error(err))
		apierrors.Respond(c, err)
		return
	}

	apierrors.OK(c, dto.ToUsuarioListResponse(usuarios, params.Page, params.Limit, total))
}

// Get handles GET /usuarios/:id. Terceiros recebem a representação
// pública; o próprio usuário e administradores, a completa.
func (h *UsuarioHandler) Get(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	usuario, err := h.usuarioService.Get(id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	caller := middleware.GetCaller(c)
	if policy.Allowed(policy.EntityUsuario, policy.OpRead, caller, policy.ForUsuario(*usuario)) {
		apierrors.OK(c, dto.ToUsuarioDTO(*usuario))
		return
	}
	apierrors.OK(c, dto.ToUsuarioPublicoDTO(*usuario))
}

// Update handles PUT /usuarios/:id.
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	req, apiErr := dto.DecodeUsuarioUpdate(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	foto, _ := c.FormFile("foto")

	usuario, err := h.usuarioService.Update(middleware.GetCaller(c), id, req, foto)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, dto.ToUsuarioDTO(*usuario), "Usuário atualizado com sucesso")
}

// UpdateSenha handles PUT /usuarios/:id/senha.
func (h *UsuarioHandler) UpdateSenha(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	req, apiErr := dto.DecodeSenhaUpdate(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	if err := h.usuarioService.UpdateSenha(middleware.GetCaller(c), id, req); err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, nil, "Senha atualizada com sucesso")
}

// Delete handles DELETE /usuarios/:id.
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, apiErr := parseID(c)
	if apiErr != nil {
		apierrors.Respond(c, apiErr)
		return
	}

	if err := h.usuarioService.Delete(middleware.GetCaller(c), id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	apierrors.OKWithMessage(c, nil, "Usuário removido com sucesso")
}
