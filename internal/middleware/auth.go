package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/constants"
	"github.com/falaoperador/admin-api/internal/policy"
	"github.com/falaoperador/admin-api/internal/repository"
)

// LoadSession resolve a sessão em um policy.Caller no contexto da
// requisição. Sessões órfãs (usuário removido) são tratadas como
// anônimas.
func LoadSession(usuarioRepo repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := policy.Anonymous

		session := sessions.Default(c)
		if raw := session.Get(constants.ContextKeyUserID); raw != nil {
			if id, ok := raw.(uint64); ok {
				if usuario, err := usuarioRepo.FindByID(id); err == nil {
					caller = policy.Caller{
						ID:            usuario.ID,
						Role:          usuario.Role,
						Authenticated: true,
					}
				}
			}
		}

		c.Set(constants.ContextKeyCaller, caller)
		c.Next()
	}
}

// RequireAuth aborts with 401 when the caller is not authenticated.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetCaller(c).Authenticated {
			apierrors.Respond(c, apierrors.ErrNaoAutenticado)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 401 for anonymous callers and 403 for
// authenticated non-admins.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := GetCaller(c)
		if !caller.Authenticated {
			apierrors.Respond(c, apierrors.ErrNaoAutenticado)
			c.Abort()
			return
		}
		if !caller.IsAdmin() {
			apierrors.Respond(c, apierrors.ErrAcessoNegado)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCaller returns the caller resolved by LoadSession. Fora da cadeia
// de middleware devolve o anônimo.
func GetCaller(c *gin.Context) policy.Caller {
	if raw, ok := c.Get(constants.ContextKeyCaller); ok {
		if caller, ok := raw.(policy.Caller); ok {
			return caller
		}
	}
	return policy.Anonymous
}
