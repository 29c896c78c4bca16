// Package policy concentra as regras de autorização por entidade e
// operação em uma única tabela declarativa, consultada por todos os
// handlers. Cada regra é avaliada com a identidade do chamador no
// momento da requisição.
package policy

import (
	"github.com/falaoperador/admin-api/internal/apierrors"
	"github.com/falaoperador/admin-api/internal/models"
)

// Caller é a identidade autenticada (ou a ausência dela) da requisição.
type Caller struct {
	ID            uint64
	Role          models.Role
	Authenticated bool
}

// IsAdmin reports whether the caller is an authenticated admin.
func (c Caller) IsAdmin() bool {
	return c.Authenticated && c.Role == models.RoleAdmin
}

// Anonymous é o chamador não autenticado.
var Anonymous = Caller{}

type Operation string

const (
	OpRead  Operation = "read"
	OpWrite Operation = "write"
)

type Entity string

const (
	EntityUsuario      Entity = "usuario"
	EntityEvento       Entity = "evento"
	EntityTarefa       Entity = "tarefa"
	EntityPatrocinador Entity = "patrocinador"
)

// Resource reúne os fatos de um registro relevantes para autorização.
type Resource struct {
	OwnerID      uint64
	Publico      bool
	Participante bool
}

type predicate func(c Caller, r Resource) bool

func isOwner(c Caller, r Resource) bool {
	return c.Authenticated && c.ID == r.OwnerID
}

func ownerOrAdmin(c Caller, r Resource) bool {
	return c.IsAdmin() || isOwner(c, r)
}

var rules = map[Entity]map[Operation]predicate{
	EntityUsuario: {
		OpRead:  ownerOrAdmin,
		OpWrite: ownerOrAdmin,
	},
	EntityEvento: {
		OpRead: func(c Caller, r Resource) bool {
			return r.Publico || c.IsAdmin() || isOwner(c, r) || (c.Authenticated && r.Participante)
		},
		OpWrite: ownerOrAdmin,
	},
	EntityTarefa: {
		OpRead: func(c Caller, r Resource) bool {
			return r.Publico || ownerOrAdmin(c, r)
		},
		OpWrite: ownerOrAdmin,
	},
	EntityPatrocinador: {
		OpRead: func(c Caller, r Resource) bool {
			return true
		},
		OpWrite: func(c Caller, r Resource) bool {
			return c.IsAdmin()
		},
	},
}

// Allowed consulta a tabela de regras.
func Allowed(e Entity, op Operation, c Caller, r Resource) bool {
	ops, ok := rules[e]
	if !ok {
		return false
	}
	rule, ok := ops[op]
	if !ok {
		return false
	}
	return rule(c, r)
}

// Check devolve nil quando permitido; caso contrário distingue
// não-autenticado (401) de proibido (403).
func Check(e Entity, op Operation, c Caller, r Resource) error {
	if Allowed(e, op, c, r) {
		return nil
	}
	if !c.Authenticated {
		return apierrors.ErrNaoAutenticado
	}
	return apierrors.ErrAcessoNegado
}

// ForUsuario builds the Resource facts for a user record.
func ForUsuario(u models.Usuario) Resource {
	return Resource{OwnerID: u.ID}
}

// ForEvento builds the Resource facts for an event, relative to a caller.
func ForEvento(e models.Evento, callerID uint64) Resource {
	return Resource{
		OwnerID:      e.CriadorID,
		Publico:      e.Visibilidade == models.VisibilidadePublica,
		Participante: e.TemParticipante(callerID),
	}
}

// ForTarefa builds the Resource facts for a task.
func ForTarefa(t models.Tarefa) Resource {
	return Resource{OwnerID: t.UsuarioID, Publico: t.Publica}
}

// ForPatrocinador builds the Resource facts for a sponsor.
func ForPatrocinador() Resource {
	return Resource{Publico: true}
}
