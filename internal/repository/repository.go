package repository

import (
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/utils"
)

// UsuarioRepository defines the interface for user data access.
type UsuarioRepository interface {
	// CreateWithConta creates the user and its credential record within
	// a single transaction.
	CreateWithConta(usuario *models.Usuario, conta *models.Conta) error

	// FindByID finds a user by ID.
	FindByID(id uint64) (*models.Usuario, error)

	// FindByEmail finds a user by email.
	FindByEmail(email string) (*models.Usuario, error)

	// List retrieves users with pagination.
	List(params utils.PaginationParams) ([]models.Usuario, int64, error)

	// Update persists changes to a user.
	Update(usuario *models.Usuario) error

	// UpdateSenha replaces the password hash on the user and on all of
	// its credential records atomically.
	UpdateSenha(usuarioID uint64, senhaHash string) error

	// Delete soft deletes a user and its credential records.
	Delete(id uint64) error

	// CountByIDs counts how many of the given user IDs exist.
	CountByIDs(ids []uint64) (int64, error)
}

// EventoFilter holds filtering options for listing events.
type EventoFilter struct {
	// CallerID limits the listing to the caller-visible union
	// (public, created-by-me, participant-of). Zero means anonymous.
	CallerID uint64
	// Admin lifts the visibility union entirely.
	Admin        bool
	Visibilidade *models.Visibilidade
	Categoria    *models.CategoriaEvento
	Pagination   utils.PaginationParams
}

// EventoRepository defines the interface for event data access.
type EventoRepository interface {
	// Create creates a new event.
	Create(evento *models.Evento) error

	// FindByID finds an event with creator and participants preloaded.
	FindByID(id uint64) (*models.Evento, error)

	// List retrieves events applying the visibility union as a filter.
	List(filter EventoFilter) ([]models.Evento, int64, error)

	// Update persists changes to an event.
	Update(evento *models.Evento) error

	// UpdateWithParticipantes persists the event and replaces its full
	// participant set (delete-all-then-insert) in one transaction.
	UpdateWithParticipantes(evento *models.Evento, usuarioIDs []uint64) error

	// Delete removes an event and cascades its participant rows.
	Delete(id uint64) error
}

// TarefaFilter holds filtering options for listing tasks.
type TarefaFilter struct {
	CallerID   uint64
	Admin      bool
	Status     *models.StatusTarefa
	Prioridade *models.PrioridadeTarefa
	Pagination utils.PaginationParams
}

// TarefaRepository defines the interface for task data access.
type TarefaRepository interface {
	Create(tarefa *models.Tarefa) error
	FindByID(id uint64) (*models.Tarefa, error)
	List(filter TarefaFilter) ([]models.Tarefa, int64, error)
	Update(tarefa *models.Tarefa) error
	Delete(id uint64) error
}

// PatrocinadorRepository defines the interface for sponsor data access.
type PatrocinadorRepository interface {
	Create(patrocinador *models.Patrocinador) error
	FindByID(id uint64) (*models.Patrocinador, error)
	List(params utils.PaginationParams) ([]models.Patrocinador, int64, error)
	Update(patrocinador *models.Patrocinador) error
	Delete(id uint64) error
}
