package repository

import (
	"gorm.io/gorm"

	"github.com/falaoperador/admin-api/internal/database"
	"github.com/falaoperador/admin-api/internal/models"
)

// GormTarefaRepository is a GORM implementation of TarefaRepository.
type GormTarefaRepository struct {
	db *gorm.DB
}

// NewTarefaRepository creates a new TarefaRepository.
func NewTarefaRepository(db *gorm.DB) TarefaRepository {
	return &GormTarefaRepository{db: db}
}

// Create creates a new task.
func (r *GormTarefaRepository) Create(tarefa *models.Tarefa) error {
	return r.db.Create(tarefa).Error
}

// FindByID finds a task with its owner preloaded.
func (r *GormTarefaRepository) FindByID(id uint64) (*models.Tarefa, error) {
	var tarefa models.Tarefa
	if err := r.db.Preload("Usuario").First(&tarefa, id).Error; err != nil {
		return nil, err
	}
	return &tarefa, nil
}

// List retrieves tasks applying the caller's visibility union as a filter.
func (r *GormTarefaRepository) List(filter TarefaFilter) ([]models.Tarefa, int64, error) {
	var tarefas []models.Tarefa

	query := r.db.Model(&models.Tarefa{})

	if !filter.Admin {
		query = query.Where(
			r.db.Where("tarefas.usuario_id = ?", filter.CallerID).
				Or("tarefas.publica = ?", true),
		)
	}

	if filter.Status != nil {
		query = query.Where("tarefas.status = ?", *filter.Status)
	}
	if filter.Prioridade != nil {
		query = query.Where("tarefas.prioridade = ?", *filter.Prioridade)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("tarefas.created_at DESC").
		Scopes(database.Paginate(filter.Pagination)).
		Preload("Usuario").
		Find(&tarefas).Error; err != nil {
		return nil, 0, err
	}

	return tarefas, total, nil
}

// Update persists changes to a task.
func (r *GormTarefaRepository) Update(tarefa *models.Tarefa) error {
	return r.db.Save(tarefa).Error
}

// Delete soft deletes a task.
func (r *GormTarefaRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Tarefa{}, id).Error
}
