package repository

import (
	"gorm.io/gorm"

	"github.com/falaoperador/admin-api/internal/database"
	"github.com/falaoperador/admin-api/internal/models"
)

// GormEventoRepository is a GORM implementation of EventoRepository.
type GormEventoRepository struct {
	db *gorm.DB
}

// NewEventoRepository creates a new EventoRepository.
func NewEventoRepository(db *gorm.DB) EventoRepository {
	return &GormEventoRepository{db: db}
}

// Create creates a new event.
func (r *GormEventoRepository) Create(evento *models.Evento) error {
	return r.db.Create(evento).Error
}

// FindByID finds an event with creator and participants preloaded.
func (r *GormEventoRepository) FindByID(id uint64) (*models.Evento, error) {
	var evento models.Evento
	if err := r.db.
		Preload("Criador").
		Preload("Participantes").
		Preload("Participantes.Usuario").
		First(&evento, id).Error; err != nil {
		return nil, err
	}
	return &evento, nil
}

// List retrieves events applying the caller's visibility union as a filter.
func (r *GormEventoRepository) List(filter EventoFilter) ([]models.Evento, int64, error) {
	var eventos []models.Evento

	query := r.db.Model(&models.Evento{})

	if !filter.Admin {
		visible := r.db.Where("eventos.visibilidade = ?", models.VisibilidadePublica)
		if filter.CallerID != 0 {
			participaSub := r.db.Model(&models.EventoParticipante{}).
				Select("1").
				Where("evento_participantes.evento_id = eventos.id").
				Where("evento_participantes.usuario_id = ?", filter.CallerID)
			visible = visible.
				Or("eventos.criador_id = ?", filter.CallerID).
				Or("EXISTS (?)", participaSub)
		}
		query = query.Where(visible)
	}

	if filter.Visibilidade != nil {
		query = query.Where("eventos.visibilidade = ?", *filter.Visibilidade)
	}
	if filter.Categoria != nil {
		query = query.Where("eventos.categoria = ?", *filter.Categoria)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("eventos.data_inicio ASC").
		Scopes(database.Paginate(filter.Pagination)).
		Preload("Criador").
		Find(&eventos).Error; err != nil {
		return nil, 0, err
	}

	return eventos, total, nil
}

// Update persists changes to an event.
func (r *GormEventoRepository) Update(evento *models.Evento) error {
	return r.db.Save(evento).Error
}

// UpdateWithParticipantes persists the event and replaces its full
// participant set in one transaction. A partial failure leaves the
// previous set untouched.
func (r *GormEventoRepository) UpdateWithParticipantes(evento *models.Evento, usuarioIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(evento).Error; err != nil {
			return err
		}

		if err := tx.Where("evento_id = ?", evento.ID).
			Delete(&models.EventoParticipante{}).Error; err != nil {
			return err
		}

		if len(usuarioIDs) == 0 {
			return nil
		}

		participantes := make([]models.EventoParticipante, len(usuarioIDs))
		for i, usuarioID := range usuarioIDs {
			participantes[i] = models.EventoParticipante{
				EventoID:  evento.ID,
				UsuarioID: usuarioID,
			}
		}

		return tx.Create(&participantes).Error
	})
}

// Delete removes an event and cascades its participant rows.
func (r *GormEventoRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("evento_id = ?", id).
			Delete(&models.EventoParticipante{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Evento{}, id).Error
	})
}
