package repository

import (
	"gorm.io/gorm"

	"github.com/falaoperador/admin-api/internal/database"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/utils"
)

// GormPatrocinadorRepository is a GORM implementation of PatrocinadorRepository.
type GormPatrocinadorRepository struct {
	db *gorm.DB
}

// NewPatrocinadorRepository creates a new PatrocinadorRepository.
func NewPatrocinadorRepository(db *gorm.DB) PatrocinadorRepository {
	return &GormPatrocinadorRepository{db: db}
}

// Create creates a new sponsor.
func (r *GormPatrocinadorRepository) Create(patrocinador *models.Patrocinador) error {
	return r.db.Create(patrocinador).Error
}

// FindByID finds a sponsor by ID.
func (r *GormPatrocinadorRepository) FindByID(id uint64) (*models.Patrocinador, error) {
	var patrocinador models.Patrocinador
	if err := r.db.First(&patrocinador, id).Error; err != nil {
		return nil, err
	}
	return &patrocinador, nil
}

// List retrieves sponsors with pagination.
func (r *GormPatrocinadorRepository) List(params utils.PaginationParams) ([]models.Patrocinador, int64, error) {
	var patrocinadores []models.Patrocinador

	query := r.db.Model(&models.Patrocinador{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("patrocinadores.nome_empresa ASC").
		Scopes(database.Paginate(params)).
		Find(&patrocinadores).Error; err != nil {
		return nil, 0, err
	}

	return patrocinadores, total, nil
}

// Update persists changes to a sponsor.
func (r *GormPatrocinadorRepository) Update(patrocinador *models.Patrocinador) error {
	return r.db.Save(patrocinador).Error
}

// Delete soft deletes a sponsor.
func (r *GormPatrocinadorRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Patrocinador{}, id).Error
}
