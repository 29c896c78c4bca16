package models

import (
	"time"

	"gorm.io/gorm"
)

type Visibilidade string

const (
	VisibilidadePublica Visibilidade = "PUBLICA"
	VisibilidadePrivada Visibilidade = "PRIVADA"
)

type CategoriaEvento string

const (
	CategoriaPodcast    CategoriaEvento = "PODCAST"
	CategoriaEntrevista CategoriaEvento = "ENTREVISTA"
	CategoriaWorkshop   CategoriaEvento = "WORKSHOP"
	CategoriaEncontro   CategoriaEvento = "ENCONTRO"
	CategoriaOutro      CategoriaEvento = "OUTRO"
)

// Valida reports whether the value is a known category.
func (c CategoriaEvento) Valida() bool {
	switch c {
	case CategoriaPodcast, CategoriaEntrevista, CategoriaWorkshop, CategoriaEncontro, CategoriaOutro:
		return true
	}
	return false
}

type Evento struct {
	ID           uint64          `gorm:"primarykey" json:"id"`
	Titulo       string          `gorm:"type:varchar(100);not null" json:"titulo"`
	Descricao    string          `gorm:"type:text" json:"descricao"`
	Imagem       string          `gorm:"type:varchar(255)" json:"imagem"`
	Rua          string          `gorm:"type:varchar(255);not null" json:"rua"`
	Numero       string          `gorm:"type:varchar(20);not null" json:"numero"`
	Cep          string          `gorm:"type:varchar(9);not null" json:"cep"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
	DataInicio   time.Time       `gorm:"not null" json:"dataInicio"`
	DataFim      time.Time       `gorm:"not null" json:"dataFim"`
	CriadorID    uint64          `gorm:"not null;index" json:"criadorId"`
	Visibilidade Visibilidade    `gorm:"type:varchar(20);not null;default:'PUBLICA'" json:"visibilidade"`
	Categoria    CategoriaEvento `gorm:"type:varchar(20);not null;default:'OUTRO'" json:"categoria"`
	LinkVideo    string          `gorm:"type:varchar(255)" json:"linkVideo"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relations
	Criador       Usuario              `gorm:"foreignKey:CriadorID" json:"criador,omitempty"`
	Participantes []EventoParticipante `gorm:"foreignKey:EventoID" json:"participantes,omitempty"`
}

// TableName sets the table name for GORM.
func (Evento) TableName() string {
	return "eventos"
}

// TemParticipante reports whether the given user is listed as a
// participant. Only meaningful when Participantes is preloaded.
func (e Evento) TemParticipante(usuarioID uint64) bool {
	for _, p := range e.Participantes {
		if p.UsuarioID == usuarioID {
			return true
		}
	}
	return false
}
