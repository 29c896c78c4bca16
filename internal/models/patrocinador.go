package models

import (
	"time"

	"gorm.io/gorm"
)

// Patrocinador é uma empresa patrocinadora do programa. Links é uma
// lista ordenada de URLs absolutas; a serialização JSON fica restrita
// à coluna de texto e nunca atravessa a fronteira do gateway.
type Patrocinador struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	NomeEmpresa string         `gorm:"type:varchar(255);not null" json:"nomeEmpresa"`
	Links       []string       `gorm:"serializer:json;type:text" json:"links"`
	Telefone    string         `gorm:"type:varchar(20)" json:"telefone"`
	Email       string         `gorm:"type:varchar(255)" json:"email"`
	Endereco    string         `gorm:"type:varchar(255)" json:"endereco"`
	Imagem      string         `gorm:"type:varchar(255);not null" json:"imagem"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name for GORM.
func (Patrocinador) TableName() string {
	return "patrocinadores"
}
