package models

import "time"

// Conta é o registro de credencial que liga um Usuario a um provedor de
// login. Nunca existe sem o Usuario correspondente: ambos são criados
// na mesma transação de registro.
type Conta struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UsuarioID uint64    `gorm:"not null;index" json:"usuarioId"`
	Provider  string    `gorm:"type:varchar(50);not null" json:"provider"`
	SenhaHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Usuario Usuario `gorm:"foreignKey:UsuarioID" json:"-"`
}

// TableName sets the table name for GORM.
func (Conta) TableName() string {
	return "contas"
}
