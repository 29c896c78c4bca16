package storage

import (
	"errors"
	"mime/multipart"
)

var (
	// ErrTipoInvalido indica um tipo de arquivo fora da lista permitida.
	ErrTipoInvalido = errors.New("storage: tipo de arquivo não permitido")
	// ErrTamanhoExcedido indica um arquivo acima do limite de 5 MB.
	ErrTamanhoExcedido = errors.New("storage: arquivo excede o tamanho máximo")
)

// Storage define o contrato de armazenamento de arquivos enviados.
// Save devolve o caminho relativo persistido junto ao registro; Delete
// é best-effort e tolera arquivo inexistente.
type Storage interface {
	Save(file *multipart.FileHeader, categoria string) (string, error)
	Delete(path string) error
}
