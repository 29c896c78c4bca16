package storage

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/falaoperador/admin-api/internal/constants"
)

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// LocalStorage grava arquivos no sistema de arquivos local, sob um
// diretório base servido estaticamente em /uploads.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a local filesystem storage rooted at basePath.
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

// Save valida tipo e tamanho, grava o arquivo com nome único e devolve
// o caminho relativo ("categoria/uuid.ext").
func (s *LocalStorage) Save(file *multipart.FileHeader, categoria string) (string, error) {
	if file.Size > constants.MaxImageSizeBytes {
		return "", ErrTamanhoExcedido
	}

	ext, err := extensionFor(file)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	relPath := filepath.Join(categoria, uuid.NewString()+ext)
	fullPath := filepath.Join(s.basePath, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// Delete removes a stored file, tolerating a file that is already gone.
func (s *LocalStorage) Delete(path string) error {
	if path == "" {
		return nil
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(path))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func extensionFor(file *multipart.FileHeader) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}

	if ext, ok := allowedMimeTypes[contentType]; ok {
		return ext, nil
	}

	// Alguns clientes não enviam Content-Type na parte do arquivo;
	// cai para a extensão do nome original.
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpg", ".jpeg":
		return ".jpg", nil
	case ".png":
		return ".png", nil
	case ".webp":
		return ".webp", nil
	}

	return "", ErrTipoInvalido
}
