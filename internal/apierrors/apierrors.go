package apierrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError é o erro estruturado que atravessa serviços e handlers e é
// traduzido para o envelope de erro {error, details?}.
type APIError struct {
	Status  int                 `json:"-"`
	Message string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// NewValidation creates a 400 error carrying field-level details.
func NewValidation(details map[string][]string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: "Dados inválidos",
		Details: details,
	}
}

// NewBadRequest creates a 400 error with a single message.
func NewBadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewUnauthorized creates a 401 error.
func NewUnauthorized(message string) *APIError {
	if message == "" {
		message = "Não autenticado"
	}
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

// NewForbidden creates a 403 error.
func NewForbidden(message string) *APIError {
	if message == "" {
		message = "Acesso negado"
	}
	return &APIError{Status: http.StatusForbidden, Message: message}
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *APIError {
	if message == "" {
		message = "Recurso não encontrado"
	}
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// Predefined errors
var (
	ErrNaoAutenticado = NewUnauthorized("")
	ErrAcessoNegado   = NewForbidden("")
	ErrNaoEncontrado  = NewNotFound("")
)

// OK sends a 200 success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// OKWithMessage sends a 200 success envelope with a message.
func OKWithMessage(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, gin.H{"data": data, "message": message})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// Respond é o tradutor central de erros: *APIError mantém status,
// mensagem e detalhes; qualquer outro erro vira 500 com mensagem
// genérica, sem vazar texto interno.
func Respond(c *gin.Context, err error) {
	if apiErr, ok := err.(*APIError); ok {
		c.JSON(apiErr.Status, apiErr)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Erro interno do servidor",
	})
}
