package dto

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/falaoperador/admin-api/internal/apierrors"
)

// Os decoders produzem o mesmo payload tipado para JSON e multipart;
// a validação nunca enxerga o encoding de transporte.

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// decodeInto binds the request body into dest using the adapter that
// matches the declared content type.
func decodeInto(c *gin.Context, dest any) *apierrors.APIError {
	var err error
	if isMultipart(c) {
		err = c.ShouldBind(dest)
	} else {
		err = c.ShouldBindJSON(dest)
	}
	if err != nil {
		return apierrors.NewBadRequest("Corpo da requisição inválido")
	}
	return nil
}

// parseUint64List lê um campo de formulário contendo uma lista
// codificada em JSON (ex.: "[1,2,3]"). Devolve nil quando ausente.
func parseUint64List(c *gin.Context, field string) (*[]uint64, *apierrors.APIError) {
	raw, ok := c.GetPostForm(field)
	if !ok {
		return nil, nil
	}
	var values []uint64
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, apierrors.NewValidation(map[string][]string{
			field: {"Deve ser uma lista JSON válida"},
		})
	}
	return &values, nil
}

// parseStringList lê um campo de formulário contendo uma lista de
// strings codificada em JSON. Devolve nil quando ausente.
func parseStringList(c *gin.Context, field string) (*[]string, *apierrors.APIError) {
	raw, ok := c.GetPostForm(field)
	if !ok {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, apierrors.NewValidation(map[string][]string{
			field: {"Deve ser uma lista JSON válida"},
		})
	}
	return &values, nil
}
