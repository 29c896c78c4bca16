package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	cepRegex      = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	telefoneRegex = regexp.MustCompile(`^\+?[0-9][0-9()\-\s]{7,19}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Nomes de campo nas mensagens seguem a tag json.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return cepRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("telefone", func(fl validator.FieldLevel) bool {
		return telefoneRegex.MatchString(fl.Field().String())
	})

	return v
}

// Struct valida o payload e devolve o mapa campo → mensagens, ou nil
// quando o payload é válido. O mapa segue inalterado até o envelope de
// erro da resposta.
func Struct(payload any) map[string][]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_": {"Payload inválido"}}
	}

	details := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe)
		details[field] = append(details[field], message(fe))
	}
	return details
}

// fieldPath remove o nome do struct raiz do namespace, preservando
// índices de listas (ex.: "links[1]").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "min":
		return fmt.Sprintf("Deve ter no mínimo %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("Deve ter no máximo %s caracteres", fe.Param())
	case "email":
		return "Email inválido"
	case "url":
		return "Deve ser uma URL válida"
	case "cep":
		return "CEP inválido (formato 00000-000)"
	case "telefone":
		return "Telefone inválido"
	case "oneof":
		return fmt.Sprintf("Deve ser um de: %s", fe.Param())
	case "gtfield":
		return fmt.Sprintf("Deve ser posterior a %s", jsonName(fe.Param()))
	default:
		return "Valor inválido"
	}
}

// jsonName converte o nome Go do campo referenciado por regras
// cross-field para a forma usada no JSON.
func jsonName(goField string) string {
	if goField == "" {
		return goField
	}
	return strings.ToLower(goField[:1]) + goField[1:]
}
