package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type cadastroPayload struct {
	Nome  string `json:"nome" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Cep   string `json:"cep" validate:"omitempty,cep"`
	Fone  string `json:"telefone" validate:"omitempty,telefone"`
}

func TestStruct_PayloadValido(t *testing.T) {
	details := Struct(cadastroPayload{
		Nome:  "Maria",
		Email: "maria@falaoperador.com.br",
		Cep:   "01310-100",
		Fone:  "+55 11 98765-4321",
	})
	require.Nil(t, details)
}

func TestStruct_CamposUsamNomeJSON(t *testing.T) {
	details := Struct(cadastroPayload{})
	require.Contains(t, details, "nome")
	require.Contains(t, details, "email")
	require.Equal(t, []string{"Campo obrigatório"}, details["nome"])
}

func TestStruct_MensagensPorRegra(t *testing.T) {
	details := Struct(cadastroPayload{
		Nome:  "M",
		Email: "nao-e-email",
		Cep:   "1310100",
		Fone:  "abc",
	})

	require.Equal(t, []string{"Deve ter no mínimo 2 caracteres"}, details["nome"])
	require.Equal(t, []string{"Email inválido"}, details["email"])
	require.Equal(t, []string{"CEP inválido (formato 00000-000)"}, details["cep"])
	require.Equal(t, []string{"Telefone inválido"}, details["telefone"])
}

func TestStruct_CepAceitaComESemHifen(t *testing.T) {
	require.Nil(t, Struct(cadastroPayload{Nome: "Maria", Email: "m@x.com", Cep: "01310100"}))
	require.Nil(t, Struct(cadastroPayload{Nome: "Maria", Email: "m@x.com", Cep: "01310-100"}))
	require.NotNil(t, Struct(cadastroPayload{Nome: "Maria", Email: "m@x.com", Cep: "0131-0100"}))
}

type linksPayload struct {
	Links []string `json:"links" validate:"dive,url"`
}

func TestStruct_ListaComIndice(t *testing.T) {
	details := Struct(linksPayload{
		Links: []string{"https://ok.example.com", "quebrado"},
	})
	require.Contains(t, details, "links[1]")
	require.Equal(t, []string{"Deve ser uma URL válida"}, details["links[1]"])
}

type periodoPayload struct {
	DataInicio int `json:"dataInicio"`
	DataFim    int `json:"dataFim" validate:"gtfield=DataInicio"`
}

func TestStruct_CrossField(t *testing.T) {
	details := Struct(periodoPayload{DataInicio: 10, DataFim: 5})
	require.Equal(t, []string{"Deve ser posterior a dataInicio"}, details["dataFim"])
}
