package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/falaoperador/admin-api/internal/dto"
)

func eventoPayload() map[string]any {
	inicio := time.Now().Add(24 * time.Hour).UTC()
	return map[string]any{
		"titulo":     "Gravação ao vivo",
		"descricao":  "Episódio especial com convidados",
		"rua":        "Avenida Paulista",
		"numero":     "1000",
		"cep":        "01310-100",
		"dataInicio": inicio.Format(time.RFC3339),
		"dataFim":    inicio.Add(2 * time.Hour).Format(time.RFC3339),
		"categoria":  "PODCAST",
	}
}

func TestEventoHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	usuario := env.registraUsuario(t, "maria@falaoperador.com.br")
	cookies := env.login(t, "maria@falaoperador.com.br")

	w := env.doJSON(t, http.MethodPost, "/api/eventos", eventoPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var evento dto.EventoDTO
	decodeEnvelope(t, w, &evento)
	require.Equal(t, "Gravação ao vivo", evento.Titulo)
	require.Equal(t, usuario.ID, evento.CriadorID)
	require.Equal(t, "PUBLICA", string(evento.Visibilidade))
	require.Equal(t, "PODCAST", string(evento.Categoria))
	require.Nil(t, evento.Latitude)
}

func TestEventoHandler_CreateTituloCurto(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "maria@falaoperador.com.br")
	cookies := env.login(t, "maria@falaoperador.com.br")

	payload := eventoPayload()
	payload["titulo"] = "Ao"

	w := env.doJSON(t, http.MethodPost, "/api/eventos", payload, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, details := decodeError(t, w)
	require.Contains(t, details, "titulo")
}

func TestEventoHandler_CreateDataFimAntesDoInicio(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "maria@falaoperador.com.br")
	cookies := env.login(t, "maria@falaoperador.com.br")

	inicio := time.Now().Add(24 * time.Hour).UTC()
	payload := eventoPayload()
	payload["dataInicio"] = inicio.Format(time.RFC3339)
	payload["dataFim"] = inicio.Add(-time.Hour).Format(time.RFC3339)

	w := env.doJSON(t, http.MethodPost, "/api/eventos", payload, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, details := decodeError(t, w)
	require.Contains(t, details, "dataFim")
}

func TestEventoHandler_CreateCepInvalido(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "maria@falaoperador.com.br")
	cookies := env.login(t, "maria@falaoperador.com.br")

	payload := eventoPayload()
	payload["cep"] = "12345"

	w := env.doJSON(t, http.MethodPost, "/api/eventos", payload, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, details := decodeError(t, w)
	require.Contains(t, details, "cep")
}

func TestEventoHandler_CreateParticipanteInexistente(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "maria@falaoperador.com.br")
	cookies := env.login(t, "maria@falaoperador.com.br")

	payload := eventoPayload()
	payload["participantes"] = []uint64{9999}

	w := env.doJSON(t, http.MethodPost, "/api/eventos", payload, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, details := decodeError(t, w)
	require.Contains(t, details, "participantes")
}

func TestEventoHandler_CreateExigeSessao(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/eventos", eventoPayload(), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEventoHandler_VisibilidadePrivada(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "dona@falaoperador.com.br")
	convidado := env.registraUsuario(t, "convidado@falaoperador.com.br")
	donaCookies := env.login(t, "dona@falaoperador.com.br")

	payload := eventoPayload()
	payload["visibilidade"] = "PRIVADA"

	w := env.doJSON(t, http.MethodPost, "/api/eventos", payload, donaCookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var evento dto.EventoDTO
	decodeEnvelope(t, w, &evento)

	// Terceiro autenticado não enxerga o evento privado
	convidadoCookies := env.login(t, "convidado@falaoperador.com.br")
	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/eventos/%d", evento.ID), nil, convidadoCookies)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Anônimo recebe 401
	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/eventos/%d", evento.ID), nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Depois de virar participante, passa a enxergar
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/eventos/%d", evento.ID), map[string]any{
		"participantes": []uint64{convidado.ID},
	}, donaCookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/eventos/%d", evento.ID), nil, convidadoCookies)
	require.Equal(t, http.StatusOK, w.Code)

	var visto dto.EventoDTO
	decodeEnvelope(t, w, &visto)
	require.Len(t, visto.Participantes, 1)
	require.Equal(t, convidado.ID, visto.Participantes[0].ID)
}

func TestEventoHandler_GetRepetidoRetornaMesmoCorpo(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "maria@falaoperador.com.br")
	cookies := env.login(t, "maria@falaoperador.com.br")

	w := env.doJSON(t, http.MethodPost, "/api/eventos", eventoPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var evento dto.EventoDTO
	decodeEnvelope(t, w, &evento)

	// Duas leituras sem escrita no meio devolvem bytes idênticos
	primeira := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/eventos/%d", evento.ID), nil, cookies)
	require.Equal(t, http.StatusOK, primeira.Code)

	segunda := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/eventos/%d", evento.ID), nil, cookies)
	require.Equal(t, http.StatusOK, segunda.Code)

	require.Equal(t, primeira.Body.Bytes(), segunda.Body.Bytes())
}

func TestEventoHandler_UpdateSomenteDataInicio(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "maria@falaoperador.com.br")
	cookies := env.login(t, "maria@falaoperador.com.br")

	w := env.doJSON(t, http.MethodPost, "/api/eventos", eventoPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var evento dto.EventoDTO
	decodeEnvelope(t, w, &evento)

	novoInicio := evento.DataFim.Add(-30 * time.Minute).Truncate(time.Second)
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/eventos/%d", evento.ID), map[string]any{
		"dataInicio": novoInicio.Format(time.RFC3339),
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var atualizado dto.EventoDTO
	decodeEnvelope(t, w, &atualizado)
	require.True(t, atualizado.DataInicio.Equal(novoInicio))
}

func TestEventoHandler_UpdateSubstituiParticipantes(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "dona@falaoperador.com.br")
	primeiro := env.registraUsuario(t, "primeiro@falaoperador.com.br")
	segundo := env.registraUsuario(t, "segundo@falaoperador.com.br")
	cookies := env.login(t, "dona@falaoperador.com.br")

	payload := eventoPayload()
	payload["participantes"] = []uint64{primeiro.ID}

	w := env.doJSON(t, http.MethodPost, "/api/eventos", payload, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var evento dto.EventoDTO
	decodeEnvelope(t, w, &evento)
	require.Len(t, evento.Participantes, 1)

	// O conjunto enviado substitui o anterior por inteiro
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/eventos/%d", evento.ID), map[string]any{
		"participantes": []uint64{segundo.ID},
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var atualizado dto.EventoDTO
	decodeEnvelope(t, w, &atualizado)
	require.Len(t, atualizado.Participantes, 1)
	require.Equal(t, segundo.ID, atualizado.Participantes[0].ID)
}

func TestEventoHandler_UpdatePorTerceiro(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "dona@falaoperador.com.br")
	env.registraUsuario(t, "terceiro@falaoperador.com.br")
	donaCookies := env.login(t, "dona@falaoperador.com.br")

	w := env.doJSON(t, http.MethodPost, "/api/eventos", eventoPayload(), donaCookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var evento dto.EventoDTO
	decodeEnvelope(t, w, &evento)

	terceiroCookies := env.login(t, "terceiro@falaoperador.com.br")
	w = env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/eventos/%d", evento.ID), map[string]any{
		"titulo": "Tomado",
	}, terceiroCookies)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestEventoHandler_ListUniaoDeVisibilidade(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "dona@falaoperador.com.br")
	env.registraUsuario(t, "outra@falaoperador.com.br")
	donaCookies := env.login(t, "dona@falaoperador.com.br")
	outraCookies := env.login(t, "outra@falaoperador.com.br")

	publico := eventoPayload()
	w := env.doJSON(t, http.MethodPost, "/api/eventos", publico, donaCookies)
	require.Equal(t, http.StatusCreated, w.Code)

	privado := eventoPayload()
	privado["titulo"] = "Fechado da dona"
	privado["visibilidade"] = "PRIVADA"
	w = env.doJSON(t, http.MethodPost, "/api/eventos", privado, donaCookies)
	require.Equal(t, http.StatusCreated, w.Code)

	// A dona enxerga os dois; a outra usuária só o público
	w = env.doJSON(t, http.MethodGet, "/api/eventos", nil, donaCookies)
	require.Equal(t, http.StatusOK, w.Code)
	var listaDona dto.EventoListResponse
	decodeEnvelope(t, w, &listaDona)
	require.Len(t, listaDona.Eventos, 2)

	w = env.doJSON(t, http.MethodGet, "/api/eventos", nil, outraCookies)
	require.Equal(t, http.StatusOK, w.Code)
	var listaOutra dto.EventoListResponse
	decodeEnvelope(t, w, &listaOutra)
	require.Len(t, listaOutra.Eventos, 1)
	require.Equal(t, "Gravação ao vivo", listaOutra.Eventos[0].Titulo)

	// Anônimo também lista só o público
	w = env.doJSON(t, http.MethodGet, "/api/eventos", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listaAnonima dto.EventoListResponse
	decodeEnvelope(t, w, &listaAnonima)
	require.Len(t, listaAnonima.Eventos, 1)
}

func TestEventoHandler_Delete(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "maria@falaoperador.com.br")
	cookies := env.login(t, "maria@falaoperador.com.br")

	w := env.doJSON(t, http.MethodPost, "/api/eventos", eventoPayload(), cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var evento dto.EventoDTO
	decodeEnvelope(t, w, &evento)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/eventos/%d", evento.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/eventos/%d", evento.ID), nil, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}
