package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/falaoperador/admin-api/internal/dto"
)

func criaPatrocinador(t *testing.T, env *testEnv, cookies []*http.Cookie, nome string, links []string) dto.PatrocinadorDTO {
	t.Helper()

	fields := map[string]string{
		"nomeEmpresa": nome,
	}
	if links != nil {
		raw, err := json.Marshal(links)
		require.NoError(t, err)
		fields["links"] = string(raw)
	}

	w := env.doMultipart(t, http.MethodPost, "/api/patrocinadores", fields, "imagem", cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var patrocinador dto.PatrocinadorDTO
	decodeEnvelope(t, w, &patrocinador)
	return patrocinador
}

func TestPatrocinadorHandler_CreateExigeAdmin(t *testing.T) {
	env := setupTestEnv(t)
	env.registraUsuario(t, "maria@falaoperador.com.br")
	cookies := env.login(t, "maria@falaoperador.com.br")

	w := env.doMultipart(t, http.MethodPost, "/api/patrocinadores", map[string]string{
		"nomeEmpresa": "Café do Estúdio",
	}, "imagem", cookies)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.doMultipart(t, http.MethodPost, "/api/patrocinadores", map[string]string{
		"nomeEmpresa": "Café do Estúdio",
	}, "imagem", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPatrocinadorHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.registraUsuario(t, "admin@falaoperador.com.br")
	env.promoveAdmin(t, admin.ID)
	cookies := env.login(t, "admin@falaoperador.com.br")

	links := []string{"https://cafedoestudio.com.br", "https://instagram.com/cafedoestudio"}
	patrocinador := criaPatrocinador(t, env, cookies, "Café do Estúdio", links)

	require.Equal(t, "Café do Estúdio", patrocinador.NomeEmpresa)
	require.Equal(t, links, patrocinador.Links)
	require.NotEmpty(t, patrocinador.Imagem)
}

func TestPatrocinadorHandler_CreateSemImagem(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.registraUsuario(t, "admin@falaoperador.com.br")
	env.promoveAdmin(t, admin.ID)
	cookies := env.login(t, "admin@falaoperador.com.br")

	w := env.doMultipart(t, http.MethodPost, "/api/patrocinadores", map[string]string{
		"nomeEmpresa": "Café do Estúdio",
	}, "", cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, details := decodeError(t, w)
	require.Contains(t, details, "imagem")
}

func TestPatrocinadorHandler_CreateLinkInvalido(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.registraUsuario(t, "admin@falaoperador.com.br")
	env.promoveAdmin(t, admin.ID)
	cookies := env.login(t, "admin@falaoperador.com.br")

	w := env.doMultipart(t, http.MethodPost, "/api/patrocinadores", map[string]string{
		"nomeEmpresa": "Café do Estúdio",
		"links":       `["nao-e-url"]`,
	}, "imagem", cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatrocinadorHandler_LinksPreservamOrdem(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.registraUsuario(t, "admin@falaoperador.com.br")
	env.promoveAdmin(t, admin.ID)
	cookies := env.login(t, "admin@falaoperador.com.br")

	links := []string{
		"https://zebra.example.com",
		"https://alfa.example.com",
		"https://meio.example.com",
	}
	patrocinador := criaPatrocinador(t, env, cookies, "Ordem Exata", links)

	// Leitura pública devolve os links na ordem enviada
	w := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/patrocinadores/%d", patrocinador.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lido dto.PatrocinadorDTO
	decodeEnvelope(t, w, &lido)
	require.Equal(t, links, lido.Links)
}

func TestPatrocinadorHandler_LeituraPublica(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.registraUsuario(t, "admin@falaoperador.com.br")
	env.promoveAdmin(t, admin.ID)
	cookies := env.login(t, "admin@falaoperador.com.br")

	criaPatrocinador(t, env, cookies, "Café do Estúdio", nil)

	// Listagem sem sessão
	w := env.doJSON(t, http.MethodGet, "/api/patrocinadores", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var lista dto.PatrocinadorListResponse
	decodeEnvelope(t, w, &lista)
	require.Len(t, lista.Patrocinadores, 1)
	require.Equal(t, []string{}, lista.Patrocinadores[0].Links)
}

func TestPatrocinadorHandler_Update(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.registraUsuario(t, "admin@falaoperador.com.br")
	env.promoveAdmin(t, admin.ID)
	cookies := env.login(t, "admin@falaoperador.com.br")

	patrocinador := criaPatrocinador(t, env, cookies, "Café do Estúdio", nil)

	w := env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/patrocinadores/%d", patrocinador.ID), map[string]any{
		"nomeEmpresa": "Café do Estúdio Ltda",
		"links":       []string{"https://cafedoestudio.com.br"},
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var atualizado dto.PatrocinadorDTO
	decodeEnvelope(t, w, &atualizado)
	require.Equal(t, "Café do Estúdio Ltda", atualizado.NomeEmpresa)
	require.Equal(t, []string{"https://cafedoestudio.com.br"}, atualizado.Links)
	require.Equal(t, patrocinador.Imagem, atualizado.Imagem)
}

func TestPatrocinadorHandler_DeleteComArquivoAusente(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.registraUsuario(t, "admin@falaoperador.com.br")
	env.promoveAdmin(t, admin.ID)
	cookies := env.login(t, "admin@falaoperador.com.br")

	patrocinador := criaPatrocinador(t, env, cookies, "Some Depois", nil)

	// Arquivo sumiu do disco; a remoção do registro segue normal
	require.NoError(t, os.Remove(filepath.Join(env.uploads, filepath.FromSlash(patrocinador.Imagem))))

	w := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/patrocinadores/%d", patrocinador.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/patrocinadores/%d", patrocinador.ID), nil, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}
