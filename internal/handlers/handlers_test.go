package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/falaoperador/admin-api/internal/constants"
	"github.com/falaoperador/admin-api/internal/dto"
	"github.com/falaoperador/admin-api/internal/middleware"
	"github.com/falaoperador/admin-api/internal/models"
	"github.com/falaoperador/admin-api/internal/repository"
	"github.com/falaoperador/admin-api/internal/services"
	"github.com/falaoperador/admin-api/internal/storage"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	uploads     string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Conta{},
		&models.Evento{},
		&models.EventoParticipante{},
		&models.Patrocinador{},
		&models.Tarefa{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	logger := zap.NewNop()
	uploads := t.TempDir()
	fileStorage := storage.NewLocalStorage(uploads)

	usuarioRepo := repository.NewUsuarioRepository(db)
	eventoRepo := repository.NewEventoRepository(db)
	tarefaRepo := repository.NewTarefaRepository(db)
	patrocinadorRepo := repository.NewPatrocinadorRepository(db)

	authService := services.NewAuthService(usuarioRepo)
	usuarioService := services.NewUsuarioService(usuarioRepo, fileStorage, logger)
	eventoService := services.NewEventoService(eventoRepo, usuarioRepo, fileStorage, nil, logger)
	tarefaService := services.NewTarefaService(tarefaRepo)
	patrocinadorService := services.NewPatrocinadorService(patrocinadorRepo, fileStorage, logger)

	authHandler := NewAuthHandler(authService, logger)
	usuarioHandler := NewUsuarioHandler(usuarioService, logger)
	eventoHandler := NewEventoHandler(eventoService, logger)
	tarefaHandler := NewTarefaHandler(tarefaService, logger)
	patrocinadorHandler := NewPatrocinadorHandler(patrocinadorService, logger)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.LoadSession(usuarioRepo))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/registro", authHandler.Registro)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.Me)
		}

		usuarios := api.Group("/usuarios")
		{
			usuarios.GET("", usuarioHandler.List)
			usuarios.GET("/:id", usuarioHandler.Get)
			usuarios.PUT("/:id", middleware.RequireAuth(), usuarioHandler.Update)
			usuarios.PUT("/:id/senha", middleware.RequireAuth(), usuarioHandler.UpdateSenha)
			usuarios.DELETE("/:id", middleware.RequireAuth(), usuarioHandler.Delete)
		}

		eventos := api.Group("/eventos")
		{
			eventos.GET("", eventoHandler.List)
			eventos.GET("/:id", eventoHandler.Get)
			eventos.POST("", middleware.RequireAuth(), eventoHandler.Create)
			eventos.PUT("/:id", middleware.RequireAuth(), eventoHandler.Update)
			eventos.DELETE("/:id", middleware.RequireAuth(), eventoHandler.Delete)
		}

		tarefas := api.Group("/tarefas")
		tarefas.Use(middleware.RequireAuth())
		{
			tarefas.GET("", tarefaHandler.List)
			tarefas.GET("/:id", tarefaHandler.Get)
			tarefas.POST("", tarefaHandler.Create)
			tarefas.PUT("/:id", tarefaHandler.Update)
			tarefas.DELETE("/:id", tarefaHandler.Delete)
		}

		patrocinadores := api.Group("/patrocinadores")
		{
			patrocinadores.GET("", patrocinadorHandler.List)
			patrocinadores.GET("/:id", patrocinadorHandler.Get)
			patrocinadores.POST("", middleware.RequireAdmin(), patrocinadorHandler.Create)
			patrocinadores.PUT("/:id", middleware.RequireAdmin(), patrocinadorHandler.Update)
			patrocinadores.DELETE("/:id", middleware.RequireAdmin(), patrocinadorHandler.Delete)
		}
	}

	return &testEnv{
		db:          db,
		router:      r,
		authService: authService,
		uploads:     uploads,
	}
}

// registraUsuario cria um usuário pela via normal de registro.
func (env *testEnv) registraUsuario(t *testing.T, email string) *models.Usuario {
	t.Helper()

	usuario, err := env.authService.Registro(&dto.RegistroRequest{
		Nome:      "Maria",
		Sobrenome: "Silva",
		Email:     email,
		Senha:     "senhasegura",
	})
	require.NoError(t, err)
	return usuario
}

// promoveAdmin muda o papel de um usuário direto no banco.
func (env *testEnv) promoveAdmin(t *testing.T, id uint64) {
	t.Helper()
	err := env.db.Model(&models.Usuario{}).Where("id = ?", id).Update("role", models.RoleAdmin).Error
	require.NoError(t, err)
}

// login autentica e devolve os cookies de sessão.
func (env *testEnv) login(t *testing.T, email string) []*http.Cookie {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": email,
		"senha": "senhasegura",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// doJSON executa uma requisição com corpo JSON.
func (env *testEnv) doJSON(t *testing.T, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// doMultipart executa uma requisição multipart com campos de texto e,
// opcionalmente, uma parte de arquivo PNG válida.
func (env *testEnv) doMultipart(t *testing.T, method, path string, fields map[string]string, fileField string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="foto.png"`, fileField))
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decodeEnvelope desembrulha o envelope {data, message?} em dest.
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()

	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	if dest != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}
}

// decodeError desembrulha o envelope de erro {error, details?}.
func decodeError(t *testing.T, w *httptest.ResponseRecorder) (string, map[string][]string) {
	t.Helper()

	var envelope struct {
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Error, envelope.Details
}
