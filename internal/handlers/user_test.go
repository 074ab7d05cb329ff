package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/todofast/api/internal/auth"
	"github.com/todofast/api/internal/database"
	"github.com/todofast/api/internal/dto"
	apierrors "github.com/todofast/api/internal/errors"
	"github.com/todofast/api/internal/middleware"
	"github.com/todofast/api/internal/models"
	"github.com/todofast/api/internal/repository"
	"github.com/todofast/api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	userService *services.UserService
}

func setupUserTestEnv(t *testing.T) *userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Todo{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	tokenManager, err := auth.NewTokenManager("test-secret", "HS256", 30*time.Minute, nil)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, tokenManager)
	userService := services.NewUserService(userRepo)

	userHandler := NewUserHandler(userService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/users", userHandler.Create)
	r.GET("/users", userHandler.List)
	r.PUT("/users/:id", middleware.RequireAuth(authService), middleware.RequireSelf(), userHandler.Update)
	r.DELETE("/users/:id", middleware.RequireAuth(authService), middleware.RequireSelf(), userHandler.Delete)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &userTestEnv{
		db:          db,
		router:      r,
		authService: authService,
		userService: userService,
	}
}

func (env *userTestEnv) createUser(t *testing.T, username, email, password string) (*models.User, string) {
	t.Helper()

	user, err := env.userService.Register(services.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	token, err := env.authService.Login(services.LoginInput{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	return user, token
}

func (env *userTestEnv) doJSON(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Create(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.doJSON(http.MethodPost, "/users", "", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotZero(t, response.ID)
	require.Equal(t, "alice", response.Username)
	require.Equal(t, "alice@example.com", response.Email)

	// The password hash is never part of the response
	require.NotContains(t, w.Body.String(), "password")
}

func TestUserHandler_Create_DuplicateUsername(t *testing.T) {
	env := setupUserTestEnv(t)
	env.createUser(t, "alice", "alice@example.com", "secret123")

	w := env.doJSON(http.MethodPost, "/users", "", map[string]string{
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusConflict, w.Code)

	var response apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Username already exists", response.Detail)
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	env := setupUserTestEnv(t)
	env.createUser(t, "alice", "alice@example.com", "secret123")

	w := env.doJSON(http.MethodPost, "/users", "", map[string]string{
		"username": "other",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusConflict, w.Code)

	var response apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Email already exists", response.Detail)
}

func TestUserHandler_Create_DistinctUsersGetIncrementingIDs(t *testing.T) {
	env := setupUserTestEnv(t)

	first, _ := env.createUser(t, "alice", "alice@example.com", "secret123")
	second, _ := env.createUser(t, "bob", "bob@example.com", "secret123")

	require.Greater(t, second.ID, first.ID)
}

func TestUserHandler_List(t *testing.T) {
	env := setupUserTestEnv(t)
	env.createUser(t, "alice", "alice@example.com", "secret123")
	env.createUser(t, "bob", "bob@example.com", "secret123")

	w := env.doJSON(http.MethodGet, "/users", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Users, 2)
}

func TestUserHandler_List_Pagination(t *testing.T) {
	env := setupUserTestEnv(t)
	env.createUser(t, "alice", "alice@example.com", "secret123")
	env.createUser(t, "bob", "bob@example.com", "secret123")
	env.createUser(t, "carol", "carol@example.com", "secret123")

	w := env.doJSON(http.MethodGet, "/users?offset=1&limit=1", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Users, 1)
	require.Equal(t, "bob", response.Users[0].Username)
}

func TestUserHandler_Update(t *testing.T) {
	env := setupUserTestEnv(t)
	user, token := env.createUser(t, "alice", "alice@example.com", "secret123")

	w := env.doJSON(http.MethodPut, "/users/1", token, map[string]string{
		"username": "alice_updated",
		"email":    "alice_updated@example.com",
		"password": "newsecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "alice_updated", response.Username)
	require.Equal(t, "alice_updated@example.com", response.Email)

	// The new credentials authenticate
	_, err := env.authService.Login(services.LoginInput{
		Email:    "alice_updated@example.com",
		Password: "newsecret",
	})
	require.NoError(t, err)
}

func TestUserHandler_Update_OtherUser(t *testing.T) {
	env := setupUserTestEnv(t)
	env.createUser(t, "alice", "alice@example.com", "secret123")
	_, bobToken := env.createUser(t, "bob", "bob@example.com", "secret123")

	w := env.doJSON(http.MethodPut, "/users/1", bobToken, map[string]string{
		"username": "hijacked",
		"email":    "hijacked@example.com",
		"password": "hijacked",
	})

	require.Equal(t, http.StatusForbidden, w.Code)

	var response apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Not enough permissions", response.Detail)
}

func TestUserHandler_Update_NonexistentID(t *testing.T) {
	env := setupUserTestEnv(t)
	_, token := env.createUser(t, "alice", "alice@example.com", "secret123")

	// Ownership is checked before existence, so an unknown ID is forbidden
	// rather than not found
	w := env.doJSON(http.MethodPut, "/users/9999", token, map[string]string{
		"username": "whoever",
		"email":    "whoever@example.com",
		"password": "whatever",
	})

	require.Equal(t, http.StatusForbidden, w.Code)

	var response apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Not enough permissions", response.Detail)
}

func TestUserHandler_Update_ConflictWithOtherUser(t *testing.T) {
	env := setupUserTestEnv(t)
	env.createUser(t, "alice", "alice@example.com", "secret123")
	_, bobToken := env.createUser(t, "bob", "bob@example.com", "secret123")

	w := env.doJSON(http.MethodPut, "/users/2", bobToken, map[string]string{
		"username": "alice",
		"email":    "bob@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusConflict, w.Code)

	var response apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Username or email already exists", response.Detail)
}

func TestUserHandler_Delete(t *testing.T) {
	env := setupUserTestEnv(t)
	_, token := env.createUser(t, "alice", "alice@example.com", "secret123")

	w := env.doJSON(http.MethodDelete, "/users/1", token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.MessageDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "User deleted", response.Message)

	// The unexpired token no longer resolves once the user is gone
	w = env.doJSON(http.MethodDelete, "/users/1", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var errResponse apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResponse))
	require.Equal(t, "Could not validate credentials", errResponse.Detail)
}

func TestUserHandler_Delete_CascadesTodos(t *testing.T) {
	env := setupUserTestEnv(t)
	user, token := env.createUser(t, "alice", "alice@example.com", "secret123")

	todo := &models.Todo{
		Title:  "Buy milk",
		State:  models.TodoStateTodo,
		UserID: user.ID,
	}
	require.NoError(t, env.db.Create(todo).Error)

	w := env.doJSON(http.MethodDelete, "/users/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Todo{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.Zero(t, count)
}
