package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nazex2000/LittleLemon/configs"
	"github.com/nazex2000/LittleLemon/entity"
	"github.com/nazex2000/LittleLemon/routes"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{},
		&entity.OrderItem{},
	))

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := gin.New()
	routes.RegisterRoutes(r, cfg, db)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    username + "@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func promote(t *testing.T, db *gorm.DB, username string, role entity.Role) {
	t.Helper()
	require.NoError(t, db.Model(&entity.User{}).
		Where("username = ?", username).Update("role", role).Error)
}

func TestAuthGates(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/menu-items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	customer := registerAndLogin(t, r, "carla")

	// customers may browse but not write the catalog
	w = doJSON(t, r, http.MethodGet, "/menu-items", customer, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/menu-items", customer, gin.H{
		"title": "Pasta", "price": "12.50", "categoryId": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/groups/managers/users", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// a role change takes effect on the next request, no re-login needed
	promote(t, db, "carla", entity.RoleManager)
	w = doJSON(t, r, http.MethodGet, "/groups/managers/users", customer, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderFlowOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)

	manager := registerAndLogin(t, r, "mia")
	promote(t, db, "mia", entity.RoleManager)
	customer := registerAndLogin(t, r, "carla")
	crewTok := registerAndLogin(t, r, "dave")

	// manager builds the catalog
	w := doJSON(t, r, http.MethodPost, "/categories", manager, gin.H{"slug": "mains", "name": "Mains"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cat entity.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))

	w = doJSON(t, r, http.MethodPost, "/menu-items", manager, gin.H{
		"title": "Pasta", "price": "12.50", "categoryId": cat.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item entity.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	// manager moves dave into the delivery crew through the group endpoint
	w = doJSON(t, r, http.MethodPost, "/groups/delivery-crews/users", manager, gin.H{"username": "dave"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// customer fills the cart and places the order
	w = doJSON(t, r, http.MethodPost, "/cart/menu-items", customer, gin.H{
		"menuItemId": item.ID, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/orders", customer, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "25", order.Total.String())

	// manager assigns the crew, crew delivers
	path := fmt.Sprintf("/orders/%d", order.ID)
	w = doJSON(t, r, http.MethodPut, path, manager, gin.H{"delivery_crew": "dave"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPatch, path, crewTok, gin.H{"status": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// terminal order rejects another status change
	w = doJSON(t, r, http.MethodPatch, path, crewTok, gin.H{"status": false})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// customers cannot delete orders; managers can
	w = doJSON(t, r, http.MethodDelete, path, customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, http.MethodDelete, path, manager, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMissingStatusIsBadRequest(t *testing.T) {
	r, db := newTestRouter(t)
	manager := registerAndLogin(t, r, "mia")
	promote(t, db, "mia", entity.RoleManager)

	w := doJSON(t, r, http.MethodPatch, "/orders/1", manager, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
