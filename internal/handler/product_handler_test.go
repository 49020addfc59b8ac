package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ciclofit/ciclofit-server/internal/handler"
	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/ciclofit/ciclofit-server/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// passthrough stands in for the auth and admin middleware so handler
// behavior can be tested in isolation
func passthrough(c *gin.Context) {
	c.Next()
}

func newProductRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	productService := service.NewProductService(repository.NewProductRepository(db))
	h := handler.NewProductHandler(productService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	h.RegisterRoutes(v1, passthrough, passthrough)
	return router, db
}

func doJSON(router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, response.Response) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestCreateProductReturnsCreated(t *testing.T) {
	router, _ := newProductRouter(t)

	w, envelope := doJSON(router, http.MethodPost, "/api/v1/produto", gin.H{
		"name":  "Whey Protein",
		"price": 120.5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, envelope.Code)
	assert.Equal(t, "created", envelope.Message)
	require.NotNil(t, envelope.Data)
}

func TestCreateProductValidation(t *testing.T) {
	router, _ := newProductRouter(t)

	// Missing required price
	w, envelope := doJSON(router, http.MethodPost, "/api/v1/produto", gin.H{
		"name": "Whey Protein",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, -1, envelope.Code)
}

func TestGetProductNotFound(t *testing.T) {
	router, _ := newProductRouter(t)

	w, envelope := doJSON(router, http.MethodGet, "/api/v1/produto/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, -1003, envelope.Code)
	assert.Equal(t, "product not found", envelope.Message)
}

func TestDeleteProductNotFound(t *testing.T) {
	router, _ := newProductRouter(t)

	w, envelope := doJSON(router, http.MethodDelete, "/api/v1/produto/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, -1003, envelope.Code)
}

func TestDeleteProductRemovesRow(t *testing.T) {
	router, db := newProductRouter(t)

	_, created := doJSON(router, http.MethodPost, "/api/v1/produto", gin.H{
		"name":  "Creatine",
		"price": 55.0,
	})
	require.NotNil(t, created.Data)

	data, ok := created.Data.(map[string]any)
	require.True(t, ok)
	id := uint(data["id"].(float64))

	w, _ := doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/produto/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestInvalidProductID(t *testing.T) {
	router, _ := newProductRouter(t)

	w, envelope := doJSON(router, http.MethodGet, "/api/v1/produto/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid product id", envelope.Message)
}
