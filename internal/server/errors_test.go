package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	"github.com/smallbiznis/barflow/internal/config"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	recipedomain "github.com/smallbiznis/barflow/internal/recipe/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestEngine(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		AbortWithError(c, err)
	})
	return r
}

func performRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation sentinel", ingredientdomain.ErrInvalidPurchasePrice, http.StatusBadRequest},
		{"uncosted drink", eventdomain.ErrDrinkCostNotCalculated, http.StatusBadRequest},
		{"not found sentinel", drinkdomain.ErrNotFound, http.StatusNotFound},
		{"gorm record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"duplicate key", gorm.ErrDuplicatedKey, http.StatusConflict},
		{"cost refresh failure", recipedomain.ErrCostRefreshFailed, http.StatusInternalServerError},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"opaque error", assertionError{}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(newTestEngine(tc.err), http.MethodGet, "/boom")
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

type assertionError struct{}

func (assertionError) Error() string { return "boom" }

func TestValidationPayloadShape(t *testing.T) {
	w := performRequest(newTestEngine(ingredientdomain.ErrInvalidPurchasePrice), http.MethodGet, "/boom")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"invalid_purchase_price"`)
	assert.Contains(t, w.Body.String(), `"field":"purchase_price"`)
}

func TestAccountContextHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	r.Use(AccountContext(config.Config{}))
	r.GET("/whoami", func(c *gin.Context) {
		accountID, ok := accountcontext.AccountIDFromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"data": accountID.String()})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Account-ID", "123456789")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "123456789")
}

func TestAccountContextMissingAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	r.Use(AccountContext(config.Config{}))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "ok"})
	})

	w := performRequest(r, http.MethodGet, "/whoami")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccountContextDefaultAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	r.Use(AccountContext(config.Config{DefaultAccountID: 42}))
	r.GET("/whoami", func(c *gin.Context) {
		accountID, ok := accountcontext.AccountIDFromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"data": int64(accountID)})
	})

	w := performRequest(r, http.MethodGet, "/whoami")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}
