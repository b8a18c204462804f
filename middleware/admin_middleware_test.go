package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

func adminTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/admin/orders", nil)
	return c, w
}

func TestRequireAdminMiddlewareNoRole(t *testing.T) {
	c, w := adminTestContext(t)

	RequireAdminMiddleware()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminMiddlewareRejectsCustomer(t *testing.T) {
	c, w := adminTestContext(t)
	c.Set("userRole", models.RoleUser)

	RequireAdminMiddleware()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminMiddlewareAllowsAdmin(t *testing.T) {
	c, w := adminTestContext(t)
	c.Set("userRole", models.RoleAdmin)

	RequireAdminMiddleware()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
}
