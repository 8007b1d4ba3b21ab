package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authContext(authorization string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", "/", nil)
	if authorization != "" {
		ctx.Request.Header.Set("Authorization", authorization)
	}
	return ctx, w
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	ctx, w := authContext("")
	AuthMiddleware(ctx)
	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBareBearer(t *testing.T) {
	ctx, w := authContext("Bearer")
	AuthMiddleware(ctx)
	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsEmptyToken(t *testing.T) {
	ctx, w := authContext("Bearer ")
	AuthMiddleware(ctx)
	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
