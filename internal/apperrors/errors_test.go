package apperrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestKindStatusCodes(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Duplicate, http.StatusBadRequest},
		{UpstreamSafety, http.StatusBadRequest},
		{Unauthorized, http.StatusUnauthorized},
		{NotFound, http.StatusNotFound},
		{UpstreamTimeout, http.StatusInternalServerError},
		{Upstream, http.StatusInternalServerError},
		{Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.StatusCode())
	}
}

func TestNormalize_PassesThroughAppError(t *testing.T) {
	orig := New(Unauthorized, "Invalid credentials")
	got := Normalize(orig)
	assert.Same(t, orig, got)
}

func TestNormalize_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: textwiz.users index: email_1 dup key: { email: "a@x.com" }`,
	}}}

	got := Normalize(dup)
	assert.Equal(t, Duplicate, got.Kind)
	assert.Equal(t, "email is already registered", got.Message)
	assert.Equal(t, http.StatusBadRequest, got.Kind.StatusCode())
}

func TestNormalize_UnknownError(t *testing.T) {
	got := Normalize(errors.New("boom"))
	assert.Equal(t, Internal, got.Kind)
	assert.Equal(t, "Server Error", got.Message)
}

func TestErrorHandler_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(New(Duplicate, "Email is already registered"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"message": "Email is already registered",
		"error": {"statusCode": 400, "message": "Email is already registered"}
	}`, w.Body.String())
}

func TestErrorHandler_NoErrorWritesNothing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
