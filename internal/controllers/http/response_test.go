package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"product-management/internal/domain"
	"product-management/internal/services"
)

func TestFailMapsErrorKindsToStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{domain.NotFoundf("order not found"), http.StatusNotFound},
		{domain.Conflictf("insufficient stock"), http.StatusConflict},
		{domain.Validationf("unknown status"), http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		fail(c, tc.err)

		assert.Equal(t, tc.status, w.Code)

		var env Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.NotEmpty(t, env.Message)
	}
}

func TestFailHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	fail(c, assert.AnError)

	var env Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "internal server error", env.Message)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestWithSideEffects(t *testing.T) {
	assert.Equal(t, "order placed", withSideEffects("order placed", nil))

	degraded := withSideEffects("order placed", services.SideEffects{
		{Name: "payment-auto-create", Err: assert.AnError},
	})
	assert.Contains(t, degraded, "order placed")
	assert.Contains(t, degraded, "degraded")
	assert.Contains(t, degraded, "payment-auto-create")
}
