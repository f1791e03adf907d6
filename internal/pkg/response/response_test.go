package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorOmitsEmptyDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusNotFound, "NOT_FOUND", "Package not found")

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])

	errBody := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errBody["code"])
	assert.Equal(t, "Package not found", errBody["message"])
	_, hasDetails := errBody["details"]
	assert.False(t, hasDetails)
}

func TestErrorWithDetailsCarriesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid hotel data",
		map[string]string{"name": "required"})

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	details := body["error"].(map[string]any)["details"].(map[string]any)
	assert.Equal(t, "required", details["name"])
}
