package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestEnvelope(t *testing.T) {
	tests := []struct {
		name string
		send func(*gin.Context)
		code int
		body string
	}{
		{"success", func(c *gin.Context) { Success(c, []int{1}) }, http.StatusOK, `{"success":true,"message":"success","data":[1]}`},
		{"ok", func(c *gin.Context) { OK(c, "done") }, http.StatusOK, `{"success":true,"message":"done"}`},
		{"bad request", func(c *gin.Context) { BadRequest(c, "no") }, http.StatusBadRequest, `{"success":false,"message":"no"}`},
		{"not found", func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound, `{"success":false,"message":"gone"}`},
		{"internal", func(c *gin.Context) { InternalError(c, "oops") }, http.StatusInternalServerError, `{"success":false,"message":"oops"}`},
		{"abort", func(c *gin.Context) { AbortWithError(c, http.StatusTooManyRequests, "slow") }, http.StatusTooManyRequests, `{"success":false,"message":"slow"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.send(c)

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
