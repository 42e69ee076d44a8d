package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindCompleteModule(t *testing.T, body string) (completeModuleRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/protected/progress/complete", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req completeModuleRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestCompleteModuleAcceptsOutOfRangeIDs(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"zero galaxy", `{"galaxy": 0, "module": 5, "xp_earned": 100}`},
		{"zero module", `{"galaxy": 3, "module": 0}`},
		{"negative ids", `{"galaxy": -1, "module": -4}`},
		{"beyond range", `{"galaxy": 99, "module": 99}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := bindCompleteModule(t, tc.body); err != nil {
				t.Errorf("Expected out-of-range ids to bind (clamped downstream), got %v", err)
			}
		})
	}
}

func TestCompleteModuleRejectsMalformedBody(t *testing.T) {
	if _, err := bindCompleteModule(t, `{"galaxy": "three"}`); err == nil {
		t.Error("Expected malformed body to fail binding")
	}
}
