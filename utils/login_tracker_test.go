package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoginEventsTableCoversEveryInsertedColumn(t *testing.T) {
	// The insert in LogLoginEvent and the seeder's DDL share this column
	// set; a column named here but missing from the DDL would make every
	// insert fail with an undefined-column error.
	columns := []string{"id", "user_id", "logged_in_at", "ip_address", "user_agent", "device_type"}
	for _, col := range columns {
		assert.Contains(t, LoginEventsDDL, col)
	}
}

func TestLogLoginEventSkippedWithoutPool(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/auth/login", nil)

	assert.NoError(t, LogLoginEvent(c, uuid.Must(uuid.NewV7())))
}

func TestParseDeviceType(t *testing.T) {
	assert.Equal(t, "mobile", parseDeviceType("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"))
	assert.Equal(t, "mobile", parseDeviceType("Mozilla/5.0 (Linux; Android 14)"))
	assert.Equal(t, "tablet", parseDeviceType("Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)"))
	assert.Equal(t, "desktop", parseDeviceType("Mozilla/5.0 (Windows NT 10.0; Win64; x64)"))
	assert.Equal(t, "desktop", parseDeviceType(""))
}
