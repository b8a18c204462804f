package utils

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
)

// LoginEventsDDL creates the table LogLoginEvent writes to. The seeder
// executes this exact statement so the insert below and the schema cannot
// drift apart.
const LoginEventsDDL = `
	CREATE TABLE IF NOT EXISTS login_events (
		id uuid PRIMARY KEY,
		user_id uuid NOT NULL,
		logged_in_at timestamptz NOT NULL DEFAULT NOW(),
		ip_address text,
		user_agent text,
		device_type text
	)`

// LogLoginEvent records a login event. Skipped in mock mode where no
// database pool exists.
func LogLoginEvent(c *gin.Context, userID uuid.UUID) error {
	if config.Pool == nil {
		return nil
	}

	ctx := c.Request.Context()
	ipAddress := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")

	query := `
		INSERT INTO login_events (
			id, user_id, logged_in_at, ip_address, user_agent, device_type
		) VALUES ($1, $2, NOW(), $3, $4, $5)
	`

	_, err := config.Pool.Exec(ctx, query,
		uuid.New().String(),
		userID.String(),
		ipAddress,
		userAgent,
		parseDeviceType(userAgent),
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	return nil
}

func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "mobile") ||
		strings.Contains(ua, "android") ||
		strings.Contains(ua, "iphone") {
		return "mobile"
	}
	if strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet") {
		return "tablet"
	}
	return "desktop"
}
