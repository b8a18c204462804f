package dashboard_controller

import (
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// GetDashboardStats godoc
// @Summary Get admin dashboard stats
// @Description All-time order totals with a per-status breakdown, month-over-month change, revenue, user/product counts and recent login activity.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardStatsResponse}
// @Failure 503 {object} models.ApiResponse "No database configured"
// @Router /admin/dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	if config.Pool == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Dashboard stats require a configured database"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	q := `
		WITH
		all_time AS (
			SELECT
				COUNT(*)::int AS total,
				COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0)::int    AS pending,
				COALESCE(SUM(CASE WHEN status = 'processing' THEN 1 ELSE 0 END), 0)::int AS processing,
				COALESCE(SUM(CASE WHEN status = 'shipped' THEN 1 ELSE 0 END), 0)::int    AS shipped,
				COALESCE(SUM(CASE WHEN status = 'delivered' THEN 1 ELSE 0 END), 0)::int  AS delivered,
				COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0)::int  AS cancelled,
				COALESCE(SUM(CASE WHEN status <> 'cancelled' THEN total_amount ELSE 0 END), 0)::numeric AS revenue
			FROM orders
		),
		cur AS (
			SELECT COUNT(*)::int AS total
			FROM orders
			WHERE created_at >= date_trunc('month', NOW())
			  AND created_at <  date_trunc('month', NOW()) + INTERVAL '1 month'
		),
		prev AS (
			SELECT COUNT(*)::int AS total
			FROM orders
			WHERE created_at >= date_trunc('month', NOW()) - INTERVAL '1 month'
			  AND created_at <  date_trunc('month', NOW())
		),
		people AS (
			SELECT COUNT(*)::int AS total FROM users
		),
		catalog AS (
			SELECT
				COUNT(*)::int AS total,
				COALESCE(SUM(CASE WHEN stock < 5 THEN 1 ELSE 0 END), 0)::int AS low_stock
			FROM products
		),
		logins AS (
			SELECT COUNT(*)::int AS total
			FROM login_events
			WHERE logged_in_at >= NOW() - INTERVAL '7 days'
		)
		SELECT
			all_time.total,
			cur.total,
			prev.total,
			all_time.pending,
			all_time.processing,
			all_time.shipped,
			all_time.delivered,
			all_time.cancelled,
			all_time.revenue,
			people.total,
			catalog.total,
			catalog.low_stock,
			logins.total
		FROM all_time, cur, prev, people, catalog, logins;
	`

	var totalOrders, curTotal, prevTotal int
	var pending, processing, shipped, delivered, cancelled int
	var revenue float64
	var totalUsers, totalProducts, lowStock, recentLogins int

	err := config.Pool.QueryRow(ctx, q).Scan(
		&totalOrders,
		&curTotal,
		&prevTotal,
		&pending,
		&processing,
		&shipped,
		&delivered,
		&cancelled,
		&revenue,
		&totalUsers,
		&totalProducts,
		&lowStock,
		&recentLogins,
	)
	if err != nil {
		log.Printf("❌ dashboard stats query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard stats"))
		return
	}

	// Percent change is undefined when last month had no orders.
	var changePct *float64
	if prevTotal > 0 {
		v := (float64(curTotal-prevTotal) / float64(prevTotal)) * 100
		v = math.Round(v*10) / 10
		changePct = &v
	}

	res := models.DashboardStatsResponse{
		TotalOrders:                totalOrders,
		CurrentMonthOrders:         curTotal,
		LastMonthOrders:            prevTotal,
		ChangePercentFromLastMonth: changePct,
		TotalRevenue:               revenue,
		TotalUsers:                 totalUsers,
		TotalProducts:              totalProducts,
		LowStockProducts:           lowStock,
		LoginsLast7Days:            recentLogins,
		Pending:                    models.OrderStatusBreakdown{Count: pending, Description: "Awaiting processing"},
		Processing:                 models.OrderStatusBreakdown{Count: processing, Description: "Being prepared"},
		Shipped:                    models.OrderStatusBreakdown{Count: shipped, Description: "On the way"},
		Delivered:                  models.OrderStatusBreakdown{Count: delivered, Description: "Successfully delivered"},
		Cancelled:                  models.OrderStatusBreakdown{Count: cancelled, Description: "Cancelled orders"},
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats retrieved successfully", res))
}
