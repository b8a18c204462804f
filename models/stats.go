package models

// OrderStatusBreakdown is one slice of the dashboard order counts.
type OrderStatusBreakdown struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// DashboardStatsResponse is the admin landing-page summary.
type DashboardStatsResponse struct {
	TotalOrders                int                  `json:"total_orders"`
	CurrentMonthOrders         int                  `json:"current_month_orders"`
	LastMonthOrders            int                  `json:"last_month_orders"`
	ChangePercentFromLastMonth *float64             `json:"change_percent_from_last_month"`
	TotalRevenue               float64              `json:"total_revenue"`
	TotalUsers                 int                  `json:"total_users"`
	TotalProducts              int                  `json:"total_products"`
	LowStockProducts           int                  `json:"low_stock_products"`
	LoginsLast7Days            int                  `json:"logins_last_7_days"`
	Pending                    OrderStatusBreakdown `json:"pending"`
	Processing                 OrderStatusBreakdown `json:"processing"`
	Shipped                    OrderStatusBreakdown `json:"shipped"`
	Delivered                  OrderStatusBreakdown `json:"delivered"`
	Cancelled                  OrderStatusBreakdown `json:"cancelled"`
}
