package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studioku-backend/config"
	"studioku-backend/models"
	"studioku-backend/utils"
)

type DashboardOverview struct {
	TotalBookings   int64               `json:"totalBookings"`
	PendingBookings int64               `json:"pendingBookings"`
	TodayBookings   int64               `json:"todayBookings"`
	MonthlyRevenue  float64             `json:"monthlyRevenue"`
	UpcomingBlocks  []models.AdminBlock `json:"upcomingBlocks"`
	RecentBookings  []models.Booking    `json:"recentBookings"`
}

// GetDashboardOverview aggregates the numbers shown on the admin landing page.
// Revenue counts confirmed bookings only; cancelled ones are excluded everywhere.
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := now.Format("2006-01-02")
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")

	overview := DashboardOverview{}

	config.DB.Model(&models.Booking{}).
		Where("status <> ?", models.BookingCancelled).
		Count(&overview.TotalBookings)

	config.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingPending).
		Count(&overview.PendingBookings)

	config.DB.Model(&models.Booking{}).
		Where("booking_date = ? AND status <> ?", today, models.BookingCancelled).
		Count(&overview.TodayBookings)

	if err := config.DB.Model(&models.Booking{}).
		Where("booking_date >= ? AND status = ?", firstOfMonth, models.BookingConfirmed).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&overview.MonthlyRevenue).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	config.DB.Where("block_date >= ?", today).
		Order("block_date ASC, start_time ASC").
		Limit(7).
		Find(&overview.UpcomingBlocks)

	config.DB.Preload("Service").
		Order("created_at DESC").
		Limit(5).
		Find(&overview.RecentBookings)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    overview,
	})
}
