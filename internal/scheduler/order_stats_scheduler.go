package scheduler

import (
	"github.com/jcastror/elfogon-backend/internal/app/model"
	"github.com/jcastror/elfogon-backend/internal/app/repository"
	"github.com/jcastror/elfogon-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// OrderStatsScheduler logs a daily snapshot of orders waiting to be
// handled by the kitchen.
type OrderStatsScheduler struct {
	cron      *cron.Cron
	orderRepo repository.OrderRepository
}

func NewOrderStatsScheduler(orderRepo repository.OrderRepository) *OrderStatsScheduler {
	return &OrderStatsScheduler{
		cron:      cron.New(),
		orderRepo: orderRepo,
	}
}

// Start registers the daily job and launches the cron runner.
func (s *OrderStatsScheduler) Start() error {
	// Every day at 8:00 AM server time
	_, err := s.cron.AddFunc("0 8 * * *", func() {
		pending, err := s.orderRepo.CountByStatus(model.OrderStatusPending)
		if err != nil {
			logger.Error("Failed to count pending orders for daily report", err)
			return
		}

		logger.Info("Daily order report", map[string]interface{}{
			"pending_orders": pending,
		})
	})

	if err != nil {
		logger.Error("Failed to register daily order report job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Order stats scheduler started (daily at 8:00 AM)", nil)

	return nil
}

func (s *OrderStatsScheduler) Stop() {
	logger.Info("Stopping order stats scheduler...", nil)
	s.cron.Stop()
	logger.Info("Order stats scheduler stopped", nil)
}
