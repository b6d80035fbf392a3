package worker

import (
	"context"
	"errors"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/config"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/queue"

	"github.com/hibiken/asynq"
)

const defaultOverdueScanInterval = 10 * time.Minute

// Service asynchronous queue service with a periodic overdue-rental scan
type Service struct {
	name         string
	server       *asynq.Server
	mux          *asynq.ServeMux
	consumer     *Consumer
	scanInterval time.Duration
}

// NewService creates the queue service
func NewService(cfg *config.QueueConfig, rentalCfg *config.RentalConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	interval := defaultOverdueScanInterval
	if rentalCfg != nil && rentalCfg.OverdueScanIntervalMS > 0 {
		interval = time.Duration(rentalCfg.OverdueScanIntervalMS) * time.Millisecond
	}
	return &Service{
		name:         "worker",
		server:       server,
		mux:          mux,
		consumer:     consumer,
		scanInterval: interval,
	}, nil
}

// Name service name
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start runs the queue server and the overdue scan loop
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	go s.runOverdueScanLoop(ctx)
	return s.server.Run(s.mux)
}

// Stop shuts the queue server down
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runOverdueScanLoop periodically enqueues reminders for every unreturned
// rental past its expected return date.
func (s *Service) runOverdueScanLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.RentalRepo == nil {
		return
	}
	runOnce := func() {
		now := time.Now()
		overdue, err := s.consumer.RentalRepo.ListOverdue(now)
		if err != nil {
			logger.Warnw("worker_overdue_scan_failed", "error", err)
			return
		}
		for _, rd := range overdue {
			daysLate := int(now.Sub(rd.ExpectedReturnDate).Hours() / 24)
			err := s.consumer.QueueClient.EnqueueRentalOverdueRemind(queue.RentalOverdueRemindPayload{
				RentalDetailID: rd.ID,
				OrderID:        rd.OrderID,
				DaysLate:       daysLate,
			})
			if err != nil {
				logger.Warnw("worker_overdue_enqueue_failed", "rental_detail_id", rd.ID, "error", err)
			}
		}
		if len(overdue) > 0 {
			logger.Infow("worker_overdue_scan_done", "overdue", len(overdue))
		}
	}
	runOnce()

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
