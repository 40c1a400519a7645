// Package scheduler runs the daily stock monitor: it scans raw
// materials below their minimum stock, archives an xlsx report and
// emails the alert recipient.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ousama-oujaber/SupplyChainX/internal/config"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/repository"
)

const stockCheckLockPrefix = "scheduler:stock-check:"

// ScanResult summarizes one stock check run.
type ScanResult struct {
	RanAt      time.Time            `json:"ran_at"`
	Materials  []entity.RawMaterial `json:"materials"`
	ReportPath string               `json:"report_path,omitempty"`
	MailSent   bool                 `json:"mail_sent"`
}

// StockMonitor owns the daily low-stock scan.
type StockMonitor struct {
	materials *repository.RawMaterialRepository
	rdb       *redis.Client
	archive   *ReportArchive
	mailer    *Mailer
	cfg       *config.Config
	logger    *zap.Logger
}

func NewStockMonitor(
	materials *repository.RawMaterialRepository,
	rdb *redis.Client,
	archive *ReportArchive,
	mailer *Mailer,
	cfg *config.Config,
	logger *zap.Logger,
) *StockMonitor {
	return &StockMonitor{
		materials: materials,
		rdb:       rdb,
		archive:   archive,
		mailer:    mailer,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled, firing the scan once a day at the
// configured hour. The redis lock keeps the scan single-shot when
// several instances run.
func (m *StockMonitor) Run(ctx context.Context) {
	for {
		next := nextRunTime(time.Now(), m.cfg.Scheduler.StockCheckHour)
		m.logger.Info("stock monitor scheduled", zap.Time("next_run", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if !m.acquireDailyLock(ctx) {
			m.logger.Info("stock check already ran today, skipping")
			continue
		}

		if _, err := m.scan(ctx); err != nil {
			m.logger.Error("stock check failed", zap.Error(err))
		}
	}
}

// RunNow triggers the scan immediately, bypassing the daily lock.
func (m *StockMonitor) RunNow(ctx context.Context) (*ScanResult, error) {
	return m.scan(ctx)
}

func (m *StockMonitor) acquireDailyLock(ctx context.Context) bool {
	key := stockCheckLockPrefix + time.Now().Format("2006-01-02")
	ok, err := m.rdb.SetNX(ctx, key, "1", 24*time.Hour).Result()
	if err != nil {
		m.logger.Warn("stock check lock unavailable, running anyway", zap.Error(err))
		return true
	}
	return ok
}

func (m *StockMonitor) scan(ctx context.Context) (*ScanResult, error) {
	materials, err := m.materials.FindAllBelowMinimum(ctx)
	if err != nil {
		return nil, fmt.Errorf("find low stock materials: %w", err)
	}

	result := &ScanResult{
		RanAt:     time.Now(),
		Materials: materials,
	}

	if len(materials) == 0 {
		m.logger.Info("stock check: all materials above minimum")
		return result, nil
	}

	m.logger.Warn("stock check: materials below minimum",
		zap.Int("count", len(materials)))

	if m.archive != nil {
		path, err := m.archive.Store(ctx, materials, result.RanAt)
		if err != nil {
			m.logger.Error("archive stock report", zap.Error(err))
		} else {
			result.ReportPath = path
		}
	}

	if m.mailer != nil {
		if err := m.mailer.SendLowStockAlert(ctx, materials, result.RanAt); err != nil {
			m.logger.Error("send stock alert", zap.Error(err))
		} else {
			result.MailSent = true
		}
	}

	return result, nil
}

// nextRunTime returns the next occurrence of the given hour, tomorrow
// if today's slot has passed.
func nextRunTime(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
