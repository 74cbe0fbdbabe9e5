// Package scheduler contains the background jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/leadmetrik/leadmetrik-site-sub000/infrastructure/repository"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/config"
	"github.com/leadmetrik/leadmetrik-site-sub000/internal/domain"
	"github.com/sirupsen/logrus"
)

type CatalogCacheConfig struct {
	CronSchedule string
	Enabled      bool
}

// CatalogCacheService keeps an immutable catalog snapshot in memory and
// refreshes it on a cron. The catalog is read-only from the engine's
// perspective, so one snapshot can serve every concurrent proposal session.
type CatalogCacheService struct {
	scheduler   *gocron.Scheduler
	catalogRepo repository.CatalogRepository
	config      CatalogCacheConfig

	mutex    sync.RWMutex
	snapshot *domain.CatalogSnapshot

	refreshMutex      sync.Mutex
	refreshRunning    bool
	lastRefreshedAt   time.Time
	lastRefreshFailed bool
}

func NewCatalogCacheService(
	catalogRepo repository.CatalogRepository,
	cfg *config.Config,
) *CatalogCacheService {
	cacheConfig := CatalogCacheConfig{
		CronSchedule: cfg.CatalogSync.CronSchedule,
		Enabled:      cfg.CatalogSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cacheConfig.CronSchedule,
		"enabled":       cacheConfig.Enabled,
	}).Info("Catalog cache refresh configuration loaded")

	return &CatalogCacheService{
		scheduler:   gocron.NewScheduler(time.Local),
		catalogRepo: catalogRepo,
		config:      cacheConfig,
	}
}

func (s *CatalogCacheService) Start(ctx context.Context) error {
	// Warm the cache before serving traffic. A failure here is not fatal:
	// Snapshot falls back to a lazy load on first use.
	if err := s.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("Initial catalog load failed, will retry lazily")
	}

	if !s.config.Enabled {
		logrus.Info("Catalog cache refresh cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting catalog cache refresh cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := s.Refresh(refreshCtx); err != nil {
			logrus.WithError(err).Error("Catalog cache refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule catalog cache refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping catalog cache refresh cron")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh loads a fresh snapshot from storage and swaps it in atomically.
// Concurrent refreshes collapse into one.
func (s *CatalogCacheService) Refresh(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Debug("Catalog refresh already running, skipping")
		return nil
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	templates, err := s.catalogRepo.ListIndustryTemplates(ctx)
	if err != nil {
		s.markRefreshFailed(true)
		return fmt.Errorf("failed to load industry templates: %w", err)
	}

	addOns, err := s.catalogRepo.ListActiveAddOns(ctx)
	if err != nil {
		s.markRefreshFailed(true)
		return fmt.Errorf("failed to load add-on catalog: %w", err)
	}

	snapshot := domain.NewCatalogSnapshot(templates, addOns)

	s.mutex.Lock()
	s.snapshot = snapshot
	s.mutex.Unlock()

	s.markRefreshFailed(false)

	logrus.WithFields(logrus.Fields{
		"templates": len(snapshot.Templates),
		"add_ons":   len(snapshot.AddOns),
	}).Info("Catalog snapshot refreshed")

	return nil
}

// Snapshot returns the current catalog snapshot, loading it on demand when
// the cache is still cold.
func (s *CatalogCacheService) Snapshot(ctx context.Context) (*domain.CatalogSnapshot, error) {
	s.mutex.RLock()
	snapshot := s.snapshot
	s.mutex.RUnlock()

	if snapshot != nil {
		return snapshot, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.snapshot == nil {
		return nil, fmt.Errorf("catalog snapshot unavailable")
	}

	return s.snapshot, nil
}

func (s *CatalogCacheService) markRefreshFailed(failed bool) {
	s.refreshMutex.Lock()
	s.lastRefreshFailed = failed
	s.refreshMutex.Unlock()
}
