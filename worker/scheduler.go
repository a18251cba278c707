package worker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
	"github.com/gilby125/thai-flight-analytics/queue"
	"github.com/robfig/cron/v3"
)

// scheduledJob is one fixed-cadence ingestion entry (§5). Unlike the legacy
// per-route search scheduler this replaces, jobs here are not user-defined:
// they are registered once at startup from IngestionConfig.
type scheduledJob struct {
	name     string
	schedule string // friendly schedule, parsed by parseFriendlySchedule
	run      func(ctx context.Context) error
}

// Scheduler manages the fixed cron cadence that drives ingestion (§5):
// daily weather fetch per province, periodic holiday refresh, and monthly
// score aggregation.
type Scheduler struct {
	queue   queue.Queue
	cron    *cron.Cron
	mutex   sync.Mutex
	entries map[string]cron.EntryID
	jobs    []scheduledJob
}

// NewScheduler creates a scheduler wired to the ingestion queue.
// ingestCfg.Provinces drives one weather-fetch job per province, and
// ingestCfg supplies the holiday year range; the daily run times are fixed.
func NewScheduler(q queue.Queue, ingestCfg config.IngestionConfig) *Scheduler {
	s := &Scheduler{
		queue:   q,
		cron:    cron.New(),
		entries: make(map[string]cron.EntryID),
	}

	for _, province := range ingestCfg.Provinces {
		province := province
		s.jobs = append(s.jobs, scheduledJob{
			name:     fmt.Sprintf("weather_forecast:%s", province),
			schedule: "daily at 02:00",
			run: func(ctx context.Context) error {
				_, err := s.queue.Enqueue(ctx, "ingest:weather_forecast", map[string]string{"province": province})
				return err
			},
		})
	}

	s.jobs = append(s.jobs, scheduledJob{
		name:     "holiday_refresh",
		schedule: "daily at 03:00",
		run: func(ctx context.Context) error {
			_, err := s.queue.Enqueue(ctx, "ingest:holiday", map[string]int{
				"years_back":  ingestCfg.HolidayYearRangeBack,
				"years_ahead": ingestCfg.HolidayYearRangeAhead,
			})
			return err
		},
	})

	s.jobs = append(s.jobs, scheduledJob{
		name:     "monthly_aggregate",
		schedule: "daily at 04:00",
		run: func(ctx context.Context) error {
			_, err := s.queue.Enqueue(ctx, "ingest:aggregate", map[string]string{
				"triggered_at": time.Now().UTC().Format(time.RFC3339),
			})
			return err
		},
	})

	return s
}

// Start registers all fixed jobs and starts the underlying cron scheduler.
func (s *Scheduler) Start() error {
	for _, job := range s.jobs {
		if err := s.scheduleJob(job); err != nil {
			logger.Error(err, "failed to schedule ingestion job", "job", job.name)
			continue
		}
		logger.Info("scheduled ingestion job", "job", job.name, "schedule", job.schedule)
	}

	s.cron.Start()
	logger.Info("scheduler started")
	return nil
}

// Stop stops the underlying cron scheduler, waiting for in-flight runs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("scheduler stopped")
}

func (s *Scheduler) scheduleJob(job scheduledJob) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if entryID, exists := s.entries[job.name]; exists {
		s.cron.Remove(entryID)
		delete(s.entries, job.name)
	}

	cronExpr, err := parseFriendlySchedule(job.schedule)
	if err != nil {
		return fmt.Errorf("parse friendly schedule %q: %w", job.schedule, err)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := job.run(ctx); err != nil {
			logger.Error(err, "ingestion job enqueue failed", "job", job.name)
		}
	})
	if err != nil {
		return fmt.Errorf("add cron entry for %q: %w", job.name, err)
	}

	s.entries[job.name] = entryID
	return nil
}

// parseFriendlySchedule converts a small set of human-readable schedule
// strings into standard 5-field cron expressions.
func parseFriendlySchedule(friendlySchedule string) (string, error) {
	if friendlySchedule == "" {
		return "", fmt.Errorf("friendly schedule cannot be empty")
	}

	var n int
	var err error
	var hour, min, sec int

	var intervalMinutes int
	n, err = fmt.Sscanf(friendlySchedule, "every %d minutes", &intervalMinutes)
	if err == nil && n == 1 {
		if intervalMinutes > 0 {
			return fmt.Sprintf("0 */%d * * *", intervalMinutes), nil
		}
		return "", fmt.Errorf("invalid interval for minutes schedule")
	}

	var intervalHours int
	n, err = fmt.Sscanf(friendlySchedule, "every %d hours", &intervalHours)
	if err == nil && n == 1 {
		if intervalHours > 0 {
			return fmt.Sprintf("0 0 */%d * *", intervalHours), nil
		}
		return "", fmt.Errorf("invalid interval for hours schedule")
	}

	n, err = fmt.Sscanf(friendlySchedule, "daily at %d:%d:%d", &hour, &min, &sec)
	if err == nil && n == 3 {
		if hour >= 0 && hour <= 23 && min >= 0 && min <= 59 && sec >= 0 && sec <= 59 {
			return fmt.Sprintf("%d %d * * *", min, hour), nil
		}
		return "", fmt.Errorf("invalid time format for daily schedule")
	}

	n, err = fmt.Sscanf(friendlySchedule, "daily at %d:%d", &hour, &min)
	if err == nil && n == 2 {
		if hour >= 0 && hour <= 23 && min >= 0 && min <= 59 {
			return fmt.Sprintf("%d %d * * *", min, hour), nil
		}
		return "", fmt.Errorf("invalid time format for daily schedule")
	}

	var daysStr string
	n, err = fmt.Sscanf(friendlySchedule, "weekly on %s at %d:%d", &daysStr, &hour, &min)
	if err == nil && n == 3 {
		if hour >= 0 && hour <= 23 && min >= 0 && min <= 59 {
			cronDays, err := parseCronDays(daysStr)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d %d * * %s", min, hour, cronDays), nil
		}
		return "", fmt.Errorf("invalid time format for weekly schedule")
	}

	return "", fmt.Errorf("unrecognized friendly schedule format: %q", friendlySchedule)
}

func parseCronDays(daysStr string) (string, error) {
	days := strings.ToLower(daysStr)
	var daysOfWeek []string
	for _, day := range strings.Split(days, ",") {
		switch strings.TrimSpace(day) {
		case "monday", "mon":
			daysOfWeek = append(daysOfWeek, "mon")
		case "tuesday", "tue":
			daysOfWeek = append(daysOfWeek, "tue")
		case "wednesday", "wed":
			daysOfWeek = append(daysOfWeek, "wed")
		case "thursday", "thu":
			daysOfWeek = append(daysOfWeek, "thu")
		case "friday", "fri":
			daysOfWeek = append(daysOfWeek, "fri")
		case "saturday", "sat":
			daysOfWeek = append(daysOfWeek, "sat")
		case "sunday", "sun":
			daysOfWeek = append(daysOfWeek, "sun")
		default:
			return "", fmt.Errorf("invalid day of week: %s", day)
		}
	}
	return strings.Join(daysOfWeek, ","), nil
}
