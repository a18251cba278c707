package worker

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/ingest"
	"github.com/gilby125/thai-flight-analytics/metrics"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
	"github.com/gilby125/thai-flight-analytics/pkg/worker_registry"
	"github.com/gilby125/thai-flight-analytics/queue"
	"github.com/redis/go-redis/v9"
)

// ingestionQueues lists the job streams a worker goroutine polls, in
// priority order. Unlike the fixed-cadence scheduler these jobs are
// enqueued from, ad-hoc callers (the admin API) can also push onto them
// directly.
var ingestionQueues = []string{
	"ingest:weather_historical",
	"ingest:weather_forecast",
	"ingest:holiday",
	"ingest:aggregate",
}

// workerState tracks runtime statistics for a worker goroutine.
type workerState struct {
	ID            int
	Status        string
	CurrentJob    string
	ProcessedJobs int
	StartedAt     time.Time
	LastHeartbeat time.Time
}

// WorkerStatus is a snapshot of worker metrics exposed via the API.
type WorkerStatus struct {
	ID            int    `json:"id"`
	Status        string `json:"status"`
	CurrentJob    string `json:"current_job,omitempty"`
	ProcessedJobs int    `json:"processed_jobs"`
	Uptime        int64  `json:"uptime"` // seconds
}

// Manager manages a pool of ingestion workers, a fixed-cadence scheduler,
// and (when Redis is available) leader election so the scheduler runs on a
// single instance across a deployment.
type Manager struct {
	queue      queue.Queue
	store      db.PostgresDB
	config     config.WorkerConfig
	ingestCfg  config.IngestionConfig
	workers    []*Worker
	stopChan   chan struct{}
	workerWg   sync.WaitGroup
	scheduler  *Scheduler
	statsMutex sync.RWMutex

	workerStates  []*workerState
	leaderElector *LeaderElector
	redisClient   *redis.Client
}

// NewManager creates a worker manager wired to store and the queue. If
// redisClient is non-nil, leader election is enabled for the scheduler;
// otherwise the scheduler runs on every instance.
func NewManager(
	q queue.Queue,
	redisClient *redis.Client,
	store db.PostgresDB,
	weatherIngester *ingest.WeatherIngester,
	holidayIngester *ingest.HolidayIngester,
	priceRefresher *ingest.RoutePriceRefresher,
	workerConfig config.WorkerConfig,
	ingestCfg config.IngestionConfig,
) *Manager {
	scheduler := NewScheduler(q, ingestCfg)

	m := &Manager{
		queue:        q,
		store:        store,
		config:       workerConfig,
		ingestCfg:    ingestCfg,
		stopChan:     make(chan struct{}),
		scheduler:    scheduler,
		workerStates: make([]*workerState, workerConfig.Concurrency),
		redisClient:  redisClient,
	}

	for i := 0; i < workerConfig.Concurrency; i++ {
		m.workers = append(m.workers, &Worker{
			store:           store,
			weatherIngester: weatherIngester,
			holidayIngester: holidayIngester,
			priceRefresher:  priceRefresher,
		})
	}

	if redisClient != nil {
		m.leaderElector = NewLeaderElector(
			redisClient,
			workerConfig.SchedulerLockKey,
			workerConfig.SchedulerLockTTL,
			workerConfig.SchedulerLockRenew,
			m.onBecomeLeader,
			m.onLoseLeader,
		)
	}

	return m
}

func (m *Manager) onBecomeLeader() {
	logger.Info("instance became scheduler leader, starting scheduler")
	if err := m.scheduler.Start(); err != nil {
		logger.Error(err, "failed to start scheduler after becoming leader")
	}
}

func (m *Manager) onLoseLeader() {
	logger.Info("instance lost scheduler leadership, stopping scheduler")
	m.scheduler.Stop()
}

func (m *Manager) updateWorkerState(workerIndex int, updateFn func(*workerState)) {
	if updateFn == nil || workerIndex < 0 || workerIndex >= len(m.workerStates) {
		return
	}

	m.statsMutex.Lock()
	defer m.statsMutex.Unlock()

	state := m.workerStates[workerIndex]
	if state == nil {
		state = &workerState{ID: workerIndex + 1}
		m.workerStates[workerIndex] = state
	}
	updateFn(state)
}

// WorkerStatuses returns a snapshot of current worker metrics.
func (m *Manager) WorkerStatuses() []WorkerStatus {
	m.statsMutex.RLock()
	defer m.statsMutex.RUnlock()

	statuses := make([]WorkerStatus, 0, len(m.workerStates))
	now := time.Now()
	for _, state := range m.workerStates {
		if state == nil {
			continue
		}

		uptime := int64(0)
		if !state.StartedAt.IsZero() {
			uptime = int64(now.Sub(state.StartedAt).Seconds())
			if uptime < 0 {
				uptime = 0
			}
		}

		statuses = append(statuses, WorkerStatus{
			ID:            state.ID,
			Status:        state.Status,
			CurrentJob:    state.CurrentJob,
			ProcessedJobs: state.ProcessedJobs,
			Uptime:        uptime,
		})
	}

	return statuses
}

// Start starts the worker pool and scheduler. If leader election is
// enabled, only the leader instance runs the scheduler.
func (m *Manager) Start() {
	logger.Info("starting ingestion worker pool", "workers", len(m.workers))

	now := time.Now()
	m.statsMutex.Lock()
	for i := range m.workerStates {
		m.workerStates[i] = &workerState{
			ID:            i + 1,
			Status:        "starting",
			StartedAt:     now,
			LastHeartbeat: now,
		}
	}
	m.statsMutex.Unlock()

	m.startRegistryHeartbeat()

	for i, worker := range m.workers {
		m.workerWg.Add(1)
		go m.runWorker(i, worker)
	}

	if m.leaderElector != nil {
		m.leaderElector.Start()
		logger.Info("leader election started, scheduler runs on leader instance only")
	} else if err := m.scheduler.Start(); err != nil {
		logger.Error(err, "failed to start scheduler")
	}
}

// GetQueue exposes the underlying queue for admin endpoints.
func (m *Manager) GetQueue() queue.Queue {
	if m == nil {
		return nil
	}
	return m.queue
}

// GetScheduler exposes the scheduler for admin endpoints.
func (m *Manager) GetScheduler() *Scheduler {
	if m == nil {
		return nil
	}
	return m.scheduler
}

func (m *Manager) startRegistryHeartbeat() {
	if m == nil || m.redisClient == nil || m.config.WorkerID == "" {
		return
	}
	namespace := m.config.RegistryNamespace
	if namespace == "" {
		namespace = "thai-flight-analytics"
	}

	reg := worker_registry.New(m.redisClient, namespace)
	hostname, _ := os.Hostname()
	startedAt := time.Now().UTC()
	interval := m.config.HeartbeatInterval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ttl := m.config.HeartbeatTTL
	if ttl <= 0 {
		ttl = 45 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-m.stopChan:
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				_ = reg.Publish(ctx, m.buildRegistryHeartbeat(hostname, startedAt, time.Now().UTC(), "stopped"), ttl)
				cancel()
				return
			case <-ticker.C:
				now := time.Now().UTC()
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				if err := reg.Publish(ctx, m.buildRegistryHeartbeat(hostname, startedAt, now, ""), ttl); err != nil {
					logger.Error(err, "failed to publish worker heartbeat")
				}
				cancel()
			}
		}
	}()
}

func (m *Manager) buildRegistryHeartbeat(hostname string, startedAt, now time.Time, forceStatus string) worker_registry.WorkerHeartbeat {
	hb := worker_registry.WorkerHeartbeat{
		ID:            m.config.WorkerID,
		Hostname:      hostname,
		Concurrency:   m.config.Concurrency,
		StartedAt:     startedAt,
		LastHeartbeat: now,
		Version:       "1.0.0",
	}

	m.statsMutex.RLock()
	defer m.statsMutex.RUnlock()

	status := "active"
	currentJob := ""
	processedTotal := 0

	for _, state := range m.workerStates {
		if state == nil {
			continue
		}
		processedTotal += state.ProcessedJobs
		if currentJob == "" && state.CurrentJob != "" {
			currentJob = state.CurrentJob
		}
		if state.Status == "processing" {
			status = "processing"
		}
	}

	if forceStatus != "" {
		status = forceStatus
	}

	hb.Status = status
	hb.CurrentJob = currentJob
	hb.ProcessedJobs = processedTotal
	return hb
}

// Stop stops the worker pool and scheduler, releasing leadership first if held.
func (m *Manager) Stop() {
	logger.Info("stopping ingestion worker pool and scheduler")

	now := time.Now()
	m.statsMutex.Lock()
	for _, state := range m.workerStates {
		if state != nil {
			state.Status = "stopping"
			state.CurrentJob = ""
			state.LastHeartbeat = now
		}
	}
	m.statsMutex.Unlock()

	if m.leaderElector != nil {
		m.leaderElector.Stop()
	} else {
		m.scheduler.Stop()
	}

	close(m.stopChan)

	done := make(chan struct{})
	go func() {
		m.workerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("all ingestion workers stopped gracefully")
	case <-time.After(m.config.ShutdownTimeout):
		logger.Info("ingestion worker shutdown timed out")
	}

	m.statsMutex.Lock()
	for _, state := range m.workerStates {
		if state != nil {
			state.Status = "stopped"
			state.LastHeartbeat = time.Now()
			state.CurrentJob = ""
		}
	}
	m.statsMutex.Unlock()
}

// runWorker runs a single worker goroutine, polling each ingestion queue in
// turn until Stop is called.
func (m *Manager) runWorker(id int, worker *Worker) {
	defer m.workerWg.Done()
	displayID := id + 1
	now := time.Now()
	m.updateWorkerState(id, func(state *workerState) {
		if state.StartedAt.IsZero() {
			state.StartedAt = now
		}
		state.Status = "active"
		state.CurrentJob = ""
		state.LastHeartbeat = now
	})
	metrics.WorkersActive.Inc()

	logger.Info("ingestion worker started", "worker_id", displayID)

	for {
		select {
		case <-m.stopChan:
			m.updateWorkerState(id, func(state *workerState) {
				state.Status = "stopped"
				state.CurrentJob = ""
				state.LastHeartbeat = time.Now()
			})
			metrics.WorkersActive.Dec()
			logger.Info("ingestion worker stopping", "worker_id", displayID)
			return
		default:
			processedAny := false
			for _, queueName := range ingestionQueues {
				did, err := m.processQueue(id, worker, queueName)
				if err != nil {
					logger.Error(err, "error processing ingestion queue", "worker_id", displayID, "queue", queueName)
				}
				processedAny = processedAny || did
			}
			if !processedAny {
				time.Sleep(200 * time.Millisecond)
			}
		}
	}
}

// processQueue dequeues and processes a single job from queueName, if any
// is available. Returns whether a job was actually processed.
func (m *Manager) processQueue(workerIndex int, worker *Worker, queueName string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), m.config.JobTimeout)
	defer cancel()

	job, err := m.queue.Dequeue(ctx, queueName)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return false, nil
		}
		m.updateWorkerState(workerIndex, func(state *workerState) {
			state.Status = "error"
			state.CurrentJob = ""
			state.LastHeartbeat = time.Now()
		})
		return false, fmt.Errorf("dequeue from %s: %w", queueName, err)
	}
	if job == nil {
		m.updateWorkerState(workerIndex, func(state *workerState) {
			if state.Status != "processing" {
				state.Status = "active"
			}
			state.CurrentJob = ""
			state.LastHeartbeat = time.Now()
		})
		return false, nil
	}

	m.updateWorkerState(workerIndex, func(state *workerState) {
		state.Status = "processing"
		state.CurrentJob = fmt.Sprintf("%s:%s", queueName, job.ID)
		state.LastHeartbeat = time.Now()
	})

	start := time.Now()
	err = m.processJob(ctx, worker, queueName, job)
	duration := time.Since(start)
	metrics.IngestionJobDuration.WithLabelValues(queueName).Observe(duration.Seconds())

	if err != nil {
		logger.Error(err, "ingestion job failed", "queue", queueName, "job_id", job.ID, "duration", duration)
		metrics.IngestionJobsProcessed.WithLabelValues(queueName, "failed").Inc()
		if nackErr := m.queue.Nack(ctx, queueName, job.ID); nackErr != nil {
			logger.Error(nackErr, "nack failed", "job_id", job.ID)
		}
		m.updateWorkerState(workerIndex, func(state *workerState) {
			state.Status = "active"
			state.CurrentJob = ""
			state.LastHeartbeat = time.Now()
		})
		return true, fmt.Errorf("process job %s: %w", job.ID, err)
	}

	if ackErr := m.queue.Ack(ctx, queueName, job.ID); ackErr != nil {
		logger.Error(ackErr, "ack failed", "job_id", job.ID)
	}
	metrics.IngestionJobsProcessed.WithLabelValues(queueName, "completed").Inc()

	m.updateWorkerState(workerIndex, func(state *workerState) {
		state.Status = "active"
		state.CurrentJob = ""
		state.ProcessedJobs++
		state.LastHeartbeat = time.Now()
	})

	logger.Info("ingestion job completed", "queue", queueName, "job_id", job.ID, "duration", duration)
	return true, nil
}

// processJob dispatches a dequeued job to the matching Worker processor.
func (m *Manager) processJob(ctx context.Context, worker *Worker, queueName string, job *queue.Job) error {
	switch queueName {
	case "ingest:weather_historical":
		return worker.ProcessWeatherHistorical(ctx, job.Payload)
	case "ingest:weather_forecast":
		return worker.ProcessWeatherForecast(ctx, job.Payload)
	case "ingest:holiday":
		return worker.ProcessHoliday(ctx, job.Payload)
	case "ingest:aggregate":
		return worker.ProcessAggregate(ctx, job.Payload)
	default:
		return fmt.Errorf("unknown ingestion queue %q", queueName)
	}
}
