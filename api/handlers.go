package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gilby125/thai-flight-analytics/analysis"
	"github.com/gilby125/thai-flight-analytics/apperr"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/pricing"
	"github.com/gilby125/thai-flight-analytics/queue"
	"github.com/gilby125/thai-flight-analytics/worker"
	"github.com/gin-gonic/gin"
)

// analyzeRequestBody mirrors the wire shape of analysis.Request.
type analyzeRequestBody struct {
	Origin           string   `json:"origin" binding:"required"`
	Destination      string   `json:"destination" binding:"required"`
	TripType         string   `json:"tripType"`
	Cabin            string   `json:"cabin"`
	DurationMin      int      `json:"durationMin"`
	DurationMax      int      `json:"durationMax"`
	SelectedAirlines []string `json:"selectedAirlines"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Adults           int      `json:"adults"`
	Children         int      `json:"children"`
	Infants          int      `json:"infants"`
}

// AnalyzeFlightPrices handles POST /api/v1/analyze, the sole public
// analysis entry point (§4.5, §6).
func AnalyzeFlightPrices(orch *analysis.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body analyzeRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		req := analysis.Request{
			Origin:      body.Origin,
			Destination: body.Destination,
			TripType:    db.TripType(body.TripType),
			Cabin:       db.Cabin(body.Cabin),
			DurationRange: analysis.DurationRange{
				Min: body.DurationMin,
				Max: body.DurationMax,
			},
			SelectedAirlines: body.SelectedAirlines,
			Passengers: pricing.Passengers{
				Adults:   maxInt(body.Adults, 1),
				Children: body.Children,
				Infants:  body.Infants,
			},
		}

		if body.StartDate != "" {
			t, err := time.Parse("2006-01-02", body.StartDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
				return
			}
			req.StartDate = &t
		}
		if body.EndDate != "" {
			t, err := time.Parse("2006-01-02", body.EndDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
				return
			}
			req.EndDate = &t
		}

		result, err := orch.AnalyzeFlightPrices(c.Request.Context(), req)
		if err != nil {
			writeAnalysisError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func writeAnalysisError(c *gin.Context, err error) {
	kind, ok := apperr.KindOf(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	switch kind {
	case apperr.KindInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperr.KindTimeout:
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func maxInt(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

// GetAirlines lists all airlines known to the system.
func GetAirlines(store db.PostgresDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes, err := store.ListRoutes(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		seen := map[int]db.Airline{}
		for _, r := range routes {
			airlines, err := store.ListAirlinesForRoute(c.Request.Context(), r.ID)
			if err != nil {
				continue
			}
			for _, a := range airlines {
				seen[a.ID] = a
			}
		}

		out := make([]db.Airline, 0, len(seen))
		for _, a := range seen {
			out = append(out, a)
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetRoutes lists all known (origin, destination) route pairs.
func GetRoutes(store db.PostgresDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes, err := store.ListRoutes(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, routes)
	}
}

// GetWorkerStatus reports the ingestion worker pool's current status.
func GetWorkerStatus(manager *worker.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if manager == nil {
			c.JSON(http.StatusOK, gin.H{"workers": []worker.WorkerStatus{}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"workers": manager.WorkerStatuses()})
	}
}

// GetQueueStatus reports backlog statistics for one ingestion queue.
func GetQueueStatus(q queue.Queue) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if q == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queue unavailable"})
			return
		}
		stats, err := q.GetQueueStats(c.Request.Context(), name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// ListQueueJobs lists recent jobs on one ingestion queue.
func ListQueueJobs(q queue.Queue) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		state := c.DefaultQuery("state", "")
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		jobs, err := q.ListJobs(c.Request.Context(), name, state, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, jobs)
	}
}

// TriggerIngestion enqueues an ad-hoc ingestion job (admin-gated), bypassing
// the fixed-cadence scheduler, used to backfill or re-run a failed window.
func TriggerIngestion(q queue.Queue) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobType := c.Param("type")
		queueName := "ingest:" + jobType
		if !isKnownIngestionType(jobType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown ingestion type"})
			return
		}

		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil && err.Error() != "EOF" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := q.Enqueue(c.Request.Context(), queueName, payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"job_id": id})
	}
}

func isKnownIngestionType(t string) bool {
	switch t {
	case "weather_historical", "weather_forecast", "holiday", "aggregate":
		return true
	default:
		return false
	}
}
