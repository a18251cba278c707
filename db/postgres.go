package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDB is the storage-layer interface (C2). All writes are upserts
// keyed as documented on the corresponding type in types.go; the analysis
// path only reads.
type PostgresDB interface {
	Close() error
	Ping(ctx context.Context) error
	InitSchema(ctx context.Context) error

	// Routes & airlines
	GetOrCreateRoute(ctx context.Context, origin, destination string) (*Route, error)
	GetRoute(ctx context.Context, origin, destination string) (*Route, error)
	ListRoutes(ctx context.Context) ([]Route, error)
	ListAirlinesForRoute(ctx context.Context, routeID int) ([]Airline, error)
	GetAirlinesByIDs(ctx context.Context, ids []int) ([]Airline, error)

	// Flight prices
	GetFlightPrices(ctx context.Context, routeID int, filter FlightPriceFilter) ([]FlightPrice, error)
	GetCheapestFlightPriceOnDate(ctx context.Context, routeID int, date time.Time, tripType TripType, cabin Cabin) (*FlightPrice, error)

	// Daily weather (C1/C3)
	GetDailyWeather(ctx context.Context, province string, start, end time.Time) ([]DailyWeatherRow, error)
	DailyWeatherExists(ctx context.Context, province string, date time.Time) (bool, error)
	UpsertDailyWeatherRows(ctx context.Context, rows []DailyWeatherRow) error
	AggregateMonthlyWeather(ctx context.Context, province, period string) (*MonthlyWeatherStat, error)
	DistinctWeatherPeriods(ctx context.Context, province string) ([]string, error)

	// Monthly weather statistics (C2/C3)
	GetMonthlyWeatherStat(ctx context.Context, province, period string) (*MonthlyWeatherStat, error)
	GetMonthlyWeatherStats(ctx context.Context, province string, periods []string) (map[string]MonthlyWeatherStat, error)
	UpsertMonthlyWeatherStat(ctx context.Context, stat MonthlyWeatherStat) error

	// Holiday statistics (C1/C2/C3)
	GetHolidayStat(ctx context.Context, period string) (*HolidayStat, error)
	GetHolidayStats(ctx context.Context, periods []string) (map[string]HolidayStat, error)
	UpsertHolidayStat(ctx context.Context, stat HolidayStat) error

	// Route price statistics (C2/C3)
	GetRoutePriceStat(ctx context.Context, routeID int, period string) (*RoutePriceStat, error)
	GetRoutePriceStats(ctx context.Context, routeID int, periods []string) (map[string]RoutePriceStat, error)
	UpsertRoutePriceStat(ctx context.Context, stat RoutePriceStat) error
}

// PostgresDBImpl is the pgx-backed implementation of PostgresDB.
type PostgresDBImpl struct {
	pool    *pgxpool.Pool
	connStr string
}

// BuildPostgresConnString builds a postgres:// URL from config, the shape pgx expects.
func BuildPostgresConnString(cfg config.PostgresConfig) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, sslmode,
	)
}

// NewPostgresDB opens a pgx connection pool and verifies connectivity.
func NewPostgresDB(cfg config.PostgresConfig) (PostgresDB, error) {
	connStr := BuildPostgresConnString(cfg)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return &PostgresDBImpl{pool: pool, connStr: connStr}, nil
}

func (p *PostgresDBImpl) Close() error {
	p.pool.Close()
	return nil
}

func (p *PostgresDBImpl) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresDBImpl) InitSchema(ctx context.Context) error {
	return RunMigrations(p.connStr)
}

// --- Routes & airlines ---

func (p *PostgresDBImpl) GetOrCreateRoute(ctx context.Context, origin, destination string) (*Route, error) {
	route, err := p.GetRoute(ctx, origin, destination)
	if err == nil {
		return route, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	row := p.pool.QueryRow(ctx, `
		INSERT INTO routes (origin, destination, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (origin, destination) DO UPDATE SET origin = EXCLUDED.origin
		RETURNING id, origin, destination, created_at`,
		origin, destination)

	r := &Route{}
	if err := row.Scan(&r.ID, &r.Origin, &r.Destination, &r.CreatedAt); err != nil {
		return nil, fmt.Errorf("create route %s-%s: %w", origin, destination, err)
	}
	return r, nil
}

func (p *PostgresDBImpl) GetRoute(ctx context.Context, origin, destination string) (*Route, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT id, origin, destination, created_at FROM routes
		WHERE origin = $1 AND destination = $2`, origin, destination)

	r := &Route{}
	if err := row.Scan(&r.ID, &r.Origin, &r.Destination, &r.CreatedAt); err != nil {
		return nil, err
	}
	return r, nil
}

func (p *PostgresDBImpl) ListRoutes(ctx context.Context) ([]Route, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, origin, destination, created_at FROM routes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.ID, &r.Origin, &r.Destination, &r.CreatedAt); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func (p *PostgresDBImpl) ListAirlinesForRoute(ctx context.Context, routeID int) ([]Airline, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT DISTINCT a.id, a.code, a.name, a.display_name_local
		FROM airlines a
		JOIN flight_prices fp ON fp.airline_id = a.id
		WHERE fp.route_id = $1
		ORDER BY a.code`, routeID)
	if err != nil {
		return nil, fmt.Errorf("list airlines for route %d: %w", routeID, err)
	}
	defer rows.Close()

	var airlines []Airline
	for rows.Next() {
		var a Airline
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.DisplayNameLocal); err != nil {
			return nil, err
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

func (p *PostgresDBImpl) GetAirlinesByIDs(ctx context.Context, ids []int) ([]Airline, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := p.pool.Query(ctx, `
		SELECT id, code, name, display_name_local FROM airlines WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get airlines by ids: %w", err)
	}
	defer rows.Close()

	var airlines []Airline
	for rows.Next() {
		var a Airline
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.DisplayNameLocal); err != nil {
			return nil, err
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

// --- Flight prices ---

func (p *PostgresDBImpl) GetFlightPrices(ctx context.Context, routeID int, filter FlightPriceFilter) ([]FlightPrice, error) {
	query := `
		SELECT fp.id, fp.route_id, fp.airline_id, a.code, a.name, fp.departure_date, fp.return_date,
		       fp.trip_type, fp.cabin, fp.price, fp.base_price, fp.season_label, fp.flight_number,
		       fp.departure_time, fp.arrival_time, fp.duration_minutes, fp.airplane, fp.carbon_grams,
		       fp.legroom, fp.often_delayed
		FROM flight_prices fp
		JOIN airlines a ON a.id = fp.airline_id
		WHERE fp.route_id = $1
		  AND fp.trip_type = $2
		  AND fp.cabin = $3`
	args := []interface{}{routeID, filter.TripType, filter.Cabin}

	// A zero StartDate or EndDate leaves that side of the date range open.
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(" AND fp.departure_date >= $%d", len(args))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(" AND fp.departure_date <= $%d", len(args))
	}

	if len(filter.AirlineIDs) > 0 {
		query += fmt.Sprintf(" AND fp.airline_id = ANY($%d)", len(args)+1)
		args = append(args, filter.AirlineIDs)
	}
	query += " ORDER BY fp.departure_date"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get flight prices for route %d: %w", routeID, err)
	}
	defer rows.Close()

	var out []FlightPrice
	for rows.Next() {
		fp, err := scanFlightPrice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fp)
	}
	return out, rows.Err()
}

func (p *PostgresDBImpl) GetCheapestFlightPriceOnDate(ctx context.Context, routeID int, date time.Time, tripType TripType, cabin Cabin) (*FlightPrice, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT fp.id, fp.route_id, fp.airline_id, a.code, a.name, fp.departure_date, fp.return_date,
		       fp.trip_type, fp.cabin, fp.price, fp.base_price, fp.season_label, fp.flight_number,
		       fp.departure_time, fp.arrival_time, fp.duration_minutes, fp.airplane, fp.carbon_grams,
		       fp.legroom, fp.often_delayed
		FROM flight_prices fp
		JOIN airlines a ON a.id = fp.airline_id
		WHERE fp.route_id = $1 AND fp.departure_date = $2 AND fp.trip_type = $3 AND fp.cabin = $4
		ORDER BY fp.price ASC
		LIMIT 1`, routeID, date, tripType, cabin)

	fp, err := scanFlightPrice(row)
	if err != nil {
		return nil, err
	}
	return &fp, nil
}

func scanFlightPrice(row interface {
	Scan(dest ...interface{}) error
}) (FlightPrice, error) {
	var fp FlightPrice
	err := row.Scan(&fp.ID, &fp.RouteID, &fp.AirlineID, &fp.AirlineCode, &fp.AirlineName,
		&fp.DepartureDate, &fp.ReturnDate, &fp.TripType, &fp.Cabin, &fp.Price, &fp.BasePrice,
		&fp.SeasonLabel, &fp.FlightNumber, &fp.DepartureTime, &fp.ArrivalTime, &fp.DurationMinutes,
		&fp.Airplane, &fp.CarbonGrams, &fp.Legroom, &fp.OftenDelayed)
	return fp, err
}

// --- Daily weather ---

func (p *PostgresDBImpl) GetDailyWeather(ctx context.Context, province string, start, end time.Time) ([]DailyWeatherRow, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT province, date, temp_max, temp_min, temp_avg, precipitation_mm, humidity, source
		FROM daily_weather
		WHERE province = $1 AND date BETWEEN $2 AND $3
		ORDER BY date`, province, start, end)
	if err != nil {
		return nil, fmt.Errorf("get daily weather for %s: %w", province, err)
	}
	defer rows.Close()

	var out []DailyWeatherRow
	for rows.Next() {
		var r DailyWeatherRow
		if err := rows.Scan(&r.Province, &r.Date, &r.TempMax, &r.TempMin, &r.TempAvg,
			&r.PrecipitationMM, &r.Humidity, &r.Source); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *PostgresDBImpl) DailyWeatherExists(ctx context.Context, province string, date time.Time) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM daily_weather WHERE province = $1 AND date = $2)`,
		province, date).Scan(&exists)
	return exists, err
}

// UpsertDailyWeatherRows writes rows idempotently. A historical row is never
// displaced by a forecast row for the same (province, date); every other
// combination (forecast over forecast, historical over forecast, historical
// over historical) overwrites the existing row (§3).
func (p *PostgresDBImpl) UpsertDailyWeatherRows(ctx context.Context, rows []DailyWeatherRow) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin weather upsert tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, r := range rows {
		_, err := tx.Exec(ctx, `
			INSERT INTO daily_weather (province, date, temp_max, temp_min, temp_avg, precipitation_mm, humidity, source)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (province, date) DO UPDATE SET
				temp_max = EXCLUDED.temp_max,
				temp_min = EXCLUDED.temp_min,
				temp_avg = EXCLUDED.temp_avg,
				precipitation_mm = EXCLUDED.precipitation_mm,
				humidity = EXCLUDED.humidity,
				source = EXCLUDED.source
			WHERE NOT (daily_weather.source = 'historical' AND EXCLUDED.source = 'forecast')`,
			r.Province, r.Date, r.TempMax, r.TempMin, r.TempAvg, r.PrecipitationMM, r.Humidity, r.Source)
		if err != nil {
			return fmt.Errorf("upsert daily weather %s/%s: %w", r.Province, r.Date.Format("2006-01-02"), err)
		}
	}
	return tx.Commit(ctx)
}

func (p *PostgresDBImpl) AggregateMonthlyWeather(ctx context.Context, province, period string) (*MonthlyWeatherStat, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT province, $2::text AS period, AVG(temp_avg), AVG(precipitation_mm), AVG(humidity), COUNT(*)
		FROM daily_weather
		WHERE province = $1 AND to_char(date, 'YYYY-MM') = $2
		GROUP BY province`, province, period)

	var stat MonthlyWeatherStat
	var avgHumidity *float64
	if err := row.Scan(&stat.Province, &stat.Period, &stat.AvgTemp, &stat.AvgRain, &avgHumidity, &stat.DaysCount); err != nil {
		return nil, err
	}
	if avgHumidity != nil {
		stat.AvgHumidity.Float64 = *avgHumidity
		stat.AvgHumidity.Valid = true
	}
	return &stat, nil
}

func (p *PostgresDBImpl) DistinctWeatherPeriods(ctx context.Context, province string) ([]string, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT DISTINCT to_char(date, 'YYYY-MM') FROM daily_weather WHERE province = $1 ORDER BY 1`, province)
	if err != nil {
		return nil, fmt.Errorf("distinct weather periods for %s: %w", province, err)
	}
	defer rows.Close()

	var periods []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

// --- Monthly weather statistics ---

func (p *PostgresDBImpl) GetMonthlyWeatherStat(ctx context.Context, province, period string) (*MonthlyWeatherStat, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT province, period, avg_temp, avg_rain, avg_humidity, weather_score, days_count
		FROM monthly_weather_stats WHERE province = $1 AND period = $2`, province, period)

	var s MonthlyWeatherStat
	if err := row.Scan(&s.Province, &s.Period, &s.AvgTemp, &s.AvgRain, &s.AvgHumidity, &s.WeatherScore, &s.DaysCount); err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *PostgresDBImpl) GetMonthlyWeatherStats(ctx context.Context, province string, periods []string) (map[string]MonthlyWeatherStat, error) {
	if len(periods) == 0 {
		return map[string]MonthlyWeatherStat{}, nil
	}
	rows, err := p.pool.Query(ctx, `
		SELECT province, period, avg_temp, avg_rain, avg_humidity, weather_score, days_count
		FROM monthly_weather_stats WHERE province = $1 AND period = ANY($2)`, province, periods)
	if err != nil {
		return nil, fmt.Errorf("get monthly weather stats for %s: %w", province, err)
	}
	defer rows.Close()

	out := map[string]MonthlyWeatherStat{}
	for rows.Next() {
		var s MonthlyWeatherStat
		if err := rows.Scan(&s.Province, &s.Period, &s.AvgTemp, &s.AvgRain, &s.AvgHumidity, &s.WeatherScore, &s.DaysCount); err != nil {
			return nil, err
		}
		out[s.Period] = s
	}
	return out, rows.Err()
}

func (p *PostgresDBImpl) UpsertMonthlyWeatherStat(ctx context.Context, stat MonthlyWeatherStat) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO monthly_weather_stats (province, period, avg_temp, avg_rain, avg_humidity, weather_score, days_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (province, period) DO UPDATE SET
			avg_temp = EXCLUDED.avg_temp,
			avg_rain = EXCLUDED.avg_rain,
			avg_humidity = EXCLUDED.avg_humidity,
			weather_score = EXCLUDED.weather_score,
			days_count = EXCLUDED.days_count`,
		stat.Province, stat.Period, stat.AvgTemp, stat.AvgRain, stat.AvgHumidity, stat.WeatherScore, stat.DaysCount)
	if err != nil {
		return fmt.Errorf("upsert monthly weather stat %s/%s: %w", stat.Province, stat.Period, err)
	}
	return nil
}

// --- Holiday statistics ---

func (p *PostgresDBImpl) GetHolidayStat(ctx context.Context, period string) (*HolidayStat, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT period, holidays_count, long_weekends_count, holiday_score, holidays_detail
		FROM holiday_stats WHERE period = $1`, period)

	var s HolidayStat
	var detail []byte
	if err := row.Scan(&s.Period, &s.HolidaysCount, &s.LongWeekendsCount, &s.HolidayScore, &detail); err != nil {
		return nil, err
	}
	if len(detail) > 0 {
		if err := json.Unmarshal(detail, &s.HolidaysDetail); err != nil {
			return nil, fmt.Errorf("decode holidays_detail for %s: %w", period, err)
		}
	}
	return &s, nil
}

func (p *PostgresDBImpl) GetHolidayStats(ctx context.Context, periods []string) (map[string]HolidayStat, error) {
	if len(periods) == 0 {
		return map[string]HolidayStat{}, nil
	}
	rows, err := p.pool.Query(ctx, `
		SELECT period, holidays_count, long_weekends_count, holiday_score, holidays_detail
		FROM holiday_stats WHERE period = ANY($1)`, periods)
	if err != nil {
		return nil, fmt.Errorf("get holiday stats: %w", err)
	}
	defer rows.Close()

	out := map[string]HolidayStat{}
	for rows.Next() {
		var s HolidayStat
		var detail []byte
		if err := rows.Scan(&s.Period, &s.HolidaysCount, &s.LongWeekendsCount, &s.HolidayScore, &detail); err != nil {
			return nil, err
		}
		if len(detail) > 0 {
			if err := json.Unmarshal(detail, &s.HolidaysDetail); err != nil {
				return nil, fmt.Errorf("decode holidays_detail for %s: %w", s.Period, err)
			}
		}
		out[s.Period] = s
	}
	return out, rows.Err()
}

func (p *PostgresDBImpl) UpsertHolidayStat(ctx context.Context, stat HolidayStat) error {
	detail, err := json.Marshal(stat.HolidaysDetail)
	if err != nil {
		return fmt.Errorf("encode holidays_detail for %s: %w", stat.Period, err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO holiday_stats (period, holidays_count, long_weekends_count, holiday_score, holidays_detail)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (period) DO UPDATE SET
			holidays_count = EXCLUDED.holidays_count,
			long_weekends_count = EXCLUDED.long_weekends_count,
			holiday_score = EXCLUDED.holiday_score,
			holidays_detail = EXCLUDED.holidays_detail`,
		stat.Period, stat.HolidaysCount, stat.LongWeekendsCount, stat.HolidayScore, detail)
	if err != nil {
		return fmt.Errorf("upsert holiday stat %s: %w", stat.Period, err)
	}
	return nil
}

// --- Route price statistics ---

func (p *PostgresDBImpl) GetRoutePriceStat(ctx context.Context, routeID int, period string) (*RoutePriceStat, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT route_id, period, price_percentile FROM route_price_stats WHERE route_id = $1 AND period = $2`,
		routeID, period)

	var s RoutePriceStat
	if err := row.Scan(&s.RouteID, &s.Period, &s.PricePercentile); err != nil {
		return nil, err
	}
	return &s, nil
}

func (p *PostgresDBImpl) GetRoutePriceStats(ctx context.Context, routeID int, periods []string) (map[string]RoutePriceStat, error) {
	if len(periods) == 0 {
		return map[string]RoutePriceStat{}, nil
	}
	rows, err := p.pool.Query(ctx, `
		SELECT route_id, period, price_percentile FROM route_price_stats
		WHERE route_id = $1 AND period = ANY($2)`, routeID, periods)
	if err != nil {
		return nil, fmt.Errorf("get route price stats for route %d: %w", routeID, err)
	}
	defer rows.Close()

	out := map[string]RoutePriceStat{}
	for rows.Next() {
		var s RoutePriceStat
		if err := rows.Scan(&s.RouteID, &s.Period, &s.PricePercentile); err != nil {
			return nil, err
		}
		out[s.Period] = s
	}
	return out, rows.Err()
}

func (p *PostgresDBImpl) UpsertRoutePriceStat(ctx context.Context, stat RoutePriceStat) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO route_price_stats (route_id, period, price_percentile)
		VALUES ($1, $2, $3)
		ON CONFLICT (route_id, period) DO UPDATE SET price_percentile = EXCLUDED.price_percentile`,
		stat.RouteID, stat.Period, stat.PricePercentile)
	if err != nil {
		return fmt.Errorf("upsert route price stat route=%d period=%s: %w", stat.RouteID, stat.Period, err)
	}
	return nil
}
