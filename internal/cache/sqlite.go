package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"CoinScout/internal/model"
)

// CandleCache stores fetched candle series in SQLite so a scheduled
// re-screen does not re-fetch unchanged daily history for the whole
// universe. Entries expire after a TTL; nothing derived from the candles
// is ever cached.
type CandleCache struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
}

// NewCandleCache opens (or creates) the cache database and runs
// migrations.
func NewCandleCache(dbPath string, ttl time.Duration) (*CandleCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so concurrent workers can read while one writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &CandleCache{db: db, ttl: ttl}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Dur("ttl", ttl).Msg("candle cache opened")
	return c, nil
}

func (c *CandleCache) migrate() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS candle_series (
		symbol     TEXT    NOT NULL,
		interval   TEXT    NOT NULL,
		bar_count  INTEGER NOT NULL,
		fetched_at INTEGER NOT NULL,
		payload    BLOB    NOT NULL,
		PRIMARY KEY (symbol, interval, bar_count)
	)`)
	return err
}

// Get returns the cached series for (symbol, interval, limit) if present
// and fresh.
func (c *CandleCache) Get(symbol, interval string, limit int) (*model.Series, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fetchedAt int64
	var payload []byte
	err := c.db.QueryRow(
		`SELECT fetched_at, payload FROM candle_series WHERE symbol = ? AND interval = ? AND bar_count = ?`,
		symbol, interval, limit,
	).Scan(&fetchedAt, &payload)
	if err != nil {
		return nil, false
	}

	fetched := time.Unix(fetchedAt, 0)
	if time.Since(fetched) > c.ttl {
		return nil, false
	}

	var candles []model.Candle
	if err := json.Unmarshal(payload, &candles); err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("candle cache payload corrupt, ignoring")
		return nil, false
	}

	return &model.Series{
		Symbol:    symbol,
		Interval:  interval,
		Candles:   candles,
		FetchedAt: fetched,
	}, true
}

// Put stores a fetched series, replacing any previous entry.
func (c *CandleCache) Put(series *model.Series, limit int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload, err := json.Marshal(series.Candles)
	if err != nil {
		return fmt.Errorf("marshal candles: %w", err)
	}
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO candle_series (symbol, interval, bar_count, fetched_at, payload) VALUES (?, ?, ?, ?, ?)`,
		series.Symbol, series.Interval, limit, series.FetchedAt.Unix(), payload,
	)
	if err != nil {
		return fmt.Errorf("store candles: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (c *CandleCache) Close() error { return c.db.Close() }
