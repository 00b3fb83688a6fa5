package irbridge

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Stats accumulates decode/error counts per protocol between flushes. Each
// counter is updated with sync/atomic; finding a protocol's counters takes
// s.mu, so every Record call briefly holds that mutex.
type Stats struct {
	mu     sync.Mutex
	counts map[string]*protoCounts
}

type protoCounts struct {
	decoded int64
	errors  int64
}

// NewStats constructs an empty counter set.
func NewStats() *Stats {
	return &Stats{counts: make(map[string]*protoCounts)}
}

// RecordDecoded increments the decoded-command counter for protocol.
func (s *Stats) RecordDecoded(protocol string) {
	atomic.AddInt64(&s.counterFor(protocol).decoded, 1)
}

// RecordError increments the decode-error counter for protocol.
func (s *Stats) RecordError(protocol string) {
	atomic.AddInt64(&s.counterFor(protocol).errors, 1)
}

func (s *Stats) counterFor(protocol string) *protoCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counts[protocol]
	if !ok {
		c = &protoCounts{}
		s.counts[protocol] = c
	}
	return c
}

// snapshot atomically reads and resets every protocol's counters.
func (s *Stats) snapshot() map[string]protoCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]protoCounts, len(s.counts))
	for protocol, c := range s.counts {
		out[protocol] = protoCounts{
			decoded: atomic.SwapInt64(&c.decoded, 0),
			errors:  atomic.SwapInt64(&c.errors, 0),
		}
	}
	return out
}

// InfluxConfig configures the optional time-series export. Addr == ""
// disables export; the cron flush still runs (and still logs), it just
// skips the WriteAPIBlocking call.
type InfluxConfig struct {
	Addr   string
	Token  string
	Org    string
	Bucket string
}

// StatsFlusher runs a cron job (the same construction as the teacher's
// engine.Scheduler) that periodically snapshots Stats and writes a
// decode_stats point to InfluxDB, when configured.
type StatsFlusher struct {
	cron     *cron.Cron
	stats    *Stats
	influx   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	log      *zap.Logger
}

// NewStatsFlusher constructs a flusher. If cfg.Addr is empty, counters are
// still logged every flush but never exported to InfluxDB.
func NewStatsFlusher(stats *Stats, cfg InfluxConfig, log *zap.Logger) *StatsFlusher {
	f := &StatsFlusher{
		cron:   cron.New(),
		stats:  stats,
		bucket: cfg.Bucket,
		log:    log,
	}

	if cfg.Addr != "" {
		f.influx = influxdb2.NewClient(cfg.Addr, cfg.Token)
		f.writeAPI = f.influx.WriteAPIBlocking(cfg.Org, cfg.Bucket)
	}

	return f
}

// Start schedules the minute-by-minute flush and starts the cron
// scheduler.
func (f *StatsFlusher) Start() error {
	if _, err := f.cron.AddFunc("@every 1m", f.flush); err != nil {
		return err
	}
	f.cron.Start()
	return nil
}

// Stop stops the cron scheduler and closes the InfluxDB client.
func (f *StatsFlusher) Stop() {
	f.cron.Stop()
	if f.influx != nil {
		f.influx.Close()
	}
}

func (f *StatsFlusher) flush() {
	snap := f.stats.snapshot()

	for protocol, c := range snap {
		if f.log != nil {
			f.log.Info("decode stats",
				zap.String("protocol", protocol),
				zap.Int64("decoded", c.decoded),
				zap.Int64("errors", c.errors))
		}

		if f.writeAPI == nil {
			continue
		}

		point := influxdb2.NewPoint("decode_stats",
			map[string]string{"protocol": protocol},
			map[string]interface{}{"decoded": c.decoded, "errors": c.errors},
			time.Now())

		if err := f.writeAPI.WritePoint(context.Background(), point); err != nil && f.log != nil {
			f.log.Warn("irbridge: influx write failed", zap.Error(err))
		}
	}
}
