/*Package metrics wraps datadog-go to record service metrics.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Outcome counters: *.success / *.failed
*/
package metrics

import (
	"strings"
	"sync"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Config decides where metrics go. An empty DatadogHost sends every metric to
// the debug log instead of a statsd agent.
type Config struct {
	DatadogHost string
	DatadogPort int
	Env         string
	App         string
}

var (
	confMu sync.RWMutex
	conf   = Config{DatadogPort: 8125}
)

// Configure must be called before the first metric is bumped.
func Configure(c Config) {
	confMu.Lock()
	defer confMu.Unlock()
	if c.DatadogPort == 0 {
		c.DatadogPort = 8125
	}
	conf = c
}

func currentConfig() Config {
	confMu.RLock()
	defer confMu.RUnlock()
	return conf
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	c := currentConfig()
	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: []string{
				"host:", // drop the per-host tag, see dogstatsd host tag docs
				"env:" + c.Env,
				"app:" + c.App,
			},
		},
	}
}

// Metrics prefixes every key with the package name and never lets a metric
// failure reach the caller.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) recoverPanic(op, key string, tags []string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum(op+".panic", 1, 1, "tag", mt.pkgName+`.`+key+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpavg", key, tags)
	mt.datadog.BumpAvg(mt.pkgName+`.`+key, val, ddRate, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpsum", key, tags)
	mt.datadog.BumpSum(mt.pkgName+`.`+key, val, ddRate, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumphistogram", key, tags)
	mt.datadog.BumpHistogram(mt.pkgName+`.`+key, val, ddRate, tags...)
}

// BumpTime starts a timer and returns a value on which End() records it:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	ddEnd := mt.datadog.BumpTime(mt.pkgName+`.`+key, ddRate, tags...)
	return &timeTracker{
		ddEnd: ddEnd,
		panicHandler: func() {
			mt.datadog.BumpSum("bumptime.panic", 1, 1, "tag", mt.pkgName+`.`+key+"#"+strings.Join(tags, "#"))
		},
	}
}

type timeTracker struct {
	ddEnd        Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.panicHandler()
		}
	}()
	t.ddEnd.End()
}
