/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
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

// New creates a metric client with package name as prefix. Metrics are sent
// to the datadog agent at `datadog_host`, or logged at debug level when no
// agent is configured.
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		ddTags: []string{
			// using host removes all tags associated with host
			// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
			"host:",
			"pod:" + os.Getenv("PODNAME"),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type Metrics struct {
	pkgName string
	ddTags  []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

func (mt *Metrics) tags(tags []string) []string {
	res := make([]string, 0, len(mt.ddTags)+len(tags)/2)
	res = append(res, mt.ddTags...)
	return append(res, parseTag(tags)...)
}

// recoverPanic keeps a malformed bump from taking the caller down
func (mt *Metrics) recoverPanic(fn, key string, tags []string) {
	if err := recover(); err != nil {
		client().Count("bump.panic", 1, []string{"func:" + fn, "key:" + mt.key(key) + "#" + strings.Join(tags, "#")}, 1)
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpavg", key, tags)
	// datadog doesn't have a function to compute average only, gauge is the closest
	logBumpErr(client().Gauge(mt.key(key), val, mt.tags(tags), 1), key, val, "BumpAvg")
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpsum", key, tags)
	logBumpErr(client().Count(mt.key(key), int64(val), mt.tags(tags), 1), key, val, "BumpSum")
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumphistogram", key, tags)
	logBumpErr(client().Histogram(mt.key(key), val, mt.tags(tags), 1), key, val, "BumpHistogram")
}

// BumpTime starts a timer and returns a value on which End() records the
// elapsed time, e.g.
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		mt:    mt,
		key:   key,
		tags:  tags,
	}
}

type timeTracker struct {
	start time.Time
	mt    *Metrics
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	defer t.mt.recoverPanic("bumptime", t.key, t.tags)

	d := time.Since(t.start)
	dur := float64(d/time.Millisecond) + float64(d%time.Millisecond)*1e-6
	logBumpErr(client().TimeInMilliseconds(t.mt.key(t.key), dur, t.mt.tags(t.tags), 1), t.key, dur, "BumpTime")
}
