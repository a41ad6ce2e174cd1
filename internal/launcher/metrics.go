package launcher

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	spawnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stack",
			Subsystem: "launcher",
			Name:      "spawns_total",
			Help:      "Total spawn attempts per app",
		},
		[]string{"app"},
	)

	spawnErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stack",
			Subsystem: "launcher",
			Name:      "spawn_errors_total",
			Help:      "Spawn attempts that failed outright",
		},
		[]string{"app"},
	)

	childExitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stack",
			Subsystem: "launcher",
			Name:      "child_exits_total",
			Help:      "Child exits by outcome (ok or error)",
		},
		[]string{"app", "outcome"},
	)

	childrenRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stack",
			Subsystem: "launcher",
			Name:      "children_running",
			Help:      "Children currently running",
		},
	)
)

func init() {
	prometheus.MustRegister(spawnsTotal, spawnErrorsTotal, childExitsTotal, childrenRunning)
}
