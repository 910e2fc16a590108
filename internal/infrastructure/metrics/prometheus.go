// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "openveo_repository"

var (
	// LookupsTotal tracks reference resolutions.
	// Labels:
	//   - operation: search, details
	//   - outcome: unmatched, published, missing, request_failed
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Total number of video reference resolutions",
		},
		[]string{"operation", "outcome"},
	)

	// EventsTotal tracks diagnostic events.
	// Labels:
	//   - event: connection_failed, getting_videos_failed
	//   - status: success, error
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total number of diagnostic events emitted",
		},
		[]string{"event", "status"},
	)

	// CacheOperationsTotal tracks cache operations (get, set, delete).
	// Labels:
	//   - operation: get, set, delete
	//   - status: hit, miss, success, error
	//   - cache_type: redis
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "status", "cache_type"},
	)

	// SingleflightRequestsTotal tracks singleflight behavior.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)

	// FilesRemovedTotal tracks files removed by the uninstaller.
	FilesRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_removed_total",
			Help:      "Total number of host files removed on uninstall",
		},
	)
)

// Lookup operation constants.
const (
	LookupSearch  = "search"
	LookupDetails = "details"
)

// Status constants shared by events and cache operations.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Cache operation status constants.
const (
	CacheStatusHit  = "hit"
	CacheStatusMiss = "miss"
)

// Cache operation type constants.
const (
	CacheOpGet    = "get"
	CacheOpSet    = "set"
	CacheOpDelete = "delete"
)

// Cache type constants.
const (
	CacheTypeRedis = "redis"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)
