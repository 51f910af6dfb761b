package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopgenie_orders_placed_total",
		Help: "Total number of orders successfully placed.",
	})

	ReturnsRequestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopgenie_returns_requested_total",
		Help: "Total number of return requests recorded.",
	})

	ReturnsFlaggedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopgenie_returns_flagged_total",
		Help: "Total number of return requests flagged for manual review.",
	})

	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopgenie_catalog_searches_total",
		Help: "Total number of catalog searches served.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopgenie_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ProductCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shopgenie_product_cache_items",
		Help: "Current number of products held in the snapshot cache.",
	})
)
