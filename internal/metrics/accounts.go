package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalRegistrations = "total_registrations"
	NameTotalLogins        = "total_logins"
	LabelResult            = "result"
)

const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
)

var TotalRegistrations = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalRegistrations,
		Help:      "Total registered accounts",
		Namespace: Namespace,
	},
)

var TotalLogins = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTotalLogins,
		Help:      "Total login attempts",
		Namespace: Namespace,
	},
	[]string{LabelResult},
)
