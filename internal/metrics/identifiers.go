package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const NameIdentifierCollisions = "identifier_collisions"

var IdentifierCollisions = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameIdentifierCollisions,
		Help:      "Generated identifiers discarded because they were already taken",
		Namespace: Namespace,
	},
)
