package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameCascadeDeleted = "cascade_deleted_total"
	LabelKind          = "kind"
)

const (
	KindTeam    = "team"
	KindFeature = "feature"
	KindStory   = "story"
	KindTask    = "task"
)

var CascadeDeleted = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameCascadeDeleted,
		Help:      "Records removed by cascading deletions",
		Namespace: Namespace,
	},
	[]string{LabelKind},
)
