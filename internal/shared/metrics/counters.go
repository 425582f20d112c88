package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BetsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bet_core_bets_placed_total",
		Help: "apostas aceitas",
	})
	BetsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bet_core_bets_settled_total",
		Help: "apostas liquidadas por resultado",
	}, []string{"status"})
	LockConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bet_core_lock_conflicts_total",
		Help: "conflitos de versão por entidade",
	}, []string{"entity"})
)
