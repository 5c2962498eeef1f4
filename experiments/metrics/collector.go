package metrics

import (
	"time"
)

type BattleMetric struct {
	Rounds        int
	Conquered     bool
	AttackersLeft int
	DefendersLeft int
}

type OddsMetric struct {
	Attacking         int
	Defending         int
	Battles           int
	Wins              int
	WinRate           float64
	MeanRounds        float64
	MeanAttackersLeft float64
	MeanDefendersLeft float64
	Duration          time.Duration
}

type Collector interface {
	Start(attacking, defending int)
	AddBattle(battle BattleMetric)
	Complete() OddsMetric
}

type collector struct {
	attacking     int
	defending     int
	startTime     time.Time
	battles       int
	wins          int
	rounds        int
	attackersLeft int
	defendersLeft int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(attacking, defending int) {
	*m = collector{
		attacking: attacking,
		defending: defending,
		startTime: time.Now(),
	}
}

func (m *collector) AddBattle(battle BattleMetric) {
	m.battles++
	if battle.Conquered {
		m.wins++
	}
	m.rounds += battle.Rounds
	m.attackersLeft += battle.AttackersLeft
	m.defendersLeft += max(battle.DefendersLeft, 0)
}

func (m *collector) Complete() OddsMetric {
	metric := OddsMetric{
		Attacking: m.attacking,
		Defending: m.defending,
		Battles:   m.battles,
		Wins:      m.wins,
		Duration:  time.Since(m.startTime),
	}
	if m.battles == 0 {
		return metric
	}
	n := float64(m.battles)
	metric.WinRate = float64(m.wins) / n
	metric.MeanRounds = float64(m.rounds) / n
	metric.MeanAttackersLeft = float64(m.attackersLeft) / n
	metric.MeanDefendersLeft = float64(m.defendersLeft) / n
	return metric
}
