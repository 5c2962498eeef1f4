package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("averages battles", func(t *testing.T) {
		c := NewCollector()
		c.Start(10, 5)
		c.AddBattle(BattleMetric{Rounds: 3, Conquered: true, AttackersLeft: 8, DefendersLeft: 0})
		c.AddBattle(BattleMetric{Rounds: 5, Conquered: false, AttackersLeft: 1, DefendersLeft: 2})

		got := c.Complete()

		require.Equal(t, 10, got.Attacking)
		require.Equal(t, 5, got.Defending)
		require.Equal(t, 2, got.Battles)
		require.Equal(t, 1, got.Wins)
		require.InDelta(t, 0.5, got.WinRate, 1e-9)
		require.InDelta(t, 4.0, got.MeanRounds, 1e-9)
		require.InDelta(t, 4.5, got.MeanAttackersLeft, 1e-9)
		require.InDelta(t, 1.0, got.MeanDefendersLeft, 1e-9)
	})

	t.Run("no battles", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, 3)

		got := c.Complete()

		require.Equal(t, 0, got.Battles)
		require.Equal(t, 0.0, got.WinRate)
	})

	t.Run("start resets", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, 3)
		c.AddBattle(BattleMetric{Conquered: true})
		c.Start(4, 4)

		got := c.Complete()

		require.Equal(t, 0, got.Wins)
		require.Equal(t, 4, got.Attacking)
	})
}
