// internal/system/session.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

// EndRun moves a running session into its terminal phase and folds the run
// into the lifetime stats. Calling it on a finished run does nothing.
func EndRun(w *entity.World, d *event.Dispatcher, won bool) {
	if w.Phase != component.PhaseRunning {
		return
	}
	w.BestWave = max(w.BestWave, w.Wave)
	w.TotalKills += w.Kills
	if won {
		w.Gold += config.VictoryBonusGold
		w.Wins++
		w.Phase = component.PhaseWon
	} else {
		w.Phase = component.PhaseOver
	}
	w.TotalCoins += w.Gold
	w.Log.Info("run ended", "won", won, "wave", w.Wave, "kills", w.Kills, "gold", w.Gold)
	if won {
		d.Emit(event.Victory, event.WaveData{Wave: w.Wave, Round: w.RoundInWave})
	} else {
		d.Emit(event.GameOver, event.WaveData{Wave: w.Wave, Round: w.RoundInWave})
	}
}
