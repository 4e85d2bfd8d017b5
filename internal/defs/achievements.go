// internal/defs/achievements.go
package defs

// AchievementID identifies a one-time in-session achievement.
type AchievementID string

const (
	AchFirstBlood   AchievementID = "firstBlood"
	AchComboKing    AchievementID = "comboKing"
	AchWaveMaster   AchievementID = "wavemaster"
	AchDamageDealer AchievementID = "damageDealer"
	AchAllySavior   AchievementID = "allySavior"
	AchWeaponMaster AchievementID = "weaponMaster"
	AchKillStreak   AchievementID = "killStreak"
	AchRichMan      AchievementID = "richman"
	AchSurvivalKing AchievementID = "survivalKing"
	AchCriticalHit  AchievementID = "criticalHit"
)

// Achievement is a (name, icon, reward, predicate) record.
type Achievement struct {
	ID        AchievementID
	Name      string
	Icon      string
	Reward    int
	Condition func(s ProgressStats) bool
}

// Achievements are evaluated in this order after every kill.
var Achievements = []Achievement{
	{ID: AchFirstBlood, Name: "First Blood", Icon: "🩸", Reward: 50, Condition: func(s ProgressStats) bool { return s.Kills == 1 }},
	{ID: AchComboKing, Name: "Combo King", Icon: "⚡", Reward: 200, Condition: func(s ProgressStats) bool { return s.MaxCombo >= 10 }},
	{ID: AchWaveMaster, Name: "Wave Master", Icon: "🌊", Reward: 500, Condition: func(s ProgressStats) bool { return s.Wave >= 10 }},
	{ID: AchDamageDealer, Name: "Damage Dealer", Icon: "💥", Reward: 300, Condition: func(s ProgressStats) bool { return s.TotalDamageDealt >= 10000 }},
	{ID: AchAllySavior, Name: "Ally Savior", Icon: "🛡", Reward: 150, Condition: func(s ProgressStats) bool { return s.Allies >= 3 }},
	{ID: AchWeaponMaster, Name: "Weapon Master", Icon: "🔫", Reward: 250, Condition: func(s ProgressStats) bool { return s.WeaponsWithKills >= 5 }},
	{ID: AchKillStreak, Name: "Kill Streak", Icon: "🔥", Reward: 100, Condition: func(s ProgressStats) bool { return s.KillStreak >= 5 }},
	{ID: AchRichMan, Name: "Rich Man", Icon: "💰", Reward: 0, Condition: func(s ProgressStats) bool { return s.Gold >= 5000 }},
	{ID: AchSurvivalKing, Name: "Survival King", Icon: "👑", Reward: 400, Condition: func(s ProgressStats) bool { return s.WavesSurvived >= 20 }},
	{ID: AchCriticalHit, Name: "Critical Hit Master", Icon: "💢", Reward: 200, Condition: func(s ProgressStats) bool { return s.Headshots >= 10 }},
}

// AchievementByID returns the achievement record, if any.
func AchievementByID(id AchievementID) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// BadgeID is the 1-based badge number.
type BadgeID int

// Badge is a lifetime milestone checked once per second of play.
type Badge struct {
	ID        BadgeID
	Name      string
	Desc      string
	Condition func(s ProgressStats) bool
}

var Badges = []Badge{
	{1, "First Blood", "Kill 10 enemies", func(s ProgressStats) bool { return s.Kills >= 10 }},
	{2, "Killer", "Kill 50 enemies", func(s ProgressStats) bool { return s.Kills >= 50 }},
	{3, "Slayer", "Kill 100 enemies", func(s ProgressStats) bool { return s.Kills >= 100 }},
	{4, "Boss Slayer", "Defeat 5 bosses", func(s ProgressStats) bool { return s.BossesDefeated >= 5 }},
	{5, "Wave Survivor", "Reach wave 10", func(s ProgressStats) bool { return s.BestWave >= 10 }},
	{6, "Survivor", "Reach wave 20", func(s ProgressStats) bool { return s.BestWave >= 20 }},
	{7, "Champion", "Win the game", func(s ProgressStats) bool { return s.Wins >= 1 }},
	{8, "Collector", "Get 5000 coins", func(s ProgressStats) bool { return s.Gold >= 5000 }},
	{9, "Rich", "Get 20000 coins", func(s ProgressStats) bool { return s.Gold >= 20000 }},
	{10, "Sharpshooter", "50 headshots", func(s ProgressStats) bool { return s.Headshots >= 50 }},
	{11, "Critical Master", "30 critical hits", func(s ProgressStats) bool { return s.Criticals >= 30 }},
	{12, "Combo King", "10x combo", func(s ProgressStats) bool { return s.MaxCombo >= 10 }},
	{13, "Speed Runner", "Win in 30 min", func(s ProgressStats) bool { return s.PlayTimeSec <= 1800 && s.Wins >= 1 }},
	{14, "Ally Master", "Hire 5 allies", func(s ProgressStats) bool { return s.Allies >= 5 }},
	{15, "Arsenal", "Own 10 weapons", func(s ProgressStats) bool { return s.OwnedWeapons >= 10 }},
	{16, "Survivor Elite", "Reach wave 30", func(s ProgressStats) bool { return s.BestWave >= 30 }},
	{17, "Lucky", "Get 10 pickups", func(s ProgressStats) bool { return s.PickupsCollected >= 10 }},
	// Без урона засчитывается только после пяти пройденных волн.
	{18, "Unstoppable", "No damage run", func(s ProgressStats) bool { return s.NoDamageRun && s.WavesSurvived >= 5 }},
	{19, "Legend", "100k total coins", func(s ProgressStats) bool { return s.TotalCoins >= 100000 }},
	{20, "God Mode", "Beat on hard", func(s ProgressStats) bool { return s.HardModeWins >= 1 }},
}
