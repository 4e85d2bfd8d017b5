// internal/event/types.go
package event

const (
	EnemyKilled         EventType = "EnemyKilled"  // KillData
	CriticalHit         EventType = "CriticalHit"  // HitData
	ComboBonus          EventType = "ComboBonus"   // ComboData
	ComboBroken         EventType = "ComboBroken"  // ComboData
	AchievementUnlocked EventType = "Achievement"  // UnlockData
	BadgeUnlocked       EventType = "Badge"        // UnlockData
	DomainActivated     EventType = "DomainOn"     // DomainData
	DomainEnded         EventType = "DomainOff"    // DomainData
	RoundCleared        EventType = "RoundCleared" // WaveData
	WaveStarted         EventType = "WaveStarted"  // WaveData
	BossWave            EventType = "BossWave"     // WaveData
	SpecialWaveStarted  EventType = "SpecialWave"  // SpecialWaveData
	PickupCollected     EventType = "Pickup"       // PickupData
	ChestOpened         EventType = "ChestOpened"  // ChestData
	PlayerHit           EventType = "PlayerHit"    // HitData
	ShotFired           EventType = "ShotFired"
	GameOver            EventType = "GameOver"
	Victory             EventType = "Victory"
	AdminCommand        EventType = "AdminCommand" // AdminData
	Purchase            EventType = "Purchase"     // PurchaseData
)

type KillData struct {
	X, Y   float64
	Gold   int
	IsBoss bool
}

type HitData struct {
	X, Y   float64
	Damage float64
}

type ComboData struct {
	Count int
	Bonus int
}

type UnlockData struct {
	Key    string
	Name   string
	Reward int
}

type DomainData struct {
	ID   int
	Name string
}

type WaveData struct {
	Wave  int
	Round int
}

type SpecialWaveData struct {
	Key  string
	Name string
}

type PickupData struct {
	Kind string
	X, Y float64
}

type ChestData struct {
	Reward string
	Amount int
}

type AdminData struct {
	Line     string
	Accepted bool
}

type PurchaseData struct {
	Item string
	Cost int
}
