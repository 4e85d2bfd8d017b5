// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// Тик симуляции: ~30 в секунду
	TickIntervalMs    = 33.0
	MaxDeltaTime      = 0.1 // секунды, клиппинг кадра хоста
	BulletLifetimeMs  = 5000.0
	BulletLifetimeInc = 16.0 // фиксированный шаг, не зависит от реального delta

	PlayerStartHP     = 100
	PlayerStartGold   = 100
	PlayerBaseSpeed   = 3.0
	PlayerSize        = 35.0
	PlayerBoundMargin = 20.0
	SpeedBoostValue   = 6.0

	MaxAllies           = 5
	AllyFollowSpeed     = 1.5
	AllyFollowSnap      = 5.0
	AllyFollowSpacing   = 40.0
	AllyFollowOffsetY   = 30.0
	AllyPinOffsetX      = 50.0
	AllyPinOffsetY      = 30.0
	AllyHealAmount      = 5
	AllyHealIntervalMs  = 1000.0
	AllyShotIntervalMs  = 500.0
	AllyBulletSpeed     = 8.0
	AllyAIDamageFactor  = 1.3
	AllyHireDefaultCost = 200

	BulletHitRadius    = 20.0
	CritChance         = 0.15
	CritMultiplier     = 2.0
	ContactRadius      = 30.0
	DamageCooldownMs   = 500.0
	DefaultEnemySpeed  = 2.0
	DefaultEnemyDamage = 10

	KillBaseGold      = 5
	PickupDropChance  = 0.25
	PickupRadius      = 30.0
	PickupLifeTicks   = 500
	ChestRadius       = 40.0
	ChestMinPerWave   = 1
	ChestMaxPerWave   = 3
	ChestSpawnInset   = 50.0
	WavePickupChance  = 0.5
	HealthPickupHP    = 30
	AmmoPickupGold    = 20
	ShieldDurationMs  = 5000.0
	SpeedBoostMs      = 4000.0
	ParticleLifeTicks = 30
	ParticleSpeed     = 5.0

	ComboWindowMs       = 2000.0
	ComboStep           = 0.1
	ComboBonusEvery     = 5
	ComboBonusPerCount  = 25
	ComboBrokenNotifyAt = 5

	EnemiesPerRound     = 7
	RoundsPerWave       = 2
	WaveHPPerLevel      = 10
	WaveSpeedPerLevel   = 0.1
	WaveClearBannerMs   = 1200.0
	NextWaveDelayMs     = 2000.0
	WaveClearGoldFactor = 100
	BossWaveEvery       = 5
	BossSpawnY          = 50.0
	BossBaseHP          = 500
	BossHPPerWave       = 100
	BossBaseDamage      = 50
	BossDamagePerWave   = 5
	BossBaseReward      = 500
	BossRewardPerWave   = 50
	BossSpeed           = 1.0
	DefaultWavesToWin   = 20
	VictoryBonusGold    = 5000
	StealthHPFactor     = 0.7
	StealthSpeedFactor  = 1.5

	GravityStrength        = 5.0
	JackpotRefundPerKillS  = 1.0
	InfiniteDomainMs       = 999999999.0
	LaserSlashCount        = 50
	LaserSlashIntervalMs   = 160.0
	LaserSlashSegments     = 10
	LaserSlashSpacing      = 20.0
	LaserSlashSpeed        = 15.0
	LaserSlashDamage       = 100
	MeteorIntervalMs       = 500.0
	MeteorSpeed            = 10.0
	MeteorDamage           = 150
	MeteorStartY           = -50.0
	ShadowAllyCount        = 5
	ShadowAllySpread       = 100.0
	DeathFishCount         = 20
	ParasiteChance         = 0.3
	ParadiseHealOnKill     = 10
	UnlimitedPierce        = 999
	BadgeCheckIntervalMs   = 1000.0
	AdminAccessCost        = 10000
	SurrenderCost          = 10
	SurrenderDelayMs       = 800.0
	DailyBonusBase         = 500
	DailyBonusPerStreak    = 100
	DailyBonusCooldownHour = 24
	DuplicateWeaponGold    = 50
	FullRosterGold         = 100
	UpgradeHPStep          = 50
	UpgradeDamageFactor    = 1.1
	UpgradeSpeedFactor     = 1.2
	UpgradeFireRateFactor  = 1.15
	MaxAdminLevel          = 3
)

var (
	BackgroundColor = color.RGBA{244, 164, 96, 255}
	SkyColor        = color.RGBA{135, 206, 235, 255}
	PlayerColor     = color.RGBA{0, 255, 0, 255}
	EnemyColor      = color.RGBA{255, 0, 0, 255}
	BossColor       = color.RGBA{255, 0, 255, 255}
	FrozenColor     = color.RGBA{136, 204, 255, 255}
	ConvertedColor  = color.RGBA{0, 255, 0, 255}
	BulletColor     = color.RGBA{255, 255, 0, 255}
	AllyColor       = color.RGBA{0, 136, 255, 255}
	ChestColor      = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	HPBarColor      = color.RGBA{220, 60, 60, 255}
	HPBarBackColor  = color.RGBA{40, 40, 40, 200}
	BannerColor     = color.RGBA{0, 255, 0, 204}
	ToastColor      = color.RGBA{255, 255, 0, 230}

	// Цвета частиц
	DeathParticleColor  = color.RGBA{255, 0, 0, 255}
	HitParticleColor    = color.RGBA{255, 255, 0, 255}
	CritParticleColor   = color.RGBA{255, 0, 255, 255}
	HealParticleColor   = color.RGBA{0, 255, 0, 255}
	ChestParticleColor  = color.RGBA{255, 215, 0, 255}
	SmokeParticleColor  = color.RGBA{136, 136, 136, 255}
	FireParticleColor   = color.RGBA{255, 68, 0, 255}
	NukeParticleColor   = color.RGBA{255, 255, 0, 255}
	PickupParticleColor = color.RGBA{255, 255, 255, 255}
)
