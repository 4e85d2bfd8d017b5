// internal/defs/loot_tables.go
package defs

// ChestRewardKind is what a chest can contain.
type ChestRewardKind string

const (
	RewardCoins  ChestRewardKind = "coins"
	RewardHP     ChestRewardKind = "hp"
	RewardWeapon ChestRewardKind = "weapon"
	RewardBomb   ChestRewardKind = "bomb"
	RewardAlly   ChestRewardKind = "ally"
)

// LootEntry представляет одну запись в таблице выпадения сундука.
// Weight - относительный шанс; в стандартной таблице все равны.
type LootEntry struct {
	Kind   ChestRewardKind `json:"kind"`
	Amount int             `json:"amount,omitempty"`
	Bomb   BombType        `json:"bomb,omitempty"`
	Ally   AllyType        `json:"ally,omitempty"`
	Weight int             `json:"weight"`
}

// ChestLoot is the chest reward table.
var ChestLoot = []LootEntry{
	{Kind: RewardCoins, Amount: 50, Weight: 1},
	{Kind: RewardCoins, Amount: 100, Weight: 1},
	{Kind: RewardHP, Amount: 50, Weight: 1},
	{Kind: RewardWeapon, Weight: 1},
	{Kind: RewardBomb, Bomb: BombFire, Weight: 1},
	{Kind: RewardAlly, Ally: AllyMedic, Weight: 1},
}
