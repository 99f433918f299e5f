package parameter

import "time"

// Structural limits that are not tunable from the config file
const (
	// MaxBuildingLevel caps upgrades
	MaxBuildingLevel = 9

	// RollRange is the exclusive upper bound of per-tick chance rolls (0..1000 inclusive)
	RollRange = 1001

	// FightRollRange is the exclusive upper bound of the player-versus-enemy roll
	FightRollRange = 100
)

// Config is the immutable numeric configuration handed to the simulation at startup
// The core reads it but never writes to it
type Config struct {
	Game       GameConfig       `toml:"game"`
	Visibility VisibilityConfig `toml:"visibility"`
	Spawn      SpawnConfig      `toml:"spawn"`
	Economy    EconomyConfig    `toml:"economy"`
	Mine       BuildingSpec     `toml:"mine"`
	Cannon     BuildingSpec     `toml:"cannon"`
	Satellite  BuildingSpec     `toml:"satellite"`
	Bomb       BombConfig       `toml:"bomb"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Player     PlayerConfig     `toml:"player"`
	Pickup     PickupConfig     `toml:"pickup"`
}

// GameConfig holds loop and world generation settings
type GameConfig struct {
	FPS             int  `toml:"fps"`
	Mountains       int  `toml:"mountains"`
	CellsPerSpawner int  `toml:"cells_per_spawner"`
	StrictVictory   bool `toml:"strict_victory"`
}

// VisibilityConfig holds light and sight radii
type VisibilityConfig struct {
	Player    int `toml:"player"`
	Base      int `toml:"base"`
	Satellite int `toml:"satellite"`
	Lantern   int `toml:"lantern"`
	Enemy     int `toml:"enemy"`
}

// SpawnConfig controls enemy emission
type SpawnConfig struct {
	// Chance is out of RollRange per tick, increased by player level
	Chance        int `toml:"chance"`
	SpawnerHealth int `toml:"spawner_health"`
	SpawnerLevel  int `toml:"spawner_level"`
	EnemyHealth   int `toml:"enemy_health"`
	EnemyLevel    int `toml:"enemy_level"`
}

// EconomyConfig holds construction constraints
type EconomyConfig struct {
	InitialGold         int `toml:"initial_gold"`
	SupportRadius       int `toml:"support_radius"`
	SatelliteSeparation int `toml:"satellite_separation"`
	BaseHealth          int `toml:"base_health"`
}

// BuildingSpec parameterizes one structure kind
type BuildingSpec struct {
	InitialCost      int     `toml:"initial_cost"`
	BaseCost         int     `toml:"base_cost"`
	Health           int     `toml:"health"`
	ProductionRate   float64 `toml:"production_rate"`
	ProductionFactor float64 `toml:"production_factor"`
	MaintenanceCost  int     `toml:"maintenance_cost"`
	TimerSeconds     float64 `toml:"timer"`
}

// Timer returns the production interval
func (s BuildingSpec) Timer() time.Duration {
	return Seconds(s.TimerSeconds)
}

// BombConfig parameterizes thrown bombs
type BombConfig struct {
	Strength     int     `toml:"strength"`
	FuseSeconds  float64 `toml:"fuse"`
	PlayerDamage int     `toml:"player_damage"`
	Damage       int     `toml:"damage"`
}

// Fuse returns the delay between throw and detonation
func (c BombConfig) Fuse() time.Duration {
	return Seconds(c.FuseSeconds)
}

// EnemyConfig drives enemy AI pacing and combat
type EnemyConfig struct {
	// AI pass interval = max(MinInterval, BaseInterval - level/LevelDivisor) seconds
	BaseIntervalSeconds float64 `toml:"base_interval"`
	MinIntervalSeconds  float64 `toml:"min_interval"`
	LevelDivisor        float64 `toml:"level_divisor"`

	FightWinChance    int `toml:"fight_win_chance"`
	WinDamageMax      int `toml:"win_damage_max"`
	LossDamageMin     int `toml:"loss_damage_min"`
	LossDamageMax     int `toml:"loss_damage_max"`
	BuildingDamageMax int `toml:"building_damage_max"`
	BaseDamageMax     int `toml:"base_damage_max"`
	TrapRadius        int `toml:"trap_radius"`
}

// AIInterval returns the delay between enemy AI passes at the given player level
func (c EnemyConfig) AIInterval(level int) time.Duration {
	s := c.BaseIntervalSeconds - float64(level)/c.LevelDivisor
	return Seconds(max(c.MinIntervalSeconds, s))
}

// PlayerConfig holds starting player stats
type PlayerConfig struct {
	Health         int `toml:"health"`
	Bombs          int `toml:"bombs"`
	PointsPerLevel int `toml:"points_per_level"`
	TrapThrow      int `toml:"trap_throw"`
}

// PickupConfig controls ambient fruit and bomb drops
type PickupConfig struct {
	FruitChance       int `toml:"fruit_chance"`
	BombChance        int `toml:"bomb_chance"`
	FruitHealth       int `toml:"fruit_health"`
	PlacementAttempts int `toml:"placement_attempts"`
}

// Seconds converts fractional seconds to a duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// TickInterval returns the fixed frame interval
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Game.FPS)
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Game: GameConfig{
			FPS:             50,
			Mountains:       10,
			CellsPerSpawner: 400,
		},
		Visibility: VisibilityConfig{
			Player:    5,
			Base:      10,
			Satellite: 10,
			Lantern:   5,
			Enemy:     30,
		},
		Spawn: SpawnConfig{
			Chance:        5,
			SpawnerHealth: 10,
			SpawnerLevel:  10,
			EnemyHealth:   2,
			EnemyLevel:    1,
		},
		Economy: EconomyConfig{
			InitialGold:         100,
			SupportRadius:       10,
			SatelliteSeparation: 20,
			BaseHealth:          100,
		},
		Mine: BuildingSpec{
			InitialCost:      50,
			BaseCost:         50,
			Health:           5,
			ProductionRate:   10,
			ProductionFactor: 1.5,
			MaintenanceCost:  0,
			TimerSeconds:     4,
		},
		Cannon: BuildingSpec{
			InitialCost:      50,
			BaseCost:         50,
			Health:           6,
			ProductionRate:   1.5,
			ProductionFactor: 1.5,
			MaintenanceCost:  1,
			TimerSeconds:     2,
		},
		Satellite: BuildingSpec{
			InitialCost:      50,
			BaseCost:         50,
			Health:           10,
			ProductionRate:   0,
			ProductionFactor: 1,
			MaintenanceCost:  0,
			TimerSeconds:     5,
		},
		Bomb: BombConfig{
			Strength:     5,
			FuseSeconds:  2,
			PlayerDamage: 50,
			Damage:       5,
		},
		Enemy: EnemyConfig{
			BaseIntervalSeconds: 1,
			MinIntervalSeconds:  0.2,
			LevelDivisor:        12,
			FightWinChance:      80,
			WinDamageMax:        2,
			LossDamageMin:       5,
			LossDamageMax:       10,
			BuildingDamageMax:   2,
			BaseDamageMax:       5,
			TrapRadius:          5,
		},
		Player: PlayerConfig{
			Health:         100,
			Bombs:          2,
			PointsPerLevel: 20,
			TrapThrow:      2,
		},
		Pickup: PickupConfig{
			FruitChance:       2,
			BombChance:        1,
			FruitHealth:       10,
			PlacementAttempts: 20,
		},
	}
}
