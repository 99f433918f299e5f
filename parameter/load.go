package parameter

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load returns the default configuration overlaid with the TOML file at path
// Keys absent from the file keep their default values
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges the simulation relies on
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Game.FPS > 0 && c.Game.FPS <= 1000, "game.fps must be in 1..1000, got %d", c.Game.FPS)
	check(c.Game.Mountains >= 0, "game.mountains must be >= 0")
	check(c.Game.CellsPerSpawner > 0, "game.cells_per_spawner must be > 0")

	v := c.Visibility
	check(v.Player >= 0 && v.Base >= 0 && v.Satellite >= 0 && v.Lantern >= 0 && v.Enemy >= 0,
		"visibility radii must be >= 0")

	check(c.Spawn.Chance >= 0 && c.Spawn.Chance < RollRange, "spawn.chance must be in 0..%d", RollRange-1)
	check(c.Spawn.SpawnerHealth > 0 && c.Spawn.EnemyHealth > 0, "spawn health values must be > 0")

	check(c.Economy.InitialGold >= 0, "economy.initial_gold must be >= 0")
	check(c.Economy.SupportRadius >= 0, "economy.support_radius must be >= 0")
	check(c.Economy.SatelliteSeparation >= 0, "economy.satellite_separation must be >= 0")
	check(c.Economy.BaseHealth > 0, "economy.base_health must be > 0")

	for name, s := range map[string]BuildingSpec{"mine": c.Mine, "cannon": c.Cannon, "satellite": c.Satellite} {
		check(s.InitialCost >= 0, "%s.initial_cost must be >= 0", name)
		check(s.BaseCost > 0, "%s.base_cost must be > 0", name)
		check(s.Health > 0, "%s.health must be > 0", name)
		check(s.ProductionRate >= 0, "%s.production_rate must be >= 0", name)
		check(s.ProductionFactor >= 1, "%s.production_factor must be >= 1", name)
		check(s.MaintenanceCost >= 0, "%s.maintenance_cost must be >= 0", name)
		check(s.TimerSeconds > 0, "%s.timer must be > 0", name)
	}

	check(c.Bomb.Strength >= 0, "bomb.strength must be >= 0")
	check(c.Bomb.FuseSeconds >= 0, "bomb.fuse must be >= 0")

	e := c.Enemy
	check(e.LevelDivisor > 0, "enemy.level_divisor must be > 0")
	check(e.MinIntervalSeconds > 0, "enemy.min_interval must be > 0")
	check(e.FightWinChance >= 0 && e.FightWinChance <= FightRollRange, "enemy.fight_win_chance must be in 0..%d", FightRollRange)
	check(e.LossDamageMin <= e.LossDamageMax, "enemy.loss_damage_min must not exceed loss_damage_max")
	check(e.WinDamageMax >= 0 && e.BuildingDamageMax >= 0 && e.BaseDamageMax >= 0 && e.LossDamageMin >= 0,
		"enemy damage values must be >= 0")

	check(c.Player.Health > 0, "player.health must be > 0")
	check(c.Player.PointsPerLevel > 0, "player.points_per_level must be > 0")

	check(c.Pickup.FruitChance >= 0 && c.Pickup.BombChance >= 0, "pickup chances must be >= 0")
	check(c.Pickup.PlacementAttempts > 0, "pickup.placement_attempts must be > 0")

	return errors.Join(errs...)
}
