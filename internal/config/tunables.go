package config

import (
	"errors"
	"fmt"
	"os"

	"go-path-defense/internal/types"

	"gopkg.in/yaml.v3"
)

// Tunables holds every gameplay constant of a session.
type Tunables struct {
	Economy EconomyConfig `yaml:"economy"`
	Tower   TowerConfig   `yaml:"tower"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Wave    WaveConfig    `yaml:"wave"`

	// Path — ломаная, по которой идут враги.
	Path []types.Point `yaml:"path"`
}

// EconomyConfig holds the starting balance and lives.
type EconomyConfig struct {
	StartingMoney int `yaml:"starting_money"`
	StartingLives int `yaml:"starting_lives"`
}

// TowerConfig holds placement, cooldown and upgrade constants.
type TowerConfig struct {
	Cost            int     `yaml:"cost"`
	Range           float64 `yaml:"range"`
	Size            float64 `yaml:"size"` // click/footprint diameter
	MaxLevel        int     `yaml:"max_level"`
	BaseCooldown    int     `yaml:"base_cooldown"` // ticks
	CooldownStep    int     `yaml:"cooldown_step"`
	CooldownFloor   int     `yaml:"cooldown_floor"`
	UpgradeBaseCost int     `yaml:"upgrade_base_cost"`
	UpgradeCostStep int     `yaml:"upgrade_cost_step"`
	UpgradeFlash    int     `yaml:"upgrade_flash"` // ticks, visual only
}

// BulletConfig holds projectile constants.
type BulletConfig struct {
	Speed      float64 `yaml:"speed"` // units per tick
	BaseDamage int     `yaml:"base_damage"`
	DamageStep int     `yaml:"damage_step"`
	Radius     float64 `yaml:"radius"`
}

// EnemyConfig holds the per-wave growth formulas: stat = base + perWave*wave.
type EnemyConfig struct {
	BaseHP        int     `yaml:"base_hp"`
	HPPerWave     int     `yaml:"hp_per_wave"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedPerWave  float64 `yaml:"speed_per_wave"`
	BaseReward    int     `yaml:"base_reward"`
	RewardPerWave int     `yaml:"reward_per_wave"`
	Radius        float64 `yaml:"radius"`
}

// WaveConfig holds the wave director constants.
type WaveConfig struct {
	EnemiesPerWave int `yaml:"enemies_per_wave"`
	Count          int `yaml:"count"`
	SpawnDelay     int `yaml:"spawn_delay"` // ticks
}

// DefaultPath — прямая через центр поля.
func DefaultPath() []types.Point {
	return []types.Point{
		{X: 0, Y: 300},
		{X: 200, Y: 300},
		{X: 400, Y: 300},
		{X: 600, Y: 300},
		{X: 800, Y: 300},
	}
}

// Default returns the stock balance.
func Default() Tunables {
	return Tunables{
		Economy: EconomyConfig{
			StartingMoney: 200,
			StartingLives: 10,
		},
		Tower: TowerConfig{
			Cost:            100,
			Range:           120,
			Size:            80,
			MaxLevel:        3,
			BaseCooldown:    30,
			CooldownStep:    3,
			CooldownFloor:   10,
			UpgradeBaseCost: 50,
			UpgradeCostStep: 30,
			UpgradeFlash:    20,
		},
		Bullet: BulletConfig{
			Speed:      7,
			BaseDamage: 20,
			DamageStep: 10,
			Radius:     5,
		},
		Enemy: EnemyConfig{
			BaseHP:        120,
			HPPerWave:     10,
			BaseSpeed:     2.0,
			SpeedPerWave:  0.1,
			BaseReward:    70,
			RewardPerWave: 10,
			Radius:        20,
		},
		Wave: WaveConfig{
			EnemiesPerWave: 10,
			Count:          10,
			SpawnDelay:     30,
		},
		Path: DefaultPath(),
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (Tunables, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("failed to read tunables file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("failed to parse tunables YAML from %s: %w", path, err)
	}

	if err := t.Validate(); err != nil {
		return Tunables{}, fmt.Errorf("invalid tunables in %s: %w", path, err)
	}

	return t, nil
}

// ErrInvalidPath is returned when the path has fewer than two points or
// repeats a point consecutively.
var ErrInvalidPath = errors.New("invalid path")

// Validate checks ranges that the simulation relies on.
func (t Tunables) Validate() error {
	if err := ValidatePath(t.Path); err != nil {
		return err
	}

	if t.Economy.StartingMoney < 0 {
		return fmt.Errorf("economy.starting_money cannot be negative, got %d", t.Economy.StartingMoney)
	}
	if t.Economy.StartingLives < 1 {
		return fmt.Errorf("economy.starting_lives must be at least 1, got %d", t.Economy.StartingLives)
	}

	if t.Tower.Cost < 0 {
		return fmt.Errorf("tower.cost cannot be negative, got %d", t.Tower.Cost)
	}
	if t.Tower.Range <= 0 {
		return fmt.Errorf("tower.range must be positive, got %v", t.Tower.Range)
	}
	if t.Tower.Size <= 0 {
		return fmt.Errorf("tower.size must be positive, got %v", t.Tower.Size)
	}
	if t.Tower.MaxLevel < 1 {
		return fmt.Errorf("tower.max_level must be at least 1, got %d", t.Tower.MaxLevel)
	}
	if t.Tower.CooldownFloor < 1 || t.Tower.BaseCooldown < t.Tower.CooldownFloor {
		return fmt.Errorf("tower cooldown must satisfy 1 <= cooldown_floor (%d) <= base_cooldown (%d)",
			t.Tower.CooldownFloor, t.Tower.BaseCooldown)
	}
	if t.Tower.CooldownStep < 0 {
		return fmt.Errorf("tower.cooldown_step cannot be negative, got %d", t.Tower.CooldownStep)
	}

	if t.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet.speed must be positive, got %v", t.Bullet.Speed)
	}
	if t.Wave.EnemiesPerWave < 1 {
		return fmt.Errorf("wave.enemies_per_wave must be at least 1, got %d", t.Wave.EnemiesPerWave)
	}
	if t.Wave.Count < 1 {
		return fmt.Errorf("wave.count must be at least 1, got %d", t.Wave.Count)
	}
	if t.Wave.SpawnDelay < 0 {
		return fmt.Errorf("wave.spawn_delay cannot be negative, got %d", t.Wave.SpawnDelay)
	}

	return t.validateGrowth()
}

// validateGrowth checks the per-wave and per-level formulas. They are linear,
// so checking both ends of the range covers every value in between.
func (t Tunables) validateGrowth() error {
	e := t.Enemy
	for _, wave := range []int{1, t.Wave.Count} {
		if hp := e.BaseHP + e.HPPerWave*wave; hp < 1 {
			return fmt.Errorf("enemy hp at wave %d must be at least 1, got %d (enemy.base_hp + enemy.hp_per_wave*wave)", wave, hp)
		}
		if speed := e.BaseSpeed + e.SpeedPerWave*float64(wave); speed <= 0 {
			return fmt.Errorf("enemy speed at wave %d must be positive, got %v (enemy.base_speed + enemy.speed_per_wave*wave)", wave, speed)
		}
		if reward := e.BaseReward + e.RewardPerWave*wave; reward < 0 {
			return fmt.Errorf("enemy reward at wave %d cannot be negative, got %d (enemy.base_reward + enemy.reward_per_wave*wave)", wave, reward)
		}
	}

	b := t.Bullet
	for _, level := range []int{1, t.Tower.MaxLevel} {
		if damage := b.BaseDamage + b.DamageStep*(level-1); damage < 0 {
			return fmt.Errorf("bullet damage at level %d cannot be negative, got %d (bullet.base_damage + bullet.damage_step*(level-1))", level, damage)
		}
	}

	// Улучшать можно с 1-го до предпоследнего уровня.
	tw := t.Tower
	if tw.MaxLevel > 1 {
		for _, level := range []int{1, tw.MaxLevel - 1} {
			if cost := tw.UpgradeBaseCost + tw.UpgradeCostStep*(level-1); cost < 0 {
				return fmt.Errorf("upgrade cost at level %d cannot be negative, got %d (tower.upgrade_base_cost + tower.upgrade_cost_step*(level-1))", level, cost)
			}
		}
	}
	return nil
}

// ValidatePath checks the polyline invariants.
func ValidatePath(points []types.Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidPath, len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i] == points[i-1] {
			return fmt.Errorf("%w: point %d repeats point %d at (%v, %v)",
				ErrInvalidPath, i, i-1, points[i].X, points[i].Y)
		}
	}
	return nil
}
