package defs

import "go-path-defense/internal/config"

// TowerRulesFrom builds the tower rules from the loaded tunables.
func TowerRulesFrom(t config.Tunables) TowerRules {
	return TowerRules{
		Cost:            t.Tower.Cost,
		Range:           t.Tower.Range,
		Size:            t.Tower.Size,
		MaxLevel:        t.Tower.MaxLevel,
		BaseCooldown:    t.Tower.BaseCooldown,
		CooldownStep:    t.Tower.CooldownStep,
		CooldownFloor:   t.Tower.CooldownFloor,
		UpgradeBaseCost: t.Tower.UpgradeBaseCost,
		UpgradeCostStep: t.Tower.UpgradeCostStep,
		UpgradeFlash:    t.Tower.UpgradeFlash,

		BulletSpeed:      t.Bullet.Speed,
		BulletBaseDamage: t.Bullet.BaseDamage,
		BulletDamageStep: t.Bullet.DamageStep,
	}
}

// WaveRulesFrom builds the wave rules from the loaded tunables.
func WaveRulesFrom(t config.Tunables) WaveRules {
	return WaveRules{
		EnemiesPerWave: t.Wave.EnemiesPerWave,
		Count:          t.Wave.Count,
		SpawnDelay:     t.Wave.SpawnDelay,

		BaseHP:        t.Enemy.BaseHP,
		HPPerWave:     t.Enemy.HPPerWave,
		BaseSpeed:     t.Enemy.BaseSpeed,
		SpeedPerWave:  t.Enemy.SpeedPerWave,
		BaseReward:    t.Enemy.BaseReward,
		RewardPerWave: t.Enemy.RewardPerWave,
		EnemyRadius:   t.Enemy.Radius,
	}
}
