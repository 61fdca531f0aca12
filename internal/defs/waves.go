package defs

// WaveRules описывает параметры волн и формулы роста врагов.
type WaveRules struct {
	EnemiesPerWave int
	Count          int // последняя волна
	SpawnDelay     int // тиков между появлениями

	BaseHP        int
	HPPerWave     int
	BaseSpeed     float64
	SpeedPerWave  float64
	BaseReward    int
	RewardPerWave int
	EnemyRadius   float64
}

// EnemyFor returns the enemy stats for the given 1-based wave number.
func (w WaveRules) EnemyFor(wave int) EnemyDefinition {
	return EnemyDefinition{
		HP:     w.BaseHP + w.HPPerWave*wave,
		Speed:  w.BaseSpeed + w.SpeedPerWave*float64(wave),
		Reward: w.BaseReward + w.RewardPerWave*wave,
		Radius: w.EnemyRadius,
	}
}
