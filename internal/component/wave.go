package component

// WavePhase — состояние директора волн.
type WavePhase int

const (
	WaveSpawning WavePhase = iota
	WaveWaitingForClear
	WaveAllComplete
)

func (p WavePhase) String() string {
	switch p {
	case WaveSpawning:
		return "spawning"
	case WaveWaitingForClear:
		return "waiting-for-clear"
	case WaveAllComplete:
		return "all-complete"
	default:
		return "unknown"
	}
}

// Wave holds the wave director state.
type Wave struct {
	Number     int // с 1
	Max        int
	Phase      WavePhase
	Spawned    int // врагов создано в текущей волне
	PerWave    int
	SpawnTimer int // тиков до следующего появления
}

// NewWave starts at wave 1 with the first enemy due immediately.
func NewWave(perWave, waveMax int) *Wave {
	return &Wave{
		Number:  1,
		Max:     waveMax,
		Phase:   WaveSpawning,
		PerWave: perWave,
	}
}
