// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обёртка над math/rand с явным сидом, чтобы декорации
// (трава, деревья) рисовались одинаково при одном и том же сиде.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	return &PRNGService{
		rng: rand.New(rand.NewSource(ResolveSeed(seed))),
	}
}

// ResolveSeed заменяет нулевой сид на текущее время. Вызывается один раз
// при старте, чтобы меню и игра рисовали одни и те же декорации.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange returns a random integer in [lo, hi], both ends included.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}
