// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Random — источник случайности для симуляции. Все системы получают его
// явно, чтобы тесты могли подставить заранее известную последовательность.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](r Random, items []T) T {
	return items[r.Intn(len(items))]
}

// ChooseWeighted выполняет взвешенный случайный выбор: суммирует веса,
// выбирает число в этом диапазоне и находит соответствующий элемент.
// Возвращает индекс или -1 для пустой таблицы.
func ChooseWeighted[T any](r Random, entries []T, weight func(T) int) int {
	if len(entries) == 0 {
		return -1
	}

	totalWeight := 0
	for _, e := range entries {
		totalWeight += weight(e)
	}
	if totalWeight <= 0 {
		return 0
	}

	n := r.Intn(totalWeight)
	upto := 0
	for i, e := range entries {
		if upto+weight(e) > n {
			return i
		}
		upto += weight(e)
	}
	return len(entries) - 1
}
