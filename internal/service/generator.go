package service

import (
	"math/rand/v2"
	"telegram-signals/internal/dto"
)

const (
	accuracyMin = 70
	accuracyMax = 90
)

// GeneratedSignal is one random draw. Price is cosmetic display data and is
// never persisted.
type GeneratedSignal struct {
	Direction string
	Accuracy  int
	Price     float64
}

// SignalGenerator produces random direction/accuracy/price tuples. It is
// stateless; there is no market data behind it.
type SignalGenerator interface {
	Generate() GeneratedSignal
}

type randomSignalGenerator struct{}

func NewSignalGenerator() SignalGenerator {
	return &randomSignalGenerator{}
}

func (g *randomSignalGenerator) Generate() GeneratedSignal {
	direction := dto.DirectionBuy
	if rand.IntN(2) == 1 {
		direction = dto.DirectionSell
	}

	return GeneratedSignal{
		Direction: direction,
		Accuracy:  accuracyMin + rand.IntN(accuracyMax-accuracyMin),
		Price:     rand.Float64()*100 + 1,
	}
}
