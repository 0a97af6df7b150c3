package components

import "github.com/yohamta/donburi"

// SpawnerData holds the per-run countdowns and difficulty ramp state
type SpawnerData struct {
	SpawnTimer   float64
	BossTimer    float64
	PowerUpTimer float64
	RampTimer    float64

	EnemySpeed float64
	MaxEnemies int
	EnemyLevel int

	nextSeq uint64
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// NextSeq hands out increasing spawn sequence numbers
func (s *SpawnerData) NextSeq() uint64 {
	s.nextSeq++
	return s.nextSeq
}
