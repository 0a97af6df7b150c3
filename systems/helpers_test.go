package systems

import (
	"errors"
	"math/rand/v2"

	"github.com/automoto/neon-dodge/components"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testWidth  = 900
	testHeight = 600
	testDT     = 1.0 / 120
)

// memStore is an in-memory RecordStore
type memStore struct {
	items    map[string][]byte
	saves    int
	failLoad bool
	failSave bool
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(itemKey string) ([]byte, error) {
	if m.failLoad {
		return nil, errors.New("load failed")
	}
	return m.items[itemKey], nil
}

func (m *memStore) SaveItem(itemKey string, data []byte) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.saves++
	m.items[itemKey] = append([]byte(nil), data...)
	return nil
}

// newTestECS builds a world with a collision space and a session on the title screen
func newTestECS(store components.RecordStore) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, testWidth, testHeight)
	arena := components.ArenaData{
		Name:        "test",
		Width:       testWidth,
		Height:      testHeight,
		PlayerSpawn: gamemath.V(testWidth/2, testHeight/2),
	}
	factory.CreateSession(e, arena, rand.New(rand.NewPCG(1, 2)), components.SettingsData{
		Record: LoadRecord(store),
		Store:  store,
	})
	GetOrCreateClock(e).DT = testDT
	return e
}

// newRun returns a world with a freshly started run
func newRun() *ecs.ECS {
	e := newTestECS(nil)
	StartRun(e)
	return e
}

func playerOf(e *ecs.ECS) (*components.PlayerData, *components.BodyData) {
	entry, ok := getPlayer(e)
	if !ok {
		panic("no player")
	}
	return components.Player.Get(entry), components.Body.Get(entry)
}

func placeEnemy(e *ecs.ECS, kind components.EnemyKind, pos gamemath.Vec2, hp int) *donburi.Entry {
	return factory.CreateEnemy(e, factory.EnemySpec{Kind: kind, Pos: pos, HP: hp, Speed: 100})
}

func placeBullet(e *ecs.ECS, origin components.BulletOrigin, pos gamemath.Vec2, pierce, damage int) *donburi.Entry {
	return factory.CreateBullet(e, factory.BulletSpec{
		Origin: origin,
		Pos:    pos,
		Pierce: pierce,
		Damage: damage,
	})
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	return countEntities(e, tag)
}

func countBosses(e *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(e.World, func(en *donburi.Entry) {
		if components.Enemy.Get(en).IsBoss() {
			n++
		}
	})
	return n
}
