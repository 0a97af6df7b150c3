package factory

import (
	"github.com/automoto/neon-dodge/archetypes"
	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space for an arena. The grid reaches
// cfg.C.SpaceMargin past every edge so bodies spawned just outside the
// arena still land in a cell.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	margin := cfg.C.SpaceMargin
	spaceData := resolv.NewSpace(
		int(width+2*margin),
		int(height+2*margin),
		cfg.C.CellSize,
		cfg.C.CellSize,
	)
	components.Space.Set(space, spaceData)
	return space
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	e, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// attachObject gives a body its broad-phase box and registers it in the space
func attachObject(ecs *ecs.ECS, e *donburi.Entry, tag string) {
	body := components.Body.Get(e)
	size := body.Radius * 2
	margin := cfg.C.SpaceMargin
	obj := resolv.NewObject(body.Pos.X-body.Radius+margin, body.Pos.Y-body.Radius+margin, size, size, tag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if space := getSpace(ecs); space != nil {
		space.Add(obj)
	}
}

// SyncObject moves an entity's broad-phase box to its body position
func SyncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	body := components.Body.Get(e)
	margin := cfg.C.SpaceMargin
	obj.X = body.Pos.X - body.Radius + margin
	obj.Y = body.Pos.Y - body.Radius + margin
	obj.Update()
}

// Destroy removes an entity and its broad-phase box
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	Unregister(e)
	ecs.World.Remove(e.Entity())
}

func nextSeq(ecs *ecs.ECS) uint64 {
	e, ok := components.Spawner.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Spawner.Get(e).NextSeq()
}

// Unregister takes an entity out of the collision space ahead of its removal
// from the world, so later checks in the same frame no longer see it.
func Unregister(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}
