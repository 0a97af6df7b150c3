package systems

import (
	"sort"

	"github.com/automoto/neon-dodge/components"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sortedBySeq returns every entity carrying tag in spawn order
func sortedBySeq(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var entries []*donburi.Entry
	tag.Each(e.World, func(en *donburi.Entry) {
		entries = append(entries, en)
	})
	sortEntries(entries)
	return entries
}

func sortEntries(entries []*donburi.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Body.Get(entries[i]).Seq < components.Body.Get(entries[j]).Seq
	})
}

// overlapping returns the bodies tagged resolvTag that touch subject, in spawn order.
// The collision space supplies candidates and the circle test decides.
func overlapping(subject *donburi.Entry, resolvTag string) []*donburi.Entry {
	if !subject.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(subject)
	if obj.Object == nil || obj.Space == nil {
		return nil
	}

	check := obj.Check(0, 0, resolvTag)
	if check == nil {
		return nil
	}

	body := components.Body.Get(subject)
	var hits []*donburi.Entry
	for _, o := range check.Objects {
		other, ok := o.Data.(*donburi.Entry)
		if !ok || other == subject || !other.Valid() {
			continue
		}
		ob := components.Body.Get(other)
		if gamemath.CirclesOverlap(body.Pos, body.Radius, ob.Pos, ob.Radius) {
			hits = append(hits, other)
		}
	}
	sortEntries(hits)
	return hits
}
