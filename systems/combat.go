package systems

import (
	"math"

	"github.com/automoto/neon-dodge/components"
	cfg "github.com/automoto/neon-dodge/config"
	"github.com/automoto/neon-dodge/gamemath"
	"github.com/automoto/neon-dodge/systems/factory"
	"github.com/automoto/neon-dodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat advances bullets and resolves every hit for the frame, in order:
// enemy fire against the player, player fire against enemies, then body contact.
// Removed entities leave the collision space at once and the world at the end.
func UpdateCombat(e *ecs.ECS) {
	r := &combatFrame{e: e, retired: map[donburi.Entity]bool{}}
	defer r.compact()

	r.advanceBullets()
	if r.resolveEnemyFire() {
		return
	}
	r.resolvePlayerFire()
	r.resolveContact()
}

type combatFrame struct {
	e       *ecs.ECS
	doomed  []*donburi.Entry
	retired map[donburi.Entity]bool
}

func (r *combatFrame) retire(en *donburi.Entry) {
	if r.retired[en.Entity()] {
		return
	}
	r.retired[en.Entity()] = true
	factory.Unregister(en)
	r.doomed = append(r.doomed, en)
}

func (r *combatFrame) compact() {
	for _, en := range r.doomed {
		if en.Valid() {
			r.e.World.Remove(en.Entity())
		}
	}
	r.doomed = nil
}

// advanceBullets re-steers homing shots, integrates, and drops spent or stray bullets
func (r *combatFrame) advanceBullets() {
	dt := GetOrCreateClock(r.e).DT
	arena := GetOrCreateArena(r.e)
	margin := cfg.Bullet.Margin

	var target *gamemath.Vec2
	if playerEntry, ok := getPlayer(r.e); ok {
		target = &components.Body.Get(playerEntry).Pos
	}

	for _, en := range sortedBySeq(r.e, tags.Bullet) {
		bullet := components.Bullet.Get(en)
		body := components.Body.Get(en)

		if bullet.Origin == components.OriginEnemy && bullet.Homing && target != nil {
			desired := gamemath.SteerToward(body.Pos, *target, cfg.Bullet.EnemySpeed, body.Vel.NormalizeOr(gamemath.V(0, 1)))
			body.Vel = body.Vel.Lerp(desired, gamemath.SmoothFactor(cfg.Bullet.HomingTurn, dt))
		}
		body.Pos = body.Pos.Add(body.Vel.Scale(dt))
		bullet.Life -= dt

		outside := body.Pos.X < -margin || body.Pos.X > arena.Width+margin ||
			body.Pos.Y < -margin || body.Pos.Y > arena.Height+margin
		if bullet.Life <= 0 || outside {
			r.retire(en)
			continue
		}
		factory.SyncObject(en)
	}
}

// resolveEnemyFire tests enemy bullets against the player. Returns true when
// the run ended.
func (r *combatFrame) resolveEnemyFire() bool {
	playerEntry, ok := getPlayer(r.e)
	if !ok {
		return false
	}
	player := components.Player.Get(playerEntry)

	for _, b := range overlapping(playerEntry, tags.ResolvEnemyBullet) {
		if r.retired[b.Entity()] {
			continue
		}
		if player.IFrames > 0 {
			// Invulnerable: the remaining bullets pass through
			break
		}
		r.retire(b)
		if hitPlayer(r.e, player) {
			return true
		}
	}
	return false
}

// resolvePlayerFire tests each player bullet against the live enemies in spawn order
func (r *combatFrame) resolvePlayerFire() {
	for _, b := range sortedBySeq(r.e, tags.Bullet) {
		bullet := components.Bullet.Get(b)
		if bullet.Origin != components.OriginPlayer || r.retired[b.Entity()] {
			continue
		}

		for _, en := range overlapping(b, tags.ResolvEnemy) {
			if r.retired[en.Entity()] {
				continue
			}
			enemy := components.Enemy.Get(en)
			enemy.HP -= bullet.Damage
			if enemy.HP <= 0 {
				r.killEnemy(en)
			}

			if bullet.Pierce > 0 {
				bullet.Pierce--
				continue
			}
			r.retire(b)
			break
		}
	}
}

// killEnemy removes a dead enemy and pays out its rewards
func (r *combatFrame) killEnemy(en *donburi.Entry) {
	enemy := components.Enemy.Get(en)
	pos := components.Body.Get(en).Pos
	r.retire(en)

	session := GetOrCreateSession(r.e)
	rng := GetOrCreateClock(r.e).RNG
	shake := GetOrCreateScreenShake(r.e)

	session.Kills++
	factory.SpawnExplosion(r.e, rng, pos)

	var xp int
	if enemy.IsBoss() {
		session.Score += cfg.Rewards.BossScore
		session.Coins += gamemath.IntRange(rng, cfg.Rewards.BossCoinsMin, cfg.Rewards.BossCoinsMax)
		xp = cfg.Rewards.BossXP
		GetOrCreateSpawner(r.e).BossTimer = nextBossDelay(session.Elapsed)
		AddShake(shake, cfg.Shake.BossKill, cfg.Shake.KillCap)
		PlaySFX(r.e, cfg.SoundBossKill)
	} else {
		session.Score += cfg.Rewards.KillScore
		session.Coins += gamemath.IntRange(rng, cfg.Rewards.KillCoinsMin, cfg.Rewards.KillCoinsMax)
		xp = cfg.Rewards.KillXP
		AddShake(shake, cfg.Shake.Kill, cfg.Shake.KillCap)
		PlaySFX(r.e, cfg.SoundKill)
	}

	if playerEntry, ok := getPlayer(r.e); ok {
		components.Player.Get(playerEntry).GainXP(xp)
	}
}

// resolveContact applies at most one enemy body hit per frame
func (r *combatFrame) resolveContact() {
	playerEntry, ok := getPlayer(r.e)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.IFrames > 0 {
		return
	}
	for _, en := range overlapping(playerEntry, tags.ResolvEnemy) {
		if r.retired[en.Entity()] {
			continue
		}
		hitPlayer(r.e, player)
		return
	}
}

// hitPlayer spends a full shield if one is armed, otherwise a life.
// Returns true when the hit ended the run.
func hitPlayer(e *ecs.ECS, player *components.PlayerData) bool {
	shake := GetOrCreateScreenShake(e)

	if shieldReady(player) {
		player.ShieldCharge = 0
		player.IFrames = cfg.Player.ShieldInvuln
		SetShake(shake, cfg.Shake.ShieldBreak)
		PlaySFX(e, cfg.SoundShieldBreak)
		return false
	}

	session := GetOrCreateSession(e)
	session.Lives--
	player.IFrames = cfg.Player.InvulnTime
	SetShake(shake, cfg.Shake.LifeLost)
	PlaySFX(e, cfg.SoundHit)

	if session.Lives <= 0 {
		session.Lives = 0
		session.Mode = components.ModeGameOver
		PlaySFX(e, cfg.SoundGameOver)
		return true
	}
	return false
}

// nextBossDelay is the countdown armed after a boss kill. Bosses return
// sooner the longer the run lasts.
func nextBossDelay(elapsed float64) float64 {
	return math.Max(cfg.Boss.DelayFloor, cfg.Boss.DelayStart-elapsed*cfg.Boss.DelayDecay)
}
