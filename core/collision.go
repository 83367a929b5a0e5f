package core

import (
	"github.com/automoto/arena-duel/shared/gamemath"
	"github.com/automoto/arena-duel/shared/simcomponents"
	"github.com/automoto/arena-duel/tags"
	"github.com/solarlune/resolv"
)

// resolvePlatforms applies the landing rule to each fighter. Every platform
// is tested against the fighter's position after the physics step, and the
// last overlapping one in arena order is the one it lands on. The resolv
// space only narrows which platforms are worth testing; the strict overlap
// test makes the decision.
func (m *Match) resolvePlatforms() {
	for _, e := range m.fighters {
		entry := m.world.Entry(e)
		fighter := simcomponents.Fighter.Get(entry)
		if fighter.Body.SpeedY <= 0 {
			continue
		}

		body := fighter.Body.Rect()
		candidates := platformCandidates(m.space, body)

		landing := -1
		for pi, rect := range m.arena.Platforms {
			if candidates[pi] && gamemath.Overlaps(body, rect) {
				landing = pi
			}
		}
		if landing < 0 {
			continue
		}

		if gamemath.LandOn(&fighter.Body, m.arena.Platforms[landing]) {
			syncObject(entry)
			m.logger.Debug("landed", "fighter", fighter.Name, "platform", landing)
		}
	}
}

// platformCandidates returns the arena indexes of platforms registered in
// any space cell the rectangle could touch. The scanned range is widened by
// one pixel on every side: resolv registers objects over [X, X+W-1], so a
// fractional body can overlap a platform without sharing one of its cells.
func platformCandidates(space *resolv.Space, r gamemath.Rect) map[int]bool {
	found := map[int]bool{}
	cx, cy := space.WorldToSpace(r.X-1, r.Y-1)
	ex, ey := space.WorldToSpace(r.X+r.W+1, r.Y+r.H+1)

	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if !o.HasTags(tags.ResolvPlatform) {
					continue
				}
				if index, ok := o.Data.(int); ok {
					found[index] = true
				}
			}
		}
	}
	return found
}

// resolveContact drains health from both fighters for every tick their
// bodies overlap.
func (m *Match) resolveContact() {
	first := m.world.Entry(m.fighters[0])
	second := m.world.Entry(m.fighters[1])
	f1 := simcomponents.Fighter.Get(first)
	f2 := simcomponents.Fighter.Get(second)

	touching := gamemath.Overlaps(f1.Body.Rect(), f2.Body.Rect())
	if touching != m.inContact {
		m.inContact = touching
		m.logger.Debug("contact changed", "touching", touching, "tick", m.tick)
	}
	if !touching {
		return
	}

	damage := m.tuning.Match.ContactDamage
	simcomponents.Health.Get(first).Current -= damage
	simcomponents.Health.Get(second).Current -= damage
}
