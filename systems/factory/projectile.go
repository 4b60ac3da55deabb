package factory

import (
	"github.com/automoto/brawl-arena/archetypes"
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a live projectile sized and timed by its kind.
// Projectiles keep a resolv box for geometry but stay out of the collision
// space; they are resolved against combatants directly.
func CreateProjectile(w donburi.World, kind config.ProjectileKind, ownerID int, x, y, vx, vy, damage float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(w)

	pw, ph := config.SizeOf(kind)
	obj := resolv.NewObject(x, y, pw, ph, kind.String())
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})

	components.Projectile.SetValue(projectile, components.ProjectileData{
		Kind:    kind,
		OwnerID: ownerID,
		Damage:  damage,
		VX:      vx,
		VY:      vy,
		Active:  true,
		Life:    config.Projectiles.Specs[kind].Life,
	})

	return projectile
}
