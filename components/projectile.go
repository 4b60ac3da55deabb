package components

import (
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Kind    config.ProjectileKind
	Subtype int // Card suit for gambler cards
	OwnerID int
	Damage  float64
	VX, VY  float64
	Active  bool
	Age     int
	Life    int
	// Delay before a carpet bomb starts falling, or the phase counter of a periodic field
	TickTimer   int
	HasRooted   bool
	HasExploded bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
