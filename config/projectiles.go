package config

// ProjectileKind identifies a projectile's motion and hit rules.
type ProjectileKind int

const (
	Fireball ProjectileKind = iota
	Bullet
	Card
	Hook
	DiceBoulder
	Grenade
	C4Trap
	CarpetBomb
	IllusionBeam
	SwapBullet
	LightPillar
	TimeNeedle
	StasisField
	MageBeam
)

var projectileNames = map[ProjectileKind]string{
	Fireball:     "fireball",
	Bullet:       "bullet",
	Card:         "card",
	Hook:         "hook",
	DiceBoulder:  "dice_boulder",
	Grenade:      "grenade",
	C4Trap:       "c4_trap",
	CarpetBomb:   "carpet_bomb",
	IllusionBeam: "illusion_beam",
	SwapBullet:   "swap_bullet",
	LightPillar:  "light_pillar",
	TimeNeedle:   "time_needle",
	StasisField:  "stasis_field",
	MageBeam:     "mage_ult",
}

func (k ProjectileKind) String() string {
	if n, ok := projectileNames[k]; ok {
		return n
	}
	return "unknown"
}

// ProjectileSpec is the per-kind geometry and lifetime.
type ProjectileSpec struct {
	W, H float64
	Life int // Zero for kinds that only expire by leaving the stage or hitting something
}

// ProjectileConfig holds projectile tuning shared by the behaviour engine.
type ProjectileConfig struct {
	Specs       map[ProjectileKind]ProjectileSpec
	DefaultSize float64

	OffstageMargin float64

	// Reflection
	Reflectable     map[ProjectileKind]bool
	ReflectReach    float64 // Horizontal widening of the reflector's box
	ReflectNudge    float64 // Velocity steps applied after redirect
	GrenadeNudge    float64
	ReflectMinSpeed float64 // Used when the incoming projectile is at rest

	// Ballistics
	BallisticGravity float64 // Dice and carpet bombs fall slower than combatants
	DiceRestitution  float64
	DiceMinBounce    float64
	BallisticHitLip  float64 // Depth below a platform top that still catches a falling body

	// Area effects
	GrenadeSplash  float64
	C4Splash       float64
	CarpetBurstY   float64
	CarpetReachY   float64
	CarpetStun     int
	FieldTick      int
	BeamRootStun   int
	PillarStun     int
	StasisDrag     float64
	NeedleBase     float64
	NeedleAmp      float64
	NeedleFreq     float64
	HookPull       float64
	HookStun       int
	HookBuffFrames int
	BanishOffset   float64
	BanishEdge     float64
	BanishY        float64
	BanishStun     int
}

var Projectiles ProjectileConfig

func init() {
	Projectiles = ProjectileConfig{
		Specs: map[ProjectileKind]ProjectileSpec{
			Fireball:     {W: 15, H: 15},
			Bullet:       {W: 8, H: 8},
			Card:         {W: 14, H: 20},
			Hook:         {W: 20, H: 10},
			DiceBoulder:  {W: 30, H: 30},
			Grenade:      {W: 12, H: 12},
			C4Trap:       {W: 20, H: 6, Life: 600},
			CarpetBomb:   {W: 60, H: 60},
			IllusionBeam: {W: 40, H: 6},
			SwapBullet:   {W: 20, H: 20},
			LightPillar:  {W: 60, H: 700, Life: 90},
			TimeNeedle:   {W: 30, H: 6},
			StasisField:  {W: 180, H: 180, Life: 300},
			MageBeam:     {W: 1000, H: 40, Life: 180},
		},
		DefaultSize: 8,

		OffstageMargin: 50,

		Reflectable: map[ProjectileKind]bool{
			Fireball:     true,
			Bullet:       true,
			Card:         true,
			DiceBoulder:  true,
			IllusionBeam: true,
			SwapBullet:   true,
			TimeNeedle:   true,
			Grenade:      true,
		},
		ReflectReach:    20,
		ReflectNudge:    2,
		GrenadeNudge:    3,
		ReflectMinSpeed: 10,

		BallisticGravity: 0.5,
		DiceRestitution:  0.8,
		DiceMinBounce:    1,
		BallisticHitLip:  10,

		GrenadeSplash:  60,
		C4Splash:       80,
		CarpetBurstY:   600,
		CarpetReachY:   500,
		CarpetStun:     30,
		FieldTick:      30,
		BeamRootStun:   120,
		PillarStun:     60,
		StasisDrag:     0.5,
		NeedleBase:     8,
		NeedleAmp:      6,
		NeedleFreq:     0.2,
		HookPull:       50,
		HookStun:       90,
		HookBuffFrames: 120,
		BanishOffset:   100,
		BanishEdge:     50,
		BanishY:        600,
		BanishStun:     60,
	}
}

// SizeOf returns the bounding box for a projectile kind.
func SizeOf(k ProjectileKind) (w, h float64) {
	if s, ok := Projectiles.Specs[k]; ok {
		return s.W, s.H
	}
	return Projectiles.DefaultSize, Projectiles.DefaultSize
}
