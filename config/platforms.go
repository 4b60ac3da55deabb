package config

// PlatformConfig describes one rectangle of the arena layout.
type PlatformConfig struct {
	X, Y, W, H float64
	Kind       PlatformKind
	Level      int
	Effect     string
}

// Platforms is the fixed arena layout, ground first.
var Platforms []PlatformConfig

func init() {
	Platforms = []PlatformConfig{
		{X: 0, Y: 650, W: 1000, H: 50, Kind: PlatformGround, Level: LevelHazard},

		{X: 100, Y: 500, W: 200, H: 20, Kind: PlatformLedge, Level: LevelJump, Effect: "jump"},
		{X: 700, Y: 500, W: 200, H: 20, Kind: PlatformLedge, Level: LevelJump, Effect: "jump"},

		{X: 0, Y: 350, W: 150, H: 20, Kind: PlatformLedge, Level: LevelSlow, Effect: "slow"},
		{X: 850, Y: 350, W: 150, H: 20, Kind: PlatformLedge, Level: LevelSlow, Effect: "slow"},

		{X: 350, Y: 200, W: 300, H: 20, Kind: PlatformLedge, Level: LevelSpeed, Effect: "speed"},
	}
}
