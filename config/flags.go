package config

// Flags are runtime switches supplied by the host each tick.
type Flags struct {
	NoCost bool `json:"noCost"` // Fill resources and clear skill/ultimate/swap cooldowns every tick
	Flashy bool `json:"flashy"` // Emit cosmetic particle requests
}
