package components

import "github.com/yohamta/donburi"

// CooldownData holds the four independent ability countdowns in frames
type CooldownData struct {
	Attack   int
	Skill    int
	Ultimate int
	Swap     int
}

// Tick counts every cooldown down by one frame, stopping at zero.
func (c *CooldownData) Tick() {
	c.Attack = countdown(c.Attack)
	c.Skill = countdown(c.Skill)
	c.Ultimate = countdown(c.Ultimate)
	c.Swap = countdown(c.Swap)
}

func countdown(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}

var Cooldowns = donburi.NewComponentType[CooldownData]()
