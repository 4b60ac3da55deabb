package components

import "github.com/yohamta/donburi"

// StatusData holds timed statuses and platform buffs.
type StatusData struct {
	Invuln       int
	Stun         int
	AttackAnim   int
	DoubleDamage int
	Reflecting   int
	Raging       int
	Guard        int

	Invisible      bool
	InvisibleTimer int

	NextHitStun bool

	SpeedBuff    bool
	JumpBuff     bool
	SlowDebuff   bool
	BuffDuration int // Keeps a granted speed buff alive off speed platforms
}

// TickTimers counts down the timers that decrement unconditionally every frame.
func (s *StatusData) TickTimers() {
	s.Invuln = countdown(s.Invuln)
	s.Stun = countdown(s.Stun)
	s.AttackAnim = countdown(s.AttackAnim)
	s.DoubleDamage = countdown(s.DoubleDamage)
	s.Reflecting = countdown(s.Reflecting)
}

var Status = donburi.NewComponentType[StatusData]()
