package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX    float64
	SpeedY    float64
	OnGround  bool
	Platform  int // Index of the platform stood on, -1 when airborne
	DropTimer int // Frames left ignoring non-ground platforms
}

var Physics = donburi.NewComponentType[PhysicsData]()
