package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Projectile = donburi.NewTag().SetName("Projectile")
	Popup      = donburi.NewTag().SetName("Popup")
)

// Resolv tags for physics collision
const (
	ResolvGround   = "ground"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
)
