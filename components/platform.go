package components

import (
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Index  int
	Kind   config.PlatformKind
	Level  int
	Effect string
}

var Platform = donburi.NewComponentType[PlatformData]()
