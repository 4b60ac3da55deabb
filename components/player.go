package components

import (
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ID        int // 1 or 2
	Character config.CharacterID
	Facing    float64 // -1 or 1
	Intent    messages.Intent
}

var Player = donburi.NewComponentType[PlayerData]()
