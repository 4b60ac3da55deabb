package components

import (
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

// StateData is the action lock a combatant is in and frames left in it.
type StateData struct {
	CurrentState config.ActionState
	StateTimer   int
}

var State = donburi.NewComponentType[StateData]()
