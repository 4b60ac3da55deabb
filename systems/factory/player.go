package factory

import (
	"github.com/automoto/brawl-arena/archetypes"
	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns combatant id (1 or 2) at its start point, facing the
// centre of the stage.
func CreatePlayer(w donburi.World, space *resolv.Space, id int, character cfg.CharacterID) *donburi.Entry {
	stats, _ := cfg.LookupCharacter(character)
	spawn := cfg.Player.SpawnPoints[id-1]
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(spawn.X, spawn.Y, cfg.Player.Width, cfg.Player.Height)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	facing := cfg.DirectionRight
	if id != 1 {
		facing = cfg.DirectionLeft
	}
	components.Player.SetValue(player, components.PlayerData{
		ID:        id,
		Character: character,
		Facing:    facing,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Platform: -1,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: stats.MaxHP,
		Max:     stats.MaxHP,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})
	components.Resource.SetValue(player, components.ResourceData{
		Current: stats.MaxResource,
		Max:     stats.MaxResource,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState: cfg.Idle,
	})

	return player
}
