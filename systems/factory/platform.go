package factory

import (
	"github.com/automoto/brawl-arena/archetypes"
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlatform(w donburi.World, space *resolv.Space, index int, p config.PlatformConfig) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvPlatform)
	if p.Kind == config.PlatformGround {
		obj.AddTags(tags.ResolvGround)
	}
	obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
	obj.Data = platform
	space.Add(obj)

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Platform.SetValue(platform, components.PlatformData{
		Index:  index,
		Kind:   p.Kind,
		Level:  p.Level,
		Effect: p.Effect,
	})

	return platform
}

// CreatePlatforms lays out the whole arena in config order.
func CreatePlatforms(w donburi.World, space *resolv.Space) []donburi.Entity {
	entities := make([]donburi.Entity, 0, len(config.Platforms))
	for i, p := range config.Platforms {
		entities = append(entities, CreatePlatform(w, space, i, p).Entity())
	}
	return entities
}
