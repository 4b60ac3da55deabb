package config

import "sort"

// CharacterID selects a kit and its static definition.
type CharacterID string

const (
	Mage          CharacterID = "mage"
	Warrior       CharacterID = "warrior"
	Tank          CharacterID = "tank"
	Marksman      CharacterID = "marksman"
	Ghost         CharacterID = "ghost"
	Gambler       CharacterID = "gambler"
	Demolitionist CharacterID = "demolitionist"
	Illusionist   CharacterID = "illusionist"
	Paladin       CharacterID = "paladin"
	Chronomancer  CharacterID = "chronomancer"
)

// CharacterConfig is the static definition of one selectable character
type CharacterConfig struct {
	Name         string
	MaxHP        float64
	ResourceType string // mana, rage, energy, ammo, faith or cooldown
	MaxResource  float64

	// Resource costs
	AttackCost   float64
	SkillCost    float64
	UltimateCost float64

	AttackDamage float64

	// Cooldowns applied by the kit on a successful cast (frames). Zero means
	// the action is gated by resource alone.
	SkillCooldown    int
	UltimateCooldown int
}

// Characters holds every selectable character keyed by id.
var Characters map[CharacterID]CharacterConfig

// CharacterOrder is the roster order used by selection screens and the CLI.
var CharacterOrder = []CharacterID{
	Mage, Warrior, Tank, Marksman, Ghost, Gambler, Demolitionist, Illusionist, Paladin, Chronomancer,
}

func init() {
	Characters = map[CharacterID]CharacterConfig{
		Mage: {
			Name: "Mage", MaxHP: 4, ResourceType: "mana", MaxResource: 100,
			AttackCost: 10, UltimateCost: 60, AttackDamage: 1,
			SkillCooldown: 600,
		},
		Warrior: {
			Name: "Warrior", MaxHP: 5, ResourceType: "rage", MaxResource: 100,
			SkillCost: 30, UltimateCost: 80, AttackDamage: 1,
			SkillCooldown: 480,
		},
		Tank: {
			Name: "Tank", MaxHP: 6, ResourceType: "cooldown", MaxResource: 100,
			AttackDamage:  1,
			SkillCooldown: 300, UltimateCooldown: 1080,
		},
		Marksman: {
			Name: "Marksman", MaxHP: 4, ResourceType: "energy", MaxResource: 100,
			AttackCost: 5, SkillCost: 25, UltimateCost: 60, AttackDamage: 1,
			SkillCooldown: 300,
		},
		Ghost: {
			Name: "Ghost", MaxHP: 1, ResourceType: "cooldown", MaxResource: 100,
			AttackDamage:  1,
			SkillCooldown: 600, UltimateCooldown: 600,
		},
		Gambler: {
			Name: "Gambler", MaxHP: 5, ResourceType: "cooldown", MaxResource: 100,
			AttackDamage:  1,
			SkillCooldown: 300, UltimateCooldown: 900,
		},
		Demolitionist: {
			Name: "Demolitionist", MaxHP: 5, ResourceType: "ammo", MaxResource: 3,
			AttackCost: 1, SkillCost: 1, UltimateCost: 2, AttackDamage: 1,
			SkillCooldown: 30, UltimateCooldown: 900,
		},
		Illusionist: {
			Name: "Illusionist", MaxHP: 5, ResourceType: "cooldown", MaxResource: 100,
			AttackDamage:  0.5,
			SkillCooldown: 300, UltimateCooldown: 1200,
		},
		Paladin: {
			Name: "Paladin", MaxHP: 6, ResourceType: "faith", MaxResource: 100,
			SkillCost: 30, UltimateCost: 70, AttackDamage: 1,
			SkillCooldown: 600, UltimateCooldown: 1200,
		},
		Chronomancer: {
			Name: "Chronomancer", MaxHP: 3, ResourceType: "energy", MaxResource: 100,
			SkillCost: 50, UltimateCost: 100, AttackDamage: 1,
			SkillCooldown: 600, UltimateCooldown: 1200,
		},
	}
}

// LookupCharacter returns the definition for id and whether it exists.
func LookupCharacter(id CharacterID) (CharacterConfig, bool) {
	c, ok := Characters[id]
	return c, ok
}

// CharacterNames returns every character id sorted alphabetically.
func CharacterNames() []string {
	names := make([]string, 0, len(Characters))
	for id := range Characters {
		names = append(names, string(id))
	}
	sort.Strings(names)
	return names
}
