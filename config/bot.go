package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// ParseBotDifficulty maps a CLI name to a difficulty, defaulting to normal.
func ParseBotDifficulty(s string) BotDifficulty {
	switch s {
	case "easy":
		return BotDifficultyEasy
	case "hard":
		return BotDifficultyHard
	}
	return BotDifficultyNormal
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Frames between decisions
	AttackRange      float64 // Horizontal distance to start attacking
	ChaseRange       float64 // Distance beyond which the bot stops pressing the attack
	RetreatThreshold float64 // Health fraction to start retreating
	SkillChance      float64 // Per decision, when skill is off cooldown
	UltimateChance   float64 // Per decision, when ultimate is off cooldown
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
	JumpHeight   float64 // Vertical gap above which the bot tries to climb
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30,
				AttackRange:      60.0,
				ChaseRange:       300.0,
				RetreatThreshold: 0.2,
				SkillChance:      0.05,
				UltimateChance:   0.02,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				AttackRange:      80.0,
				ChaseRange:       400.0,
				RetreatThreshold: 0.3,
				SkillChance:      0.15,
				UltimateChance:   0.08,
			},
			BotDifficultyHard: {
				ReactionDelay:    5,
				AttackRange:      100.0,
				ChaseRange:       600.0,
				RetreatThreshold: 0.15,
				SkillChance:      0.3,
				UltimateChance:   0.2,
			},
		},
		JumpHeight: 60,
	}
}
