package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     // Ticks between decisions
	AttackRange   float64 // Center distance to start punching
	GrabChance    float64 // Chance to grab instead of punch when in range
	JumpChance    float64 // Chance to jump-attack when in range
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 30, // 0.5 second reaction time
				AttackRange:   26.0,
				GrabChance:    0.1,
				JumpChance:    0.05,
			},
			BotDifficultyNormal: {
				ReactionDelay: 15,
				AttackRange:   30.0,
				GrabChance:    0.25,
				JumpChance:    0.1,
			},
			BotDifficultyHard: {
				ReactionDelay: 5, // Near-instant reaction
				AttackRange:   32.0,
				GrabChance:    0.35,
				JumpChance:    0.15,
			},
		},
	}
}
