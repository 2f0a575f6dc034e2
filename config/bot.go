package config

import (
	"fmt"
	"strings"
)

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

var botDifficultyNames = [...]string{"easy", "normal", "hard"}

func (d BotDifficulty) String() string {
	if d >= 0 && int(d) < len(botDifficultyNames) {
		return botDifficultyNames[d]
	}
	return fmt.Sprintf("BotDifficulty(%d)", int(d))
}

func (d BotDifficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts the difficulty by name, for flags and config files.
func (d *BotDifficulty) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for i, name := range botDifficultyNames {
		if name == s {
			*d = BotDifficulty(i)
			return nil
		}
	}
	return fmt.Errorf("unknown bot difficulty %q", string(b))
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    float64 // seconds between decisions
	Reach            float64 // fraction of the weapon's range the bot attacks from
	ChaseRange       float64 // Distance to start chasing
	RetreatThreshold float64 // Health fraction to start retreating
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot = BotConfigData{
	Difficulties: map[BotDifficulty]BotDifficultyConfig{
		BotDifficultyEasy: {
			ReactionDelay:    0.5,
			Reach:            0.6,
			ChaseRange:       150.0,
			RetreatThreshold: 0.2,
		},
		BotDifficultyNormal: {
			ReactionDelay:    0.25,
			Reach:            0.8,
			ChaseRange:       250.0,
			RetreatThreshold: 0.3,
		},
		BotDifficultyHard: {
			ReactionDelay:    0.08,
			Reach:            0.9,
			ChaseRange:       400.0,
			RetreatThreshold: 0.35,
		},
	},
}

// Tuning returns the difficulty's values, normal for unknown ones.
func (d BotDifficulty) Tuning() BotDifficultyConfig {
	if c, ok := Bot.Difficulties[d]; ok {
		return c
	}
	return Bot.Difficulties[BotDifficultyNormal]
}
