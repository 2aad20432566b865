package quality

import (
	"fmt"

	"github.com/pthm/publint/internal/analyzer"
)

// Defaults applied by WithDefaults when a field is unset.
const (
	DefaultTargetGrade  = analyzer.DefaultTargetGrade
	DefaultMinWordCount = 300
	DefaultMaxWordCount = 5000
)

// Config drives one quality analysis. The zero value is usable after
// WithDefaults; Analyze applies defaults itself.
type Config struct {
	TargetReadabilityGrade float64                `yaml:"targetReadabilityGrade"`
	MinWordCount           int                    `yaml:"minWordCount"`
	MaxWordCount           int                    `yaml:"maxWordCount"`
	PrimaryKeyword         string                 `yaml:"primaryKeyword"`
	SecondaryKeywords      []string               `yaml:"secondaryKeywords"`
	BannedPhrases          []string               `yaml:"bannedPhrases"`
	VoiceProfile           *analyzer.VoiceProfile `yaml:"voiceProfile"`
}

// WithDefaults returns a copy with unset fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.TargetReadabilityGrade <= 0 {
		c.TargetReadabilityGrade = DefaultTargetGrade
	}
	if c.MinWordCount <= 0 {
		c.MinWordCount = DefaultMinWordCount
	}
	if c.MaxWordCount <= 0 {
		c.MaxWordCount = DefaultMaxWordCount
	}
	return c
}

// Validate rejects contradictory configuration.
func (c Config) Validate() error {
	if c.MinWordCount < 0 || c.MaxWordCount < 0 {
		return fmt.Errorf("word count bounds must not be negative")
	}
	if c.MinWordCount > 0 && c.MaxWordCount > 0 && c.MinWordCount > c.MaxWordCount {
		return fmt.Errorf("minWordCount %d exceeds maxWordCount %d", c.MinWordCount, c.MaxWordCount)
	}
	if p := c.VoiceProfile; p != nil && (p.Formality < 0 || p.Formality > 10) {
		return fmt.Errorf("voice profile formality %d outside 1-10", p.Formality)
	}
	return nil
}
