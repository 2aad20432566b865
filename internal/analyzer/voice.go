package analyzer

import (
	"math"
	"strings"

	"github.com/pthm/publint/internal/textutil"
)

// NeutralVoiceScore is returned when no voice profile is supplied.
const NeutralVoiceScore = 75.0

var formalIndicators = []string{
	"furthermore", "moreover", "consequently", "therefore", "thus",
	"hence", "accordingly", "nevertheless", "notwithstanding",
	"regarding", "whom", "shall", "utilize", "demonstrate",
	"subsequently", "pursuant",
}

var casualIndicators = []string{
	"gonna", "wanna", "gotta", "kinda", "sorta", "stuff", "cool",
	"awesome", "folks", "hey", "yeah", "okay", "basically",
	"pretty much", "a lot", "super",
}

// VoiceProfile describes the editorial voice content should match.
// Formality runs 1 (casual) to 10 (formal).
type VoiceProfile struct {
	Formality        int      `yaml:"formality"`
	Description      string   `yaml:"description"`
	SignaturePhrases []string `yaml:"signaturePhrases"`
	AvoidPhrases     []string `yaml:"avoidPhrases"`
	Transitions      []string `yaml:"transitions"`
}

// VoiceScore is the voice sub-score and its metrics. AvoidedPhrases
// lists the profile's avoid-phrases actually found; the risk assessor
// treats any entry as a compliance signal. AvoidedOccurrences counts
// every occurrence, and each one is penalized.
type VoiceScore struct {
	Score              float64  `json:"score"`
	EstimatedFormality float64  `json:"estimatedFormality"`
	FormalityMatch     float64  `json:"formalityMatch"`
	SignatureMatches   int      `json:"signatureMatches"`
	AvoidedPhrases     []string `json:"avoidedPhrases,omitempty"`
	AvoidedOccurrences int      `json:"avoidedOccurrences"`
	ToneShifts         int      `json:"toneShifts"`
	ToneConsistency    float64  `json:"toneConsistency"`
}

// Voice measures how well content matches a supplied voice profile.
type Voice struct {
	Profile *VoiceProfile
}

// NewVoice returns a voice analyzer; a nil profile yields the neutral
// default score with no penalties.
func NewVoice(profile *VoiceProfile) Voice {
	return Voice{Profile: profile}
}

// Analyze scores the plain text against the profile.
func (v Voice) Analyze(plain string) VoiceScore {
	if v.Profile == nil {
		return VoiceScore{
			Score:           NeutralVoiceScore,
			FormalityMatch:  100,
			ToneConsistency: 100,
		}
	}

	lower := strings.ToLower(plain)

	s := VoiceScore{}
	for _, phrase := range v.Profile.SignaturePhrases {
		s.SignatureMatches += strings.Count(lower, strings.ToLower(phrase))
	}
	for _, phrase := range v.Profile.AvoidPhrases {
		if phrase == "" {
			continue
		}
		if n := strings.Count(lower, strings.ToLower(phrase)); n > 0 {
			s.AvoidedPhrases = append(s.AvoidedPhrases, phrase)
			s.AvoidedOccurrences += n
		}
	}

	s.EstimatedFormality = estimateFormality(plain)
	diff := math.Abs(s.EstimatedFormality - float64(v.Profile.Formality))
	s.FormalityMatch = clamp(100 - diff*15)

	s.ToneShifts = toneShifts(plain)
	s.ToneConsistency = clamp(100 - float64(s.ToneShifts)*10)

	phraseBonus := math.Min(20, float64(s.SignatureMatches)*5)
	avoidPenalty := float64(s.AvoidedOccurrences) * 10

	s.Score = clamp(50 + 0.3*s.FormalityMatch + phraseBonus - avoidPenalty + 0.2*s.ToneConsistency)
	return s
}

// estimateFormality places text on a 1-10 scale from normalized
// formal/casual indicator counts and the contraction rate.
func estimateFormality(plain string) float64 {
	words := textutil.Words(plain)
	if len(words) == 0 {
		return 5
	}

	lower := strings.ToLower(plain)
	formal := 0
	for _, ind := range formalIndicators {
		formal += strings.Count(lower, ind)
	}
	casual := 0
	for _, ind := range casualIndicators {
		casual += strings.Count(lower, ind)
	}
	contractions := 0
	for _, w := range words {
		if strings.Contains(w, "'") {
			contractions++
		}
	}

	per100 := 100.0 / float64(len(words))
	score := 5 + float64(formal)*per100*0.8 - float64(casual)*per100*0.8 - float64(contractions)*per100*0.3

	return math.Max(1, math.Min(10, score))
}

// toneShifts counts toggles between formal and casual indicator
// presence across consecutive sentences. Sentences with neither or
// both indicators carry the previous tone forward.
func toneShifts(plain string) int {
	sentences := textutil.Sentences(plain)

	shifts := 0
	prev := 0 // 0 unknown, 1 formal, -1 casual
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		hasFormal := containsAny(lower, formalIndicators)
		hasCasual := containsAny(lower, casualIndicators)

		tone := 0
		if hasFormal && !hasCasual {
			tone = 1
		} else if hasCasual && !hasFormal {
			tone = -1
		}
		if tone != 0 {
			if prev != 0 && tone != prev {
				shifts++
			}
			prev = tone
		}
	}
	return shifts
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
