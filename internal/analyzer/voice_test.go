package analyzer

import (
	"strings"
	"testing"
)

func TestVoiceNoProfile(t *testing.T) {
	s := NewVoice(nil).Analyze("Any text at all.")
	if s.Score != NeutralVoiceScore {
		t.Errorf("Score = %f, want %f", s.Score, NeutralVoiceScore)
	}
	if len(s.AvoidedPhrases) != 0 {
		t.Errorf("AvoidedPhrases = %v, want none", s.AvoidedPhrases)
	}
}

func TestVoiceAvoidPhrases(t *testing.T) {
	profile := &VoiceProfile{
		Formality:    5,
		AvoidPhrases: []string{"synergy", "circle back"},
	}
	text := "We should leverage synergy here and circle back next week."

	s := NewVoice(profile).Analyze(text)
	if len(s.AvoidedPhrases) != 2 {
		t.Fatalf("AvoidedPhrases = %v, want 2", s.AvoidedPhrases)
	}

	clean := NewVoice(profile).Analyze("We should meet again next week.")
	if s.Score >= clean.Score {
		t.Errorf("avoided phrases did not lower score: %f >= %f", s.Score, clean.Score)
	}
}

func TestVoiceAvoidPhraseOccurrences(t *testing.T) {
	profile := &VoiceProfile{
		Formality:    5,
		AvoidPhrases: []string{"synergy"},
	}
	once := NewVoice(profile).Analyze("We should keep synergy talk out of our writing.")
	twice := NewVoice(profile).Analyze("We should keep synergy talk out; synergy never lands well.")

	if once.AvoidedOccurrences != 1 || twice.AvoidedOccurrences != 2 {
		t.Fatalf("AvoidedOccurrences = %d and %d, want 1 and 2",
			once.AvoidedOccurrences, twice.AvoidedOccurrences)
	}
	if len(twice.AvoidedPhrases) != 1 {
		t.Errorf("AvoidedPhrases = %v, want the one distinct phrase", twice.AvoidedPhrases)
	}
	if twice.Score >= once.Score {
		t.Errorf("repeated avoid phrase not penalized per occurrence: %f >= %f",
			twice.Score, once.Score)
	}
}

func TestVoiceSignaturePhrases(t *testing.T) {
	profile := &VoiceProfile{
		Formality:        5,
		SignaturePhrases: []string{"here's the thing"},
	}
	with := "Here's the thing. We tried it and it worked."
	without := "Here's what we tried and how it worked."

	a := NewVoice(profile).Analyze(with)
	b := NewVoice(profile).Analyze(without)

	if a.SignatureMatches != 1 {
		t.Errorf("SignatureMatches = %d, want 1", a.SignatureMatches)
	}
	if a.Score <= b.Score {
		t.Errorf("signature phrase did not raise score: %f <= %f", a.Score, b.Score)
	}
}

func TestEstimateFormality(t *testing.T) {
	formal := "Furthermore, the committee shall demonstrate its findings. " +
		"Consequently, the board shall utilize the report. Moreover, we therefore proceed accordingly."
	casual := "Hey folks, this is gonna be awesome. Yeah, it's kinda cool stuff, pretty much the best. " +
		"We're gonna wanna try it, it's super fun."

	f := estimateFormality(formal)
	c := estimateFormality(casual)

	if f <= c {
		t.Errorf("formality: formal %f <= casual %f", f, c)
	}
	if f < 1 || f > 10 || c < 1 || c > 10 {
		t.Errorf("formality out of scale: formal %f, casual %f", f, c)
	}
}

func TestVoiceFormalityMismatchPenalty(t *testing.T) {
	text := "Hey folks, this is gonna be awesome. Yeah, it's kinda cool. " +
		strings.Repeat("We just write like we talk around here. ", 3)

	relaxed := NewVoice(&VoiceProfile{Formality: 3}).Analyze(text)
	stiff := NewVoice(&VoiceProfile{Formality: 10}).Analyze(text)

	if stiff.FormalityMatch >= relaxed.FormalityMatch {
		t.Errorf("FormalityMatch: target-10 %f >= target-3 %f", stiff.FormalityMatch, relaxed.FormalityMatch)
	}
	if stiff.Score >= relaxed.Score {
		t.Errorf("Score: mismatched profile %f >= matched profile %f", stiff.Score, relaxed.Score)
	}
}

func TestVoiceToneConsistency(t *testing.T) {
	flipping := "Furthermore, the data demonstrates the point. Yeah, it's kinda cool. " +
		"Consequently, we shall proceed. Awesome stuff, folks. " +
		"Moreover, the committee shall review it. Gonna be great."

	s := NewVoice(&VoiceProfile{Formality: 5}).Analyze(flipping)
	if s.ToneShifts < 4 {
		t.Errorf("ToneShifts = %d, want >= 4 for alternating tone", s.ToneShifts)
	}
	if s.ToneConsistency >= 100 {
		t.Errorf("ToneConsistency = %f, want < 100", s.ToneConsistency)
	}
}
