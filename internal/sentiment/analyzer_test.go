package sentiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	got := Analyze("")

	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, 0.0, got.Magnitude)
	assert.Equal(t, EmotionNeutral, got.Emotion)
	assert.Equal(t, 0.0, got.Confidence)
	assert.Empty(t, got.Contributions)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	for _, text := range []string{
		"does anybody else feel lonely",
		"really love this",
		"does anybody else get anxious out in public",
		"just ok",
	} {
		assert.Equal(t, Analyze(text), Analyze(text), "text: %q", text)
	}
}

func TestAnalyzeFeelLonely(t *testing.T) {
	got := Analyze("does anybody else feel lonely")

	// Pattern hit and word hit stack: "feel lonely" (-2) plus "lonely" (-2).
	require.Len(t, got.Contributions, 2)
	assert.Equal(t, Contribution{Token: "feel lonely", Weight: -2, Kind: KindPattern}, got.Contributions[0])
	assert.Equal(t, Contribution{Token: "lonely", Weight: -2, Kind: KindNegative}, got.Contributions[1])

	assert.InDelta(t, -4/math.Pow(5, 0.3), got.Score, 1e-9)
	assert.Equal(t, 4.0, got.Magnitude)
	assert.Equal(t, 1.0, got.Confidence)
	assert.Equal(t, EmotionSadness, got.Emotion)
}

func TestAnalyzeIntensifier(t *testing.T) {
	got := Analyze("really love this")

	// "love" (3) preceded by "really" (x1.5).
	require.Len(t, got.Contributions, 1)
	assert.Equal(t, Contribution{Token: "love", Weight: 4.5, Kind: KindPositive}, got.Contributions[0])
	assert.InDelta(t, 4.5/math.Pow(3, 0.3), got.Score, 1e-9)
	assert.Equal(t, EmotionJoy, got.Emotion)
}

func TestAnalyzeDiminisher(t *testing.T) {
	got := Analyze("slightly annoyed by this")

	// "annoyed" is both a pattern (-0.8) and a lexicon word diminished by
	// "slightly" (-2 * 0.5); both count.
	require.Len(t, got.Contributions, 2)
	assert.Equal(t, Contribution{Token: "annoyed", Weight: -0.8, Kind: KindPattern}, got.Contributions[0])
	assert.Equal(t, Contribution{Token: "annoyed", Weight: -1, Kind: KindNegative}, got.Contributions[1])
	assert.InDelta(t, 1.8, got.Magnitude, 1e-9)
	assert.Equal(t, EmotionNegative, got.Emotion)
}

func TestAnalyzeOverlappingPatternsStack(t *testing.T) {
	got := Analyze("absolutely love the quiet")

	// "absolutely love" matches as a pattern and "love" still scores as a
	// word, amplified by "absolutely" (x2). No deduplication.
	require.Len(t, got.Contributions, 2)
	assert.Equal(t, Contribution{Token: "absolutely love", Weight: 2.5, Kind: KindPattern}, got.Contributions[0])
	assert.Equal(t, Contribution{Token: "love", Weight: 6, Kind: KindPositive}, got.Contributions[1])
	assert.Equal(t, 8.5, got.Magnitude)
	assert.Equal(t, EmotionJoy, got.Emotion)
}

func TestAnalyzePatternOnlyKeepsZeroScore(t *testing.T) {
	// "miss" matches only as a pattern; with zero scoring words the
	// normalized score stays 0 while magnitude and contributions remain,
	// which routes categorization through the fallback flags.
	got := Analyze("does anybody else miss summer camp")

	require.Len(t, got.Contributions, 1)
	assert.Equal(t, Contribution{Token: "miss", Weight: -1, Kind: KindPattern}, got.Contributions[0])
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, 1.0, got.Magnitude)
	assert.InDelta(t, 0.25, got.Confidence, 1e-9)
	assert.Equal(t, EmotionMelancholy, got.Emotion)
}

func TestAnalyzeNoSentimentContent(t *testing.T) {
	for _, text := range []string{
		"just ok",
		"does anybody else talk to themselves while driving",
		"!!! ??? ...",
	} {
		got := Analyze(text)
		assert.Equal(t, EmotionNeutral, got.Emotion, "text: %q", text)
		assert.Equal(t, 0.0, got.Score, "text: %q", text)
		assert.Empty(t, got.Contributions, "text: %q", text)
	}
}

func TestCategorizeEmotionBranches(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Emotion
	}{
		{"anger beats sadness in the strong band", "hate when it rains", EmotionAnger},
		{"anxiety in the strong band", "does anybody else get anxious out in public", EmotionAnxiety},
		{"discomfort maps to anxiety near zero", "feel weird about it", EmotionAnxiety},
		{"strong positive without joy words", "such a pleasant morning", EmotionPositive},
		{"joy wins over plain positive", "so happy today", EmotionJoy},
		{"diminished negative stays negative band", "kind of tired", EmotionNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text).Emotion)
		})
	}
}

func TestCategorizeThresholdEdges(t *testing.T) {
	// The numeric cutoffs are contract values; a score sitting exactly on a
	// threshold does not cross it.
	contribs := []Contribution{{Token: "notice", Weight: 0.1, Kind: KindPattern}}

	assert.Equal(t, EmotionMildlyPositive, categorizeEmotion(0.15, 1, contribs))
	assert.Equal(t, EmotionPositive, categorizeEmotion(0.1501, 1, contribs))
	assert.Equal(t, EmotionMildlyNegative, categorizeEmotion(-0.15, 1, contribs))
	assert.Equal(t, EmotionNegative, categorizeEmotion(-0.1501, 1, contribs))
	assert.Equal(t, EmotionNeutral, categorizeEmotion(0, 0.19, nil))
	assert.Equal(t, EmotionMildlyPositive, categorizeEmotion(0.001, 0.1, contribs))
}

func TestEmotionColorTotality(t *testing.T) {
	all := []Emotion{
		EmotionNeutral, EmotionPositive, EmotionMildlyPositive, EmotionJoy,
		EmotionNegative, EmotionMildlyNegative, EmotionAnger, EmotionSadness,
		EmotionFear, EmotionAnxiety, EmotionMelancholy,
	}
	for _, e := range all {
		assert.NotEmpty(t, EmotionColor(e), "emotion: %s", e)
	}
	assert.Equal(t, EmotionColor(EmotionNeutral), EmotionColor(Emotion("whatever")))
}

func TestEmotionIntensity(t *testing.T) {
	assert.Equal(t, IntensityMinimal, EmotionIntensity(0))
	assert.Equal(t, IntensityMinimal, EmotionIntensity(0.3))
	assert.Equal(t, IntensityLow, EmotionIntensity(0.31))
	assert.Equal(t, IntensityLow, EmotionIntensity(1))
	assert.Equal(t, IntensityMedium, EmotionIntensity(1.5))
	assert.Equal(t, IntensityHigh, EmotionIntensity(2.1))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"can't", "catch", "a", "break"}, tokenize("can't catch a break!"))
	assert.Equal(t, []string{"feel", "weird", "out", "in", "public"}, tokenize("feel weird... out-in public?"))
	assert.Empty(t, tokenize("!!! ???"))
}
