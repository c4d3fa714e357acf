package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// Emotion is the categorical label assigned to an analyzed phrase.
type Emotion string

const (
	EmotionNeutral        Emotion = "neutral"
	EmotionPositive       Emotion = "positive"
	EmotionMildlyPositive Emotion = "mildly-positive"
	EmotionJoy            Emotion = "joy"
	EmotionNegative       Emotion = "negative"
	EmotionMildlyNegative Emotion = "mildly-negative"
	EmotionAnger          Emotion = "anger"
	EmotionSadness        Emotion = "sadness"
	EmotionFear           Emotion = "fear"
	EmotionAnxiety        Emotion = "anxiety"
	EmotionMelancholy     Emotion = "melancholy"
)

// Kind tags where a contribution came from.
type Kind string

const (
	KindPositive Kind = "positive"
	KindNegative Kind = "negative"
	KindPattern  Kind = "pattern"
)

// Contribution records one lexicon or pattern hit, in discovery order
// (patterns before words).
type Contribution struct {
	Token  string  `json:"token"`
	Weight float64 `json:"weight"`
	Kind   Kind    `json:"kind"`
}

// Result is the immutable outcome of analyzing one phrase.
type Result struct {
	Score         float64        `json:"score"`
	Magnitude     float64        `json:"magnitude"`
	Emotion       Emotion        `json:"emotion"`
	Confidence    float64        `json:"confidence"`
	Contributions []Contribution `json:"contributions,omitempty"`
	WordCount     int            `json:"word_count"`
	TotalWords    int            `json:"total_words"`
}

// Classification thresholds. The branch order in categorizeEmotion and these
// exact values decide every label; do not tune them independently.
const (
	threshold          = 0.05
	strongThreshold    = 0.15
	magnitudeThreshold = 0.2
)

var nonWord = regexp.MustCompile(`[^\w\s']`)

// Analyze scores a phrase against the lexicon. It is pure and total: empty
// input yields the neutral zero result, never an error.
//
// Patterns are matched first as raw substrings of the lowercased text, each
// hit counting independently (overlaps included). Then each token is scored
// against the word lexicons, with the preceding token consulted for an
// intensifier or diminisher multiplier. The net score is normalized by
// len(tokens)^0.3, which dampens length bias without flattening it the way a
// linear average would.
func Analyze(text string) Result {
	if text == "" {
		return Result{Emotion: EmotionNeutral}
	}

	lowered := strings.ToLower(text)
	words := tokenize(lowered)

	var score, magnitude float64
	var wordCount int
	var contribs []Contribution

	for _, p := range patterns {
		if strings.Contains(lowered, p.phrase) {
			score += p.weight
			magnitude += math.Abs(p.weight)
			contribs = append(contribs, Contribution{Token: p.phrase, Weight: p.weight, Kind: KindPattern})
		}
	}

	for i, word := range words {
		multiplier := 1.0
		if i > 0 {
			prev := words[i-1]
			if m, ok := intensifiers[prev]; ok {
				multiplier = m
			} else if m, ok := diminishers[prev]; ok {
				multiplier = m
			}
		}

		var wordScore float64
		if w, ok := positiveWords[word]; ok {
			wordScore = w * multiplier
			contribs = append(contribs, Contribution{Token: word, Weight: wordScore, Kind: KindPositive})
		} else if w, ok := negativeWords[word]; ok {
			wordScore = w * multiplier
			contribs = append(contribs, Contribution{Token: word, Weight: wordScore, Kind: KindNegative})
		}

		if wordScore != 0 {
			score += wordScore
			magnitude += math.Abs(wordScore)
			wordCount++
		}
	}

	var normalized float64
	if wordCount > 0 {
		normalized = score / math.Pow(float64(len(words)), 0.3)
	}
	confidence := math.Min(magnitude/(float64(len(words))*0.5+1), 1)

	return Result{
		Score:         normalized,
		Magnitude:     magnitude,
		Emotion:       categorizeEmotion(normalized, magnitude, contribs),
		Confidence:    confidence,
		Contributions: contribs,
		WordCount:     wordCount,
		TotalWords:    len(words),
	}
}

// tokenize lowercased text: everything outside letters, digits, underscores
// and apostrophes becomes a separator.
func tokenize(text string) []string {
	return strings.Fields(nonWord.ReplaceAllString(text, " "))
}

// Keyword sets for flagging specific emotional signals among the recorded
// contributions. Membership is tested against the contribution token exactly,
// so both single words and pattern phrases appear here.
var (
	anxietyWords = keywordSet("anxious", "nervous", "worried", "panic", "overwhelmed", "stressed",
		"get nervous", "get anxious", "freak out", "get scared", "uncomfortable", "awkward")
	sadnessWords = keywordSet("sad", "depressed", "lonely", "hopeless", "hurt", "miss",
		"cry", "tear up", "feel sad", "feel lonely", "feel lost", "distressed")
	angerWords = keywordSet("angry", "hate", "furious", "mad", "rage", "frustrated",
		"annoying", "get upset", "really hate", "totally hate", "absolutely hate")
	joyWords = keywordSet("happy", "joy", "excited", "love", "thrilled", "delighted",
		"absolutely love", "really enjoy", "feel better", "relieved")
	fearWords       = keywordSet("scared", "afraid", "terrified", "fear", "get scared", "frightened")
	discomfortWords = keywordSet("weird", "strange", "uncomfortable", "awkward", "embarrassed",
		"feel weird", "feel strange", "feel awkward")
	struggleWords = keywordSet("struggle", "difficult", "hard time", "have trouble",
		"can't", "impossible", "struggle with")
)

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func hasAny(contribs []Contribution, set map[string]struct{}) bool {
	for _, c := range contribs {
		if _, ok := set[c.Token]; ok {
			return true
		}
	}
	return false
}

// categorizeEmotion maps a normalized score, magnitude and contribution list
// to a label. Branch order is load-bearing: when several flags are set, the
// first matching return wins.
func categorizeEmotion(score, magnitude float64, contribs []Contribution) Emotion {
	hasAnxiety := hasAny(contribs, anxietyWords)
	hasSadness := hasAny(contribs, sadnessWords)
	hasAnger := hasAny(contribs, angerWords)
	hasJoy := hasAny(contribs, joyWords)
	hasFear := hasAny(contribs, fearWords)
	hasDiscomfort := hasAny(contribs, discomfortWords)
	hasStruggle := hasAny(contribs, struggleWords)

	if magnitude < magnitudeThreshold && len(contribs) == 0 {
		return EmotionNeutral
	}

	if score > strongThreshold {
		if hasJoy {
			return EmotionJoy
		}
		return EmotionPositive
	} else if score > threshold || (score > 0 && len(contribs) > 0) {
		if hasJoy {
			return EmotionJoy
		}
		return EmotionMildlyPositive
	} else if score < -strongThreshold {
		if hasAnger {
			return EmotionAnger
		}
		if hasSadness {
			return EmotionSadness
		}
		if hasFear {
			return EmotionFear
		}
		if hasAnxiety {
			return EmotionAnxiety
		}
		return EmotionNegative
	} else if score < -threshold || (score < 0 && len(contribs) > 0) {
		if hasAnxiety || hasDiscomfort {
			return EmotionAnxiety
		}
		if hasSadness {
			return EmotionMelancholy
		}
		if hasStruggle {
			return EmotionMildlyNegative
		}
		if hasAnger {
			return EmotionMildlyNegative
		}
		return EmotionMildlyNegative
	}

	// Score landed on zero but contributions exist; fall back to the flags.
	if hasAnxiety || hasDiscomfort {
		return EmotionAnxiety
	}
	if hasSadness {
		return EmotionMelancholy
	}
	if hasStruggle {
		return EmotionMildlyNegative
	}
	if hasJoy {
		return EmotionMildlyPositive
	}

	return EmotionNeutral
}

// Intensity buckets magnitude for visual effects.
type Intensity string

const (
	IntensityMinimal Intensity = "minimal"
	IntensityLow     Intensity = "low"
	IntensityMedium  Intensity = "medium"
	IntensityHigh    Intensity = "high"
)

var emotionColors = map[Emotion]string{
	EmotionJoy:            "#FFD700",
	EmotionPositive:       "#66FF66",
	EmotionMildlyPositive: "#99FF99",
	EmotionNeutral:        "#CCCCCC",
	EmotionMildlyNegative: "#FFB366",
	EmotionAnxiety:        "#FF9966",
	EmotionMelancholy:     "#6699FF",
	EmotionSadness:        "#4169E1",
	EmotionAnger:          "#FF6666",
	EmotionFear:           "#9966FF",
	EmotionNegative:       "#FF4444",
}

// EmotionColor returns the display color for an emotion, defaulting to the
// neutral color for anything unrecognized.
func EmotionColor(emotion Emotion) string {
	if c, ok := emotionColors[emotion]; ok {
		return c
	}
	return emotionColors[EmotionNeutral]
}

// EmotionIntensity buckets a result magnitude into a display intensity.
func EmotionIntensity(magnitude float64) Intensity {
	switch {
	case magnitude > 2:
		return IntensityHigh
	case magnitude > 1:
		return IntensityMedium
	case magnitude > 0.3:
		return IntensityLow
	default:
		return IntensityMinimal
	}
}
