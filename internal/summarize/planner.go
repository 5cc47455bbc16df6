package summarize

import (
	"fmt"
	"strings"
	"time"

	"github.com/avezina/scrutiny/internal/model"
)

// Summary types and their instruction text
const (
	TypeBrief         = "brief"
	TypeComprehensive = "comprehensive"
	TypeBulletPoints  = "bullet_points"
	TypeAbstract      = "abstract"
)

var instructions = map[string]string{
	TypeBrief:         "Create a concise summary highlighting only the most essential points.",
	TypeComprehensive: "Create a detailed summary covering all major points and key details.",
	TypeBulletPoints:  "Extract key points and present as structured bullet points.",
	TypeAbstract:      "Create an academic-style abstract with background, methods, results, and conclusions.",
}

// wordsPerMinute is the reading-speed assumption for the estimate
const wordsPerMinute = 200

// nowFunc is injectable for tests
var nowFunc = time.Now

// Plan computes deterministic summary targets for a body of content:
// word and character counts, a per-type target length, compression
// ratio and an estimated reading time. An unknown summary type gets a
// fixed 200-word target with comprehensive instructions.
func Plan(content, summaryType string) model.SummaryPlan {
	words := len(strings.Fields(content))
	chars := len(content)

	target, ok := targetLength(summaryType, words)
	inst := instructions[summaryType]
	if !ok {
		target = 200
		inst = instructions[TypeComprehensive]
	}

	ratio := 0.0
	if words > 0 {
		ratio = float64(target) / float64(words)
	}

	return model.SummaryPlan{
		GeneratedAt:      nowFunc().UTC(),
		SummaryType:      summaryType,
		WordCount:        words,
		CharCount:        chars,
		TargetLength:     target,
		CompressionRatio: ratio,
		ReadingTime:      fmt.Sprintf("%d minutes", words/wordsPerMinute),
		Instructions:     inst,
	}
}

func targetLength(summaryType string, words int) (int, bool) {
	switch summaryType {
	case TypeBrief:
		return minInt(100, words/10), true
	case TypeComprehensive:
		return minInt(300, words/5), true
	case TypeBulletPoints:
		return minInt(150, words/8), true
	case TypeAbstract:
		return minInt(250, words/6), true
	default:
		return 0, false
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
