// Package sentiment 基于词典启发式模拟公众对政策的情绪反应。
// 从政策类型的反应模板中抽样文本，用全局极性词典逐条打分后汇总。
package sentiment

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/iWorld-y/policy_radar/pkg/model"
	"github.com/iWorld-y/policy_radar/pkg/refdata"
)

// 单条文本的极性判定阈值与整体分类阈值
const (
	polarityThreshold = 0.1
	categoryThreshold = 0.2
)

// Analyzer 情绪分析器，持有只读词典数据
type Analyzer struct {
	ref *refdata.Data
}

// NewAnalyzer 创建情绪分析器
func NewAnalyzer(ref *refdata.Data) *Analyzer {
	return &Analyzer{ref: ref}
}

// Analyze 模拟一次公众情绪反应。rng 由调用方注入，相同种子下结果可复现。
func (a *Analyzer) Analyze(pt model.PolicyType, magnitude float64, description string, rng *rand.Rand) model.SentimentResult {
	profile, ok := a.ref.Profile(pt)
	reactions := profile.SampleReactions
	if !ok || len(reactions) == 0 {
		reactions = a.ref.GenericReactions
	}

	// 样本量随政策力度增大, 固定在 [5,10]
	n := int(math.Abs(magnitude) / 2)
	if n < 5 {
		n = 5
	}
	if n > 10 {
		n = 10
	}

	// 反应池为模板重复三份, 不放回抽样
	pool := make([]string, 0, len(reactions)*3)
	for i := 0; i < 3; i++ {
		pool = append(pool, reactions...)
	}
	if n > len(pool) {
		n = len(pool)
	}
	texts := sample(rng, pool, n)
	if description != "" {
		texts = append(texts, description)
	}

	var sum float64
	var posCount, negCount int
	for _, text := range texts {
		p := a.polarity(text)
		sum += p
		if p > polarityThreshold {
			posCount++
		} else if p < -polarityThreshold {
			negCount++
		}
	}
	total := len(texts)
	score := sum / float64(total)
	neutralCount := total - posCount - negCount

	category := model.SentimentNeutral
	if score > categoryThreshold {
		category = model.SentimentPositive
	} else if score < -categoryThreshold {
		category = model.SentimentNegative
	}

	negRatio := round2(float64(negCount) / float64(total) * 100)
	posRatio := round2(float64(posCount) / float64(total) * 100)
	neutralRatio := round2(float64(neutralCount) / float64(total) * 100)

	concerns := a.concerns(profile, ok, magnitude, rng)

	// 动荡概率由政策力度与负面均分共同驱动
	unrest := clamp01(math.Abs(magnitude)/100*0.3 + math.Max(0, -score)*0.4)

	sampleN := 5
	if len(texts) < sampleN {
		sampleN = len(texts)
	}

	return model.SentimentResult{
		OverallSentimentScore:   round3(score),
		PositiveRatio:           posRatio,
		NegativeRatio:           negRatio,
		NeutralRatio:            neutralRatio,
		SampleCount:             total,
		SentimentCategory:       category,
		KeyConcerns:             concerns,
		SocialUnrestProbability: round3(unrest),
		SampleReactions:         texts[:sampleN],
		Summary:                 summaryLine(category, round3(score), negRatio),
	}
}

// polarity 单条文本打分: (正向词数-负向词数)/(正向词数+负向词数), 无命中为 0
func (a *Analyzer) polarity(text string) float64 {
	var pos, neg int
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if _, ok := a.ref.PositiveWords[tok]; ok {
			pos++
		}
		if _, ok := a.ref.NegativeWords[tok]; ok {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

// concerns 按力度方向选取关注点:
// 大幅收紧取负向关注, 大幅放松取正向关注(加前缀), 其余取中性关注
func (a *Analyzer) concerns(profile refdata.SentimentProfile, known bool, magnitude float64, rng *rand.Rand) []string {
	switch {
	case magnitude > 5:
		keywords := profile.NegativeKeywords
		if !known || len(keywords) == 0 {
			keywords = a.ref.GenericConcerns
		}
		return sample(rng, keywords, minInt(3, len(keywords)))
	case magnitude < -5:
		picked := sample(rng, profile.PositiveKeywords, minInt(2, len(profile.PositiveKeywords)))
		out := make([]string, len(picked))
		for i, k := range picked {
			out[i] = "positive: " + k
		}
		return out
	default:
		return sample(rng, profile.NeutralKeywords, minInt(2, len(profile.NeutralKeywords)))
	}
}

// sample 不放回抽样 n 个元素
func sample(rng *rand.Rand, items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	perm := rng.Perm(len(items))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = items[perm[i]]
	}
	return out
}

func summaryLine(category string, score, negRatio float64) string {
	switch category {
	case model.SentimentPositive:
		return fmt.Sprintf("Public sentiment is positive (%.2f). Policy likely to receive support.", score)
	case model.SentimentNegative:
		return fmt.Sprintf("Public sentiment is negative (%.2f). %.1f%% negative reactions detected.", score, negRatio)
	default:
		return fmt.Sprintf("Public sentiment is neutral (%.2f). Mixed reactions expected.", score)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
