package sentiment

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/iWorld-y/policy_radar/pkg/model"
	"github.com/iWorld-y/policy_radar/pkg/refdata"
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	ref, err := refdata.Load("")
	if err != nil {
		t.Fatalf("加载参考数据失败: %v", err)
	}
	return NewAnalyzer(ref)
}

func TestAnalyzeDeterministicWithSeed(t *testing.T) {
	a := newAnalyzer(t)
	r1 := a.Analyze(model.PolicyFuelPrice, 15, "", rand.New(rand.NewSource(42)))
	r2 := a.Analyze(model.PolicyFuelPrice, 15, "", rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("相同种子结果应一致:\n%+v\n%+v", r1, r2)
	}
}

func TestAnalyzeSampleCountBounds(t *testing.T) {
	a := newAnalyzer(t)
	cases := []struct {
		magnitude float64
		want      int
	}{
		{0, 5},    // |0|/2=0 → 下限 5
		{14, 7},   // 14/2=7
		{-16, 8},  // 绝对值参与计算
		{100, 10}, // 上限 10
	}
	for _, c := range cases {
		res := a.Analyze(model.PolicyTaxReform, c.magnitude, "", rand.New(rand.NewSource(1)))
		if res.SampleCount != c.want {
			t.Errorf("magnitude=%v: 样本数 = %d, 期望 %d", c.magnitude, res.SampleCount, c.want)
		}
	}
}

func TestAnalyzeDescriptionIncluded(t *testing.T) {
	a := newAnalyzer(t)
	res := a.Analyze(model.PolicySubsidy, 10, "custom policy note", rand.New(rand.NewSource(7)))
	if res.SampleCount != 6 {
		t.Errorf("带描述时样本数应为 5+1=6, 实际 %d", res.SampleCount)
	}
}

func TestAnalyzeRatiosSumToHundred(t *testing.T) {
	a := newAnalyzer(t)
	for seed := int64(0); seed < 20; seed++ {
		res := a.Analyze(model.PolicyMinimumWage, 30, "", rand.New(rand.NewSource(seed)))
		sum := res.PositiveRatio + res.NegativeRatio + res.NeutralRatio
		if sum < 99 || sum > 101 {
			t.Errorf("seed=%d: 占比之和 = %v", seed, sum)
		}
	}
}

func TestAnalyzeCategoryThresholds(t *testing.T) {
	if got := categoryFor(0.25); got != model.SentimentPositive {
		t.Errorf("0.25 应为 Positive, 实际 %s", got)
	}
	if got := categoryFor(-0.25); got != model.SentimentNegative {
		t.Errorf("-0.25 应为 Negative, 实际 %s", got)
	}
	if got := categoryFor(0.2); got != model.SentimentNeutral {
		t.Errorf("0.2 应为 Neutral, 实际 %s", got)
	}
	if got := categoryFor(-0.2); got != model.SentimentNeutral {
		t.Errorf("-0.2 应为 Neutral, 实际 %s", got)
	}
}

// categoryFor 复用分类阈值逻辑
func categoryFor(score float64) string {
	if score > categoryThreshold {
		return model.SentimentPositive
	}
	if score < -categoryThreshold {
		return model.SentimentNegative
	}
	return model.SentimentNeutral
}

func TestAnalyzeConcernsDirection(t *testing.T) {
	a := newAnalyzer(t)

	tighten := a.Analyze(model.PolicyFuelPrice, 20, "", rand.New(rand.NewSource(3)))
	if len(tighten.KeyConcerns) == 0 || len(tighten.KeyConcerns) > 3 {
		t.Errorf("收紧政策关注点应为 1-3 条, 实际 %v", tighten.KeyConcerns)
	}
	for _, c := range tighten.KeyConcerns {
		if strings.HasPrefix(c, "positive: ") {
			t.Errorf("收紧政策不应出现正向前缀: %q", c)
		}
	}

	loosen := a.Analyze(model.PolicyFuelPrice, -20, "", rand.New(rand.NewSource(3)))
	if len(loosen.KeyConcerns) == 0 || len(loosen.KeyConcerns) > 2 {
		t.Errorf("放松政策关注点应为 1-2 条, 实际 %v", loosen.KeyConcerns)
	}
	for _, c := range loosen.KeyConcerns {
		if !strings.HasPrefix(c, "positive: ") {
			t.Errorf("放松政策关注点应带正向前缀: %q", c)
		}
	}

	mild := a.Analyze(model.PolicyFuelPrice, 2, "", rand.New(rand.NewSource(3)))
	if len(mild.KeyConcerns) == 0 || len(mild.KeyConcerns) > 2 {
		t.Errorf("温和政策关注点应为 1-2 条, 实际 %v", mild.KeyConcerns)
	}
}

func TestAnalyzeUnknownPolicyFallsBack(t *testing.T) {
	a := newAnalyzer(t)
	res := a.Analyze(model.PolicyType("Mystery Policy"), 20, "", rand.New(rand.NewSource(5)))
	if res.SampleCount == 0 {
		t.Fatal("未知政策类型也应产生样本")
	}
	// 兜底反应均不含极性词, 得分应为 0, 分类应为 Neutral
	if res.OverallSentimentScore != 0 {
		t.Errorf("兜底样本得分应为 0, 实际 %v", res.OverallSentimentScore)
	}
	if res.SentimentCategory != model.SentimentNeutral {
		t.Errorf("兜底样本分类应为 Neutral, 实际 %s", res.SentimentCategory)
	}
	// 未知政策的关注点应回退到通用关注点
	if len(res.KeyConcerns) == 0 {
		t.Error("未知政策应回退到通用关注点")
	}
}

func TestUnrestProbabilityBounds(t *testing.T) {
	a := newAnalyzer(t)
	for _, mag := range []float64{-100, -50, 0, 50, 100} {
		res := a.Analyze(model.PolicyEnvironmental, mag, "", rand.New(rand.NewSource(11)))
		if res.SocialUnrestProbability < 0 || res.SocialUnrestProbability > 1 {
			t.Errorf("magnitude=%v: 动荡概率越界 %v", mag, res.SocialUnrestProbability)
		}
	}
}

func TestSampleReactionsAtMostFive(t *testing.T) {
	a := newAnalyzer(t)
	res := a.Analyze(model.PolicyTariff, 100, "", rand.New(rand.NewSource(9)))
	if len(res.SampleReactions) != 5 {
		t.Errorf("展示样本应为 5 条, 实际 %d", len(res.SampleReactions))
	}
}

func TestSummaryLine(t *testing.T) {
	if got := summaryLine(model.SentimentPositive, 0.42, 0); !strings.Contains(got, "positive (0.42)") {
		t.Errorf("正向摘要格式错误: %q", got)
	}
	if got := summaryLine(model.SentimentNegative, -0.5, 62.5); !strings.Contains(got, "62.5% negative reactions") {
		t.Errorf("负向摘要格式错误: %q", got)
	}
	if got := summaryLine(model.SentimentNeutral, 0.0, 0); !strings.Contains(got, "Mixed reactions") {
		t.Errorf("中性摘要格式错误: %q", got)
	}
}
