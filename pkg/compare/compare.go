// Package compare 对多个政策场景逐一模拟并按风险排序, 给出推荐结论。
package compare

import (
	"context"
	"fmt"
	"sort"

	"github.com/iWorld-y/policy_radar/pkg/engine"
	"github.com/iWorld-y/policy_radar/pkg/logger"
	"github.com/iWorld-y/policy_radar/pkg/model"
)

// Comparator 场景对比器
type Comparator struct {
	engine *engine.Engine
}

// NewComparator 创建场景对比器
func NewComparator(e *engine.Engine) *Comparator {
	return &Comparator{engine: e}
}

// Compare 顺序模拟所有场景并按综合风险升序排名。
// 任一场景模拟失败则整次对比失败。
func (c *Comparator) Compare(ctx context.Context, scenarios []model.Scenario) (*model.ComparisonResult, error) {
	if len(scenarios) < 2 {
		return nil, model.ErrInsufficientScenarios
	}
	for _, s := range scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: scenario name is required", model.ErrInvalidPolicyInput)
		}
	}

	logger.Log.Infof("开始对比 %d 个场景", len(scenarios))

	ranked := make([]model.RankedScenario, 0, len(scenarios))
	for _, s := range scenarios {
		rec, err := c.engine.Simulate(ctx, s.Spec())
		if err != nil {
			return nil, fmt.Errorf("场景 %q 模拟失败: %w", s.Name, err)
		}
		ranked = append(ranked, model.RankedScenario{ScenarioName: s.Name, Simulation: rec})
	}

	// 按综合风险升序; 并列保持输入顺序
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Simulation.RiskAssessment.CompositeRiskScore <
			ranked[j].Simulation.RiskAssessment.CompositeRiskScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	table := make([]model.ComparisonRow, len(ranked))
	for i, r := range ranked {
		table[i] = model.ComparisonRow{
			Rank:                 r.Rank,
			Name:                 r.ScenarioName,
			InflationRate:        r.Simulation.InflationImpact.PredictedInflationRate,
			RiskScore:            r.Simulation.RiskAssessment.CompositeRiskScore,
			RiskLevel:            r.Simulation.RiskAssessment.RiskLevel,
			Sentiment:            r.Simulation.SentimentAnalysis.SentimentCategory,
			NegativeSentimentPct: r.Simulation.SentimentAnalysis.NegativeRatio,
		}
	}

	best := ranked[0]
	worst := ranked[len(ranked)-1]
	logger.Log.Infof("对比完成: 推荐场景 %q (风险分 %v)", best.ScenarioName, best.Simulation.RiskAssessment.CompositeRiskScore)

	return &model.ComparisonResult{
		Scenarios:       ranked,
		ComparisonTable: table,
		BestScenario:    best.ScenarioName,
		Recommendation:  recommendation(best, worst),
	}, nil
}

// recommendation 生成 Markdown 推荐结论
func recommendation(best, worst model.RankedScenario) string {
	return fmt.Sprintf(
		"**Recommended Option: %s**\n\n"+
			"This scenario has the lowest risk score (%.1f) compared to %s (%.1f).\n\n"+
			"Key advantages:\n"+
			"- Lower predicted inflation (%v%%)\n"+
			"- %s public sentiment\n"+
			"- Better overall risk profile\n",
		best.ScenarioName,
		best.Simulation.RiskAssessment.CompositeRiskScore,
		worst.ScenarioName,
		worst.Simulation.RiskAssessment.CompositeRiskScore,
		best.Simulation.InflationImpact.PredictedInflationRate,
		best.Simulation.SentimentAnalysis.SentimentCategory,
	)
}
