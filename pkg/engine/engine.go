// Package engine 编排一次完整的政策模拟:
// 行业冲击 → 通胀预测 → 公众情绪 → 风险评估 → 汇总入库。
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iWorld-y/policy_radar/pkg/history"
	"github.com/iWorld-y/policy_radar/pkg/indicators"
	"github.com/iWorld-y/policy_radar/pkg/inflation"
	"github.com/iWorld-y/policy_radar/pkg/logger"
	"github.com/iWorld-y/policy_radar/pkg/model"
	"github.com/iWorld-y/policy_radar/pkg/refdata"
	"github.com/iWorld-y/policy_radar/pkg/risk"
	"github.com/iWorld-y/policy_radar/pkg/sector"
	"github.com/iWorld-y/policy_radar/pkg/sentiment"
)

// maxRecommendations 综合建议条数上限
const maxRecommendations = 6

// defaultHistoryLimit History 查询的默认条数
const defaultHistoryLimit = 10

// Engine 模拟编排器
type Engine struct {
	ref        *refdata.Data
	sectors    *sector.Engine
	sentiment  *sentiment.Analyzer
	risk       *risk.Assessor
	predictor  inflation.Predictor
	indicators indicators.Provider
	store      history.Store

	mu  sync.Mutex // 保护 rng
	rng *rand.Rand
}

// NewEngine 创建模拟编排器。seed 为 0 时使用时间种子。
func NewEngine(
	ref *refdata.Data,
	predictor inflation.Predictor,
	provider indicators.Provider,
	store history.Store,
	seed int64,
) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		ref:        ref,
		sectors:    sector.NewEngine(ref),
		sentiment:  sentiment.NewAnalyzer(ref),
		risk:       risk.NewAssessor(),
		predictor:  predictor,
		indicators: provider,
		store:      store,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Simulate 执行一次完整模拟。任何阶段失败则整次失败, 不写入历史。
func (e *Engine) Simulate(ctx context.Context, spec model.PolicySpec) (*model.SimulationRecord, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}
	// 未指定受影响行业时默认全行业, 记录快照也保留默认后的列表
	if len(spec.AffectedSectors) == 0 {
		spec.AffectedSectors = append([]string{}, e.ref.Sectors...)
	}

	logger.Log.Infof("开始模拟: type=%s magnitude=%v duration=%d", spec.Type, spec.Magnitude, spec.DurationMonths)

	// 1. 行业冲击传导
	sectorRes := e.sectors.Analyze(spec.Type, spec.Magnitude, spec.AffectedSectors)

	// 2. 通胀预测: 政策驱动量 + 最新宏观指标
	snapshot := e.indicators.Latest()
	features := driverFeatures(spec.Type, spec.Magnitude)
	features.InterestRate = snapshot.InterestRate
	features.MoneySupplyGrowth = snapshot.MoneySupplyGrowth

	inflationRes, err := e.predictor.Predict(ctx, features)
	if err != nil {
		logger.Log.Errorf("通胀预测失败: %v", err)
		return nil, err
	}

	// 3. 公众情绪模拟
	e.mu.Lock()
	sentimentRes := e.sentiment.Analyze(spec.Type, spec.Magnitude, spec.Description, e.rng)
	e.mu.Unlock()

	// 4. 综合风险评估
	riskRes := e.risk.Assess(inflationRes, sectorRes, sentimentRes, spec.Type, spec.Magnitude)

	recs := crossRecommendations(riskRes, sectorRes, sentimentRes, inflationRes)

	rec := &model.SimulationRecord{
		ID: uuid.NewString(),
		PolicyInfo: model.PolicyInfo{
			Type:            spec.Type,
			Magnitude:       spec.Magnitude,
			DurationMonths:  spec.DurationMonths,
			AffectedSectors: spec.AffectedSectors,
			Description:     spec.Description,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		InflationImpact:   inflationRes,
		SectorImpacts:     sectorRes,
		SentimentAnalysis: sentimentRes,
		RiskAssessment:    riskRes,
		Recommendations:   recs,
		Summary:           buildSummary(inflationRes, sectorRes, sentimentRes, riskRes),
		CreatedAt:         time.Now(),
	}

	if err := e.store.Append(*rec); err != nil {
		logger.Log.Warnf("历史写入失败, 结果仍然返回: %v", err)
	}

	logger.Log.Infof("模拟完成: id=%s risk=%s inflation=%v", rec.ID, riskRes.RiskLevel, inflationRes.PredictedInflationRate)
	return rec, nil
}

// History 返回最近的模拟记录, limit 非正时取默认值
func (e *Engine) History(limit int) ([]model.SimulationRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return e.store.Recent(limit)
}

// validate 校验政策输入
func validate(spec model.PolicySpec) error {
	if spec.Type == "" {
		return fmt.Errorf("%w: policy_type is required", model.ErrInvalidPolicyInput)
	}
	if spec.DurationMonths <= 0 {
		return fmt.Errorf("%w: duration_months must be positive", model.ErrInvalidPolicyInput)
	}
	return nil
}

// driverFeatures 将政策类型与力度映射为通胀模型的驱动特征。
// 非价格类政策按经验比例折算为等效燃油价格冲击, 未知类型不产生驱动。
func driverFeatures(pt model.PolicyType, magnitude float64) inflation.Features {
	switch pt {
	case model.PolicyFuelPrice:
		return inflation.Features{FuelPriceChange: magnitude}
	case model.PolicyTaxReform:
		return inflation.Features{TaxRateChange: magnitude / 10}
	case model.PolicySubsidy:
		return inflation.Features{SubsidyChange: magnitude}
	case model.PolicyMinimumWage:
		return inflation.Features{FuelPriceChange: 0.3 * magnitude}
	case model.PolicyEnvironmental:
		return inflation.Features{FuelPriceChange: 0.4 * magnitude}
	case model.PolicyTariff:
		return inflation.Features{FuelPriceChange: 0.2 * magnitude}
	default:
		return inflation.Features{}
	}
}

// crossRecommendations 在风险建议之上叠加跨模块建议, 截断到上限
func crossRecommendations(
	riskRes model.RiskAssessment,
	sectorRes model.SectorImpactResult,
	sentimentRes model.SentimentResult,
	inflationRes model.InflationResult,
) []string {
	recs := append([]string{}, riskRes.Recommendations...)
	if len(sectorRes.NegativeSectors) > 3 {
		recs = append(recs, fmt.Sprintf("🎯 Focus on supporting %s sectors",
			strings.Join(sectorRes.NegativeSectors[:3], ", ")))
	}
	if sentimentRes.NegativeRatio > 50 {
		recs = append(recs, "📢 Strong public communication campaign needed to address concerns")
	}
	if inflationRes.PredictedInflationRate > 8 {
		recs = append(recs, "💰 Consider complementary monetary policy measures")
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// buildSummary 生成速览与关键发现
func buildSummary(
	inflationRes model.InflationResult,
	sectorRes model.SectorImpactResult,
	sentimentRes model.SentimentResult,
	riskRes model.RiskAssessment,
) model.Summary {
	topN := 3
	if len(sectorRes.MostAffected) < topN {
		topN = len(sectorRes.MostAffected)
	}
	top := make([]string, topN)
	for i := 0; i < topN; i++ {
		top[i] = sectorRes.MostAffected[i].Sector
	}

	return model.Summary{
		QuickStats: model.QuickStats{
			InflationRate:       fmt.Sprintf("%v%%", inflationRes.PredictedInflationRate),
			RiskLevel:           riskRes.RiskLevel,
			PublicSentiment:     sentimentRes.SentimentCategory,
			MostAffectedSectors: top,
		},
		KeyFindings: []string{
			fmt.Sprintf("Predicted inflation: %v%% (baseline: %v%%)",
				inflationRes.PredictedInflationRate, inflationRes.BaselineInflation),
			fmt.Sprintf("Overall risk level: %s", riskRes.RiskLevel),
			fmt.Sprintf("Public sentiment: %s", sentimentRes.SentimentCategory),
			fmt.Sprintf("Most affected: %s", strings.Join(top, ", ")),
		},
	}
}
