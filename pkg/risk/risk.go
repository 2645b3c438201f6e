// Package risk 将通胀、行业冲击与公众情绪汇总为综合风险评估。
package risk

import (
	"math"

	"github.com/iWorld-y/policy_radar/pkg/model"
)

// 综合评分的分项权重, 总和为 1.0
const (
	weightEconomic   = 0.35
	weightSector     = 0.25
	weightSocial     = 0.25
	weightInequality = 0.15
)

// severeImpactThreshold 触发重度冲击加分的行业冲击绝对值阈值
const severeImpactThreshold = 0.5

// Assessor 综合风险评估器, 无状态可并发使用
type Assessor struct{}

// NewAssessor 创建风险评估器
func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess 计算综合风险评估
func (a *Assessor) Assess(
	inflation model.InflationResult,
	sectors model.SectorImpactResult,
	sentiment model.SentimentResult,
	pt model.PolicyType,
	magnitude float64,
) model.RiskAssessment {
	econ := economicRisk(inflation.PredictedInflationRate)
	sector := sectorRisk(sectors)
	social := socialRisk(sentiment)
	inequality := inequalityRisk(pt, magnitude)

	composite := weightEconomic*econ + weightSector*sector +
		weightSocial*social + weightInequality*inequality
	level := riskLevel(composite)

	return model.RiskAssessment{
		CompositeRiskScore: round2(composite),
		RiskLevel:          level,
		Components: model.RiskComponents{
			EconomicRisk:         round2(econ),
			SectorDisruptionRisk: round2(sector),
			SocialUnrestRisk:     round2(social),
			IncomeInequalityRisk: round2(inequality),
		},
		Recommendations: recommendations(level, econ, sector, social, inequality),
	}
}

// economicRisk 通胀率分档映射到风险分
func economicRisk(rate float64) float64 {
	switch {
	case rate < 3:
		return 15
	case rate < 5:
		return 25
	case rate < 7:
		return 40
	case rate < 10:
		return 60
	case rate < 15:
		return 80
	default:
		return 100
	}
}

// sectorRisk 冲击绝对值均值放大, 重度冲击行业额外加分
func sectorRisk(sectors model.SectorImpactResult) float64 {
	if len(sectors.SectorImpacts) == 0 {
		return 0
	}
	var sum float64
	var severe int
	for _, v := range sectors.SectorImpacts {
		sum += math.Abs(v)
		if math.Abs(v) > severeImpactThreshold {
			severe++
		}
	}
	mean := sum / float64(len(sectors.SectorImpacts))
	return math.Min(100, mean*50+float64(severe)*8)
}

// socialRisk 动荡概率与负面占比共同驱动
func socialRisk(sentiment model.SentimentResult) float64 {
	return math.Min(100, sentiment.SocialUnrestProbability*70+sentiment.NegativeRatio*0.3)
}

// inequalityRisk 政策力度乘以各政策类型的累退性系数。
// 最低工资的系数为负: 上调工资降低不平等, 下调才推高风险。
func inequalityRisk(pt model.PolicyType, magnitude float64) float64 {
	var factor float64
	switch pt {
	case model.PolicyFuelPrice:
		factor = 0.7
	case model.PolicyTaxReform:
		factor = 0.5
	case model.PolicySubsidy:
		factor = 0.8
	case model.PolicyMinimumWage:
		factor = -0.6
	case model.PolicyEnvironmental:
		factor = 0.4
	case model.PolicyTariff:
		factor = 0.5
	default:
		factor = 0.5
	}
	return clamp(math.Abs(magnitude)*factor, 0, 100)
}

// riskLevel 分档在未取整的综合分上判定
func riskLevel(composite float64) string {
	switch {
	case composite >= 0 && composite <= 25:
		return model.RiskLow
	case composite >= 26 && composite <= 50:
		return model.RiskModerate
	case composite >= 51 && composite <= 75:
		return model.RiskHigh
	case composite >= 76 && composite <= 100:
		return model.RiskCritical
	default:
		return model.RiskCritical
	}
}

// recommendations 按等级与分项生成建议, 顺序固定
func recommendations(level string, econ, sector, social, inequality float64) []string {
	recs := []string{}
	if level == model.RiskCritical {
		recs = append(recs, "⚠️ CRITICAL RISK: Reconsider this policy or implement in phases")
	} else if level == model.RiskHigh {
		recs = append(recs, "⚠️ HIGH RISK: Implement strong mitigation measures")
	}
	if econ > 60 {
		recs = append(recs, "📊 Implement monetary policy measures to control inflation")
	}
	if sector > 60 {
		recs = append(recs, "🏭 Provide targeted support to heavily affected sectors")
	}
	if social > 60 {
		recs = append(recs, "👥 Enhance public communication and stakeholder engagement")
	}
	if inequality > 60 {
		recs = append(recs, "⚖️ Include compensatory measures for vulnerable groups")
	}
	if level == model.RiskLow || level == model.RiskModerate {
		recs = append(recs, "✅ Risk level acceptable with standard monitoring")
	}
	return recs
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
