package model

import "time"

// PolicyType 政策类型（封闭枚举，未知取值统一走默认分支）
type PolicyType string

const (
	PolicyFuelPrice     PolicyType = "Fuel Price Change"
	PolicyTaxReform     PolicyType = "Tax Reform"
	PolicySubsidy       PolicyType = "Subsidy Change"
	PolicyMinimumWage   PolicyType = "Minimum Wage Change"
	PolicyEnvironmental PolicyType = "Environmental Regulation"
	PolicyTariff        PolicyType = "Import/Export Tariff"
)

// AllPolicyTypes 返回支持的政策类型列表（固定顺序）
func AllPolicyTypes() []PolicyType {
	return []PolicyType{
		PolicyFuelPrice,
		PolicyTaxReform,
		PolicySubsidy,
		PolicyMinimumWage,
		PolicyEnvironmental,
		PolicyTariff,
	}
}

// Known 判断政策类型是否在封闭枚举内
func (p PolicyType) Known() bool {
	switch p {
	case PolicyFuelPrice, PolicyTaxReform, PolicySubsidy,
		PolicyMinimumWage, PolicyEnvironmental, PolicyTariff:
		return true
	default:
		return false
	}
}

// PolicySpec 一次模拟的政策输入，模拟开始后不可变
type PolicySpec struct {
	Type            PolicyType `json:"policy_type"`
	Magnitude       float64    `json:"magnitude"`       // 有符号百分比，通常 -100..100
	DurationMonths  int        `json:"duration_months"` // 必须为正
	AffectedSectors []string   `json:"affected_sectors,omitempty"`
	Description     string     `json:"description,omitempty"`
}

// Scenario 对比分析中的一个命名场景
type Scenario struct {
	Name            string     `json:"name"`
	Type            PolicyType `json:"policy_type"`
	Magnitude       float64    `json:"magnitude"`
	DurationMonths  int        `json:"duration_months"`
	AffectedSectors []string   `json:"affected_sectors,omitempty"`
	Description     string     `json:"description,omitempty"`
}

// Spec 转换为政策输入
func (s Scenario) Spec() PolicySpec {
	return PolicySpec{
		Type:            s.Type,
		Magnitude:       s.Magnitude,
		DurationMonths:  s.DurationMonths,
		AffectedSectors: s.AffectedSectors,
		Description:     s.Description,
	}
}

// SectorImpactEntry 单个行业的冲击值
type SectorImpactEntry struct {
	Sector string  `json:"sector"`
	Impact float64 `json:"impact"`
}

// SectorImpactResult 行业冲击传导结果
type SectorImpactResult struct {
	SectorImpacts         map[string]float64  `json:"sector_impacts"`
	MostAffected          []SectorImpactEntry `json:"most_affected"`
	OverallEconomicImpact float64             `json:"overall_economic_impact"`
	PositiveSectors       []string            `json:"positive_sectors"`
	NegativeSectors       []string            `json:"negative_sectors"`
}

// SentimentResult 公众情绪分析结果
type SentimentResult struct {
	OverallSentimentScore   float64  `json:"overall_sentiment_score"`
	PositiveRatio           float64  `json:"positive_ratio"`
	NegativeRatio           float64  `json:"negative_ratio"`
	NeutralRatio            float64  `json:"neutral_ratio"`
	SampleCount             int      `json:"sample_count"`
	SentimentCategory       string   `json:"sentiment_category"`
	KeyConcerns             []string `json:"key_concerns"`
	SocialUnrestProbability float64  `json:"social_unrest_probability"`
	SampleReactions         []string `json:"sample_reactions"`
	Summary                 string   `json:"summary"`
}

// 情绪分类
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// InflationResult 通胀预测结果（外部协作方原样返回）
type InflationResult struct {
	PredictedInflationRate float64 `json:"predicted_inflation_rate"`
	Confidence             float64 `json:"confidence"`
	BaselineInflation      float64 `json:"baseline_inflation"`
	ChangeFromBaseline     float64 `json:"change_from_baseline"`
}

// RiskComponents 四个风险分项，均在 [0,100]
type RiskComponents struct {
	EconomicRisk         float64 `json:"economic_risk"`
	SectorDisruptionRisk float64 `json:"sector_disruption_risk"`
	SocialUnrestRisk     float64 `json:"social_unrest_risk"`
	IncomeInequalityRisk float64 `json:"income_inequality_risk"`
}

// 风险等级
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// RiskAssessment 综合风险评估结果
type RiskAssessment struct {
	CompositeRiskScore float64        `json:"composite_risk_score"`
	RiskLevel          string         `json:"risk_level"`
	Components         RiskComponents `json:"components"`
	Recommendations    []string       `json:"recommendations"`
}

// PolicyInfo 模拟记录中的政策快照
type PolicyInfo struct {
	Type            PolicyType `json:"type"`
	Magnitude       float64    `json:"magnitude"`
	DurationMonths  int        `json:"duration_months"`
	AffectedSectors []string   `json:"affected_sectors"`
	Description     string     `json:"description"`
	Timestamp       string     `json:"timestamp"`
}

// QuickStats 摘要速览
type QuickStats struct {
	InflationRate       string   `json:"inflation_rate"`
	RiskLevel           string   `json:"risk_level"`
	PublicSentiment     string   `json:"public_sentiment"`
	MostAffectedSectors []string `json:"most_affected_sectors"`
}

// Summary 模拟摘要
type Summary struct {
	QuickStats  QuickStats `json:"quick_stats"`
	KeyFindings []string   `json:"key_findings"`
}

// SimulationRecord 一次完整模拟的结果记录，创建后不可变
type SimulationRecord struct {
	ID                string             `json:"id"`
	PolicyInfo        PolicyInfo         `json:"policy_info"`
	InflationImpact   InflationResult    `json:"inflation_impact"`
	SectorImpacts     SectorImpactResult `json:"sector_impacts"`
	SentimentAnalysis SentimentResult    `json:"sentiment_analysis"`
	RiskAssessment    RiskAssessment     `json:"risk_assessment"`
	Recommendations   []string           `json:"recommendations"`
	Summary           Summary            `json:"summary"`
	CreatedAt         time.Time          `json:"created_at"`
}

// RankedScenario 带排名的场景模拟结果（rank 1 为风险最低）
type RankedScenario struct {
	Rank         int               `json:"rank"`
	ScenarioName string            `json:"scenario_name"`
	Simulation   *SimulationRecord `json:"simulation"`
}

// ComparisonRow 对比表中的一行
type ComparisonRow struct {
	Rank                 int     `json:"rank"`
	Name                 string  `json:"name"`
	InflationRate        float64 `json:"inflation_rate"`
	RiskScore            float64 `json:"risk_score"`
	RiskLevel            string  `json:"risk_level"`
	Sentiment            string  `json:"sentiment"`
	NegativeSentimentPct float64 `json:"negative_sentiment_pct"`
}

// ComparisonResult 多场景对比结果
type ComparisonResult struct {
	Scenarios       []RankedScenario `json:"scenarios"`
	ComparisonTable []ComparisonRow  `json:"comparison_table"`
	BestScenario    string           `json:"best_scenario"`
	Recommendation  string           `json:"recommendation"`
}
