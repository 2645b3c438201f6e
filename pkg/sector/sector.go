// Package sector 实现政策冲击在行业间的传导模型：
// 先按政策类型乘数计算直接冲击，再经依赖矩阵做一轮间接传导。
package sector

import (
	"math"
	"sort"

	"github.com/iWorld-y/policy_radar/pkg/model"
	"github.com/iWorld-y/policy_radar/pkg/refdata"
)

// defaultMultiplier 乘数表未覆盖的受影响行业使用的兜底乘数
const defaultMultiplier = -0.3

// 间接冲击的衰减系数与合成系数
const (
	spilloverDamping = 0.5
	indirectWeight   = 0.6
)

// Engine 行业冲击引擎，持有只读参考数据，可并发使用
type Engine struct {
	ref *refdata.Data
}

// NewEngine 创建行业冲击引擎
func NewEngine(ref *refdata.Data) *Engine {
	return &Engine{ref: ref}
}

// multipliers 各政策类型对行业的直接冲击乘数
func multipliers(pt model.PolicyType) map[string]float64 {
	switch pt {
	case model.PolicyFuelPrice:
		return map[string]float64{
			"Transport":     -0.8,
			"Energy":        -0.6,
			"Manufacturing": -0.5,
			"Agriculture":   -0.4,
		}
	case model.PolicyTaxReform:
		return map[string]float64{
			"Manufacturing": -0.4,
			"Services":      -0.3,
			"IT":            -0.3,
		}
	case model.PolicySubsidy:
		return map[string]float64{
			"Agriculture": 0.6,
			"Energy":      0.4,
			"Healthcare":  0.3,
		}
	case model.PolicyMinimumWage:
		return map[string]float64{
			"Services":      -0.5,
			"Manufacturing": -0.4,
			"Agriculture":   -0.3,
		}
	case model.PolicyEnvironmental:
		return map[string]float64{
			"Energy":        -0.6,
			"Manufacturing": -0.5,
			"Transport":     -0.4,
		}
	case model.PolicyTariff:
		return map[string]float64{
			"Manufacturing": 0.4,
			"IT":            -0.3,
			"Services":      -0.2,
		}
	default:
		return nil
	}
}

// Analyze 计算一次政策冲击的全行业传导结果。
// affected 为空时默认全行业受影响；目录之外的行业名被忽略。
func (e *Engine) Analyze(pt model.PolicyType, magnitude float64, affected []string) model.SectorImpactResult {
	catalog := e.ref.Sectors
	if len(affected) == 0 {
		affected = catalog
	}
	affectedSet := make(map[string]struct{}, len(affected))
	for _, s := range affected {
		if e.ref.HasSector(s) {
			affectedSet[s] = struct{}{}
		}
	}

	mults := multipliers(pt)

	// 直接冲击：仅受影响行业有非零值
	direct := make(map[string]float64, len(catalog))
	for _, s := range catalog {
		if _, ok := affectedSet[s]; !ok {
			direct[s] = 0
			continue
		}
		m, ok := mults[s]
		if !ok {
			m = defaultMultiplier
		}
		direct[s] = clamp(m*magnitude/100, -1, 1)
	}

	// 间接冲击：来源行业的直接冲击经依赖矩阵衰减后传导到目标行业
	total := make(map[string]float64, len(catalog))
	for _, s := range catalog {
		var indirect float64
		for _, t := range catalog {
			if t == s {
				continue
			}
			indirect += e.ref.Interdependencies[t][s] * direct[t] * spilloverDamping
		}
		total[s] = clamp(direct[s]+indirectWeight*indirect, -1, 1)
	}

	// 按 |冲击| 降序取前 5；并列按行业目录顺序
	ranked := make([]model.SectorImpactEntry, 0, len(catalog))
	for _, s := range catalog {
		ranked = append(ranked, model.SectorImpactEntry{Sector: s, Impact: round3(total[s])})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].Impact) > math.Abs(ranked[j].Impact)
	})
	topN := 5
	if len(ranked) < topN {
		topN = len(ranked)
	}
	most := make([]model.SectorImpactEntry, topN)
	copy(most, ranked[:topN])

	var overall float64
	positive := []string{}
	negative := []string{}
	impacts := make(map[string]float64, len(catalog))
	for _, s := range catalog {
		overall += total[s] * e.ref.Weights[s]
		impacts[s] = round3(total[s])
		if total[s] > 0.1 {
			positive = append(positive, s)
		} else if total[s] < -0.1 {
			negative = append(negative, s)
		}
	}

	return model.SectorImpactResult{
		SectorImpacts:         impacts,
		MostAffected:          most,
		OverallEconomicImpact: round3(overall),
		PositiveSectors:       positive,
		NegativeSectors:       negative,
	}
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

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
