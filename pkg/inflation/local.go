package inflation

import (
	"context"
	"math"

	"github.com/iWorld-y/policy_radar/pkg/model"
)

// 本地线性模型系数。截距与利率/货币供应项组合后,
// 在默认宏观环境(利率 6.0, 货币增速 8.0)下接近基准通胀。
const (
	intercept       = 2.75
	coefFuel        = 0.045
	coefTax         = 0.30
	coefSubsidy     = -0.02
	coefInterest    = -0.45
	coefMoneySupply = 0.68
)

// LocalPredictor 进程内线性通胀模型, 无外部依赖, 结果确定
type LocalPredictor struct{}

// NewLocalPredictor 创建本地预测器
func NewLocalPredictor() *LocalPredictor {
	return &LocalPredictor{}
}

// Predict 线性组合特征得到预测值, 截断到 [0,30]
func (p *LocalPredictor) Predict(_ context.Context, f Features) (model.InflationResult, error) {
	rate := intercept +
		coefFuel*f.FuelPriceChange +
		coefTax*f.TaxRateChange +
		coefSubsidy*f.SubsidyChange +
		coefInterest*f.InterestRate +
		coefMoneySupply*f.MoneySupplyGrowth
	if rate < 0 {
		rate = 0
	}
	if rate > 30 {
		rate = 30
	}

	// 置信度随政策冲击幅度下降
	confidence := 95 - 0.25*math.Abs(f.FuelPriceChange) -
		0.8*math.Abs(f.TaxRateChange) - 0.1*math.Abs(f.SubsidyChange)
	if confidence < 40 {
		confidence = 40
	}
	if confidence > 95 {
		confidence = 95
	}

	return model.InflationResult{
		PredictedInflationRate: round2(rate),
		Confidence:             round2(confidence),
		BaselineInflation:      BaselineInflation,
		ChangeFromBaseline:     round2(rate - BaselineInflation),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
