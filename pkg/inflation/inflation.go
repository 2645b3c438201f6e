// Package inflation 提供通胀预测能力: 内置线性模型或远程预测服务。
package inflation

import (
	"context"

	"github.com/iWorld-y/policy_radar/pkg/model"
)

// BaselineInflation 无政策干预时的基准通胀率
const BaselineInflation = 5.5

// Features 通胀预测的输入特征, 由政策驱动量与宏观指标组合而成
type Features struct {
	FuelPriceChange   float64 `json:"fuel_price_change"`
	TaxRateChange     float64 `json:"tax_rate_change"`
	SubsidyChange     float64 `json:"subsidy_change"`
	InterestRate      float64 `json:"interest_rate"`
	MoneySupplyGrowth float64 `json:"money_supply_growth"`
}

// Predictor 通胀预测器
type Predictor interface {
	Predict(ctx context.Context, f Features) (model.InflationResult, error)
}
