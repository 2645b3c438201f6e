// Package indicators 提供宏观经济指标快照, 作为通胀预测的环境输入。
package indicators

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/policy_radar/pkg/model"
)

//go:embed data/economic_indicators.yaml
var defaults embed.FS

// Snapshot 一期宏观指标快照
type Snapshot struct {
	Period                  string  `yaml:"period" json:"period"`
	FuelPriceIndex          float64 `yaml:"fuel_price_index" json:"fuel_price_index"`
	TaxRate                 float64 `yaml:"tax_rate" json:"tax_rate"`
	SubsidyAmountBillions   float64 `yaml:"subsidy_amount_billions" json:"subsidy_amount_billions"`
	InterestRate            float64 `yaml:"interest_rate" json:"interest_rate"`
	MoneySupplyGrowth       float64 `yaml:"money_supply_growth" json:"money_supply_growth"`
	GDPGrowth               float64 `yaml:"gdp_growth" json:"gdp_growth"`
	InflationRate           float64 `yaml:"inflation_rate" json:"inflation_rate"`
	UnemploymentRate        float64 `yaml:"unemployment_rate" json:"unemployment_rate"`
	ConsumerConfidenceIndex float64 `yaml:"consumer_confidence_index" json:"consumer_confidence_index"`
}

// Provider 指标快照来源
type Provider interface {
	// Latest 返回最新一期快照
	Latest() Snapshot
	// History 返回全部历史快照, 按时间升序
	History() []Snapshot
}

type indicatorFile struct {
	Indicators []Snapshot `yaml:"indicators"`
}

// YAMLProvider 由 YAML 历史文件驱动的指标来源
type YAMLProvider struct {
	history []Snapshot
}

// NewYAMLProvider 加载指标历史。dir 为空时使用内置默认历史。
// 加载或解析失败包装为 model.ErrReferenceData。
func NewYAMLProvider(dir string) (*YAMLProvider, error) {
	var raw []byte
	var err error
	if dir == "" {
		raw, err = defaults.ReadFile("data/economic_indicators.yaml")
	} else {
		raw, err = os.ReadFile(filepath.Join(dir, "economic_indicators.yaml"))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrReferenceData, err)
	}

	var f indicatorFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: parse economic_indicators.yaml: %v", model.ErrReferenceData, err)
	}
	if len(f.Indicators) == 0 {
		return nil, fmt.Errorf("%w: indicator history is empty", model.ErrReferenceData)
	}
	return &YAMLProvider{history: f.Indicators}, nil
}

// Latest 返回历史末行
func (p *YAMLProvider) Latest() Snapshot {
	return p.history[len(p.history)-1]
}

// History 返回历史快照副本
func (p *YAMLProvider) History() []Snapshot {
	out := make([]Snapshot, len(p.history))
	copy(out, p.history)
	return out
}
