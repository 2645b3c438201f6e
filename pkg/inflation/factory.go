package inflation

import (
	"fmt"
	"time"

	"github.com/iWorld-y/policy_radar/pkg/config"
)

// NewPredictor 根据配置选择预测器实现
func NewPredictor(cfg *config.Config) (Predictor, error) {
	switch cfg.Inflation.Provider {
	case "", "local":
		return NewLocalPredictor(), nil
	case "remote":
		if cfg.Inflation.BaseURL == "" {
			return nil, fmt.Errorf("remote 预测器需要配置 base_url")
		}
		timeout := time.Duration(cfg.Inflation.Timeout) * time.Second
		return NewRemotePredictor(cfg.Inflation.BaseURL, timeout, cfg.Inflation.RPM, cfg.Inflation.QPS), nil
	default:
		return nil, fmt.Errorf("不支持的通胀预测器类型: %s", cfg.Inflation.Provider)
	}
}
