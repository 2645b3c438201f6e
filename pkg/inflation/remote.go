package inflation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/iWorld-y/policy_radar/pkg/logger"
	"github.com/iWorld-y/policy_radar/pkg/model"
)

// RemotePredictor 调用远程预测服务的客户端, 带限流与 429 重试
type RemotePredictor struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewRemotePredictor 创建远程预测器。rpm 为每分钟请求上限, burst 为突发额度。
func NewRemotePredictor(baseURL string, timeout time.Duration, rpm, burst int) *RemotePredictor {
	if rpm <= 0 {
		rpm = 60
	}
	if burst <= 0 {
		burst = 1
	}
	return &RemotePredictor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst),
	}
}

type predictRequest struct {
	Features Features `json:"features"`
}

// Predict 调用远程 /predict 接口。429 指数退避重试, 其余失败直接返回。
// 所有失败都包装为 model.ErrUpstreamPrediction。
func (p *RemotePredictor) Predict(ctx context.Context, f Features) (model.InflationResult, error) {
	payload, err := json.Marshal(predictRequest{Features: f})
	if err != nil {
		return model.InflationResult{}, fmt.Errorf("%w: marshal request: %v", model.ErrUpstreamPrediction, err)
	}

	maxRetries := 3
	baseDelay := 2 * time.Second
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if err := p.limiter.Wait(ctx); err != nil {
			return model.InflationResult{}, fmt.Errorf("%w: %v", model.ErrUpstreamPrediction, err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewReader(payload))
		if err != nil {
			return model.InflationResult{}, fmt.Errorf("%w: create request: %v", model.ErrUpstreamPrediction, err)
		}
		req.Header.Add("Content-Type", "application/json")

		res, err := p.client.Do(req)
		if err != nil {
			return model.InflationResult{}, fmt.Errorf("%w: request failed: %v", model.ErrUpstreamPrediction, err)
		}

		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		if err != nil {
			return model.InflationResult{}, fmt.Errorf("%w: read body: %v", model.ErrUpstreamPrediction, err)
		}

		if res.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("%w: prediction api error (status 429): %s", model.ErrUpstreamPrediction, string(body))
			if i < maxRetries {
				delay := baseDelay * time.Duration(1<<i)
				logger.Log.Warnf("触发 429 限流，等待 %v 后重试 (%d/%d)...", delay, i+1, maxRetries)
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return model.InflationResult{}, fmt.Errorf("%w: %v", model.ErrUpstreamPrediction, ctx.Err())
				}
				continue
			}
			return model.InflationResult{}, lastErr
		}
		if res.StatusCode != http.StatusOK {
			return model.InflationResult{}, fmt.Errorf("%w: prediction api error (status %d): %s",
				model.ErrUpstreamPrediction, res.StatusCode, string(body))
		}

		var result model.InflationResult
		if err := json.Unmarshal(body, &result); err != nil {
			return model.InflationResult{}, fmt.Errorf("%w: unmarshal response: %v", model.ErrUpstreamPrediction, err)
		}
		return result, nil
	}
	return model.InflationResult{}, lastErr
}
