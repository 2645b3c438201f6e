package inflation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iWorld-y/policy_radar/pkg/model"
)

func TestLocalPredictorBaselineEnvironment(t *testing.T) {
	p := NewLocalPredictor()
	// 无政策干预, 默认宏观环境
	res, err := p.Predict(context.Background(), Features{InterestRate: 6.0, MoneySupplyGrowth: 8.0})
	if err != nil {
		t.Fatalf("本地预测失败: %v", err)
	}
	if res.PredictedInflationRate != 5.49 {
		t.Errorf("预测通胀 = %v, 期望 5.49", res.PredictedInflationRate)
	}
	if res.BaselineInflation != 5.5 {
		t.Errorf("基准通胀 = %v, 期望 5.5", res.BaselineInflation)
	}
	if res.ChangeFromBaseline != -0.01 {
		t.Errorf("偏离基准 = %v, 期望 -0.01", res.ChangeFromBaseline)
	}
	if res.Confidence != 95 {
		t.Errorf("置信度 = %v, 期望 95", res.Confidence)
	}
}

func TestLocalPredictorDeterministic(t *testing.T) {
	p := NewLocalPredictor()
	f := Features{FuelPriceChange: 20, TaxRateChange: 2, InterestRate: 6.0, MoneySupplyGrowth: 8.0}
	r1, _ := p.Predict(context.Background(), f)
	r2, _ := p.Predict(context.Background(), f)
	if r1 != r2 {
		t.Errorf("相同特征应得相同结果: %+v vs %+v", r1, r2)
	}
	if r1.PredictedInflationRate <= 5.49 {
		t.Errorf("燃油与税率上调应推高通胀, 实际 %v", r1.PredictedInflationRate)
	}
}

func TestLocalPredictorClampsRate(t *testing.T) {
	p := NewLocalPredictor()
	high, _ := p.Predict(context.Background(), Features{FuelPriceChange: 1000, MoneySupplyGrowth: 50})
	if high.PredictedInflationRate != 30 {
		t.Errorf("上界应截断到 30, 实际 %v", high.PredictedInflationRate)
	}
	low, _ := p.Predict(context.Background(), Features{InterestRate: 100})
	if low.PredictedInflationRate != 0 {
		t.Errorf("下界应截断到 0, 实际 %v", low.PredictedInflationRate)
	}
}

func TestLocalPredictorConfidenceFloor(t *testing.T) {
	p := NewLocalPredictor()
	res, _ := p.Predict(context.Background(), Features{FuelPriceChange: 500})
	if res.Confidence != 40 {
		t.Errorf("置信度下限应为 40, 实际 %v", res.Confidence)
	}
}

func TestRemotePredictorSuccess(t *testing.T) {
	want := model.InflationResult{
		PredictedInflationRate: 7.2,
		Confidence:             88,
		BaselineInflation:      5.5,
		ChangeFromBaseline:     1.7,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" || r.Method != http.MethodPost {
			t.Errorf("意外请求: %s %s", r.Method, r.URL.Path)
		}
		var req predictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("请求体解析失败: %v", err)
		}
		if req.Features.FuelPriceChange != 20 {
			t.Errorf("特征透传错误: %+v", req.Features)
		}
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	p := NewRemotePredictor(srv.URL, 5*time.Second, 6000, 10)
	got, err := p.Predict(context.Background(), Features{FuelPriceChange: 20})
	if err != nil {
		t.Fatalf("远程预测失败: %v", err)
	}
	if got != want {
		t.Errorf("结果 = %+v, 期望 %+v", got, want)
	}
}

func TestRemotePredictorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewRemotePredictor(srv.URL, 5*time.Second, 6000, 10)
	_, err := p.Predict(context.Background(), Features{})
	if !errors.Is(err, model.ErrUpstreamPrediction) {
		t.Fatalf("500 应返回 ErrUpstreamPrediction, 实际 %v", err)
	}
}

func TestRemotePredictorRetriesOn429(t *testing.T) {
	if testing.Short() {
		t.Skip("重试退避耗时, short 模式跳过")
	}
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(model.InflationResult{PredictedInflationRate: 6.0, BaselineInflation: 5.5})
	}))
	defer srv.Close()

	p := NewRemotePredictor(srv.URL, 5*time.Second, 6000, 10)
	res, err := p.Predict(context.Background(), Features{})
	if err != nil {
		t.Fatalf("重试后应成功: %v", err)
	}
	if calls != 2 {
		t.Errorf("应调用 2 次, 实际 %d", calls)
	}
	if res.PredictedInflationRate != 6.0 {
		t.Errorf("结果 = %v, 期望 6.0", res.PredictedInflationRate)
	}
}
