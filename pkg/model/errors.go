package model

import "errors"

// 管线错误类别。调用方用 errors.Is 判断，具体上下文由 fmt.Errorf("%w") 包装补充。
var (
	// ErrInvalidPolicyInput 政策输入非法：缺少必填字段、时长越界、对比场景名为空等
	ErrInvalidPolicyInput = errors.New("invalid policy input")

	// ErrInsufficientScenarios 对比分析的场景数不足 2 个
	ErrInsufficientScenarios = errors.New("at least 2 scenarios required for comparison")

	// ErrUpstreamPrediction 通胀预测协作方不可用或调用失败；不重试，整次模拟失败
	ErrUpstreamPrediction = errors.New("upstream inflation prediction failed")

	// ErrReferenceData 静态参考数据加载或校验失败；仅在初始化阶段出现
	ErrReferenceData = errors.New("reference data missing or invalid")
)
