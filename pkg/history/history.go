// Package history 保存模拟结果历史, 供回溯查询与对比分析复用。
package history

import (
	"sync"

	"github.com/iWorld-y/policy_radar/pkg/model"
)

// Store 模拟历史存储
type Store interface {
	// Append 追加一条成功的模拟记录
	Append(rec model.SimulationRecord) error
	// Recent 返回最近 limit 条记录, 按时间升序
	Recent(limit int) ([]model.SimulationRecord, error)
}

// MemoryStore 有界内存存储, 超出容量时淘汰最旧记录
type MemoryStore struct {
	mu       sync.Mutex
	records  []model.SimulationRecord
	capacity int
}

// NewMemoryStore 创建内存存储, capacity 非正时取 100
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 100
	}
	return &MemoryStore{capacity: capacity}
}

// Append 追加记录, 满容量时丢弃最旧一条
func (s *MemoryStore) Append(rec model.SimulationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	if len(s.records) > s.capacity {
		s.records = s.records[len(s.records)-s.capacity:]
	}
	return nil
}

// Recent 返回最近 limit 条的副本, limit 非正时返回空
func (s *MemoryStore) Recent(limit int) ([]model.SimulationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		return []model.SimulationRecord{}, nil
	}
	start := len(s.records) - limit
	if start < 0 {
		start = 0
	}
	out := make([]model.SimulationRecord, len(s.records)-start)
	copy(out, s.records[start:])
	return out, nil
}
