package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/iWorld-y/policy_radar/pkg/model"
)

func record(id string) model.SimulationRecord {
	return model.SimulationRecord{ID: id, CreatedAt: time.Now()}
}

func TestMemoryStoreAppendAndRecent(t *testing.T) {
	s := NewMemoryStore(10)
	for i := 0; i < 3; i++ {
		if err := s.Append(record(fmt.Sprintf("r%d", i))); err != nil {
			t.Fatal(err)
		}
	}
	recent, err := s.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("应返回 2 条, 实际 %d", len(recent))
	}
	// 升序: 倒数第二条在前
	if recent[0].ID != "r1" || recent[1].ID != "r2" {
		t.Errorf("顺序错误: %s, %s", recent[0].ID, recent[1].ID)
	}
}

func TestMemoryStoreEviction(t *testing.T) {
	s := NewMemoryStore(3)
	for i := 0; i < 5; i++ {
		s.Append(record(fmt.Sprintf("r%d", i)))
	}
	recent, _ := s.Recent(10)
	if len(recent) != 3 {
		t.Fatalf("容量 3 应只保留 3 条, 实际 %d", len(recent))
	}
	if recent[0].ID != "r2" {
		t.Errorf("最旧记录应被淘汰, 首条 = %s", recent[0].ID)
	}
}

func TestMemoryStoreRecentLimits(t *testing.T) {
	s := NewMemoryStore(10)
	s.Append(record("only"))
	if recent, _ := s.Recent(0); len(recent) != 0 {
		t.Errorf("limit=0 应返回空, 实际 %d 条", len(recent))
	}
	if recent, _ := s.Recent(100); len(recent) != 1 {
		t.Errorf("limit 超过存量应返回全部, 实际 %d 条", len(recent))
	}
}

func TestMemoryStoreConcurrentAppend(t *testing.T) {
	s := NewMemoryStore(1000)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				s.Append(record(fmt.Sprintf("g%d-%d", n, j)))
			}
		}(i)
	}
	wg.Wait()
	recent, _ := s.Recent(1000)
	if len(recent) != 500 {
		t.Errorf("并发写入后应有 500 条, 实际 %d", len(recent))
	}
}

func TestMemoryStoreRecentReturnsCopy(t *testing.T) {
	s := NewMemoryStore(10)
	s.Append(record("a"))
	recent, _ := s.Recent(1)
	recent[0].ID = "mutated"
	again, _ := s.Recent(1)
	if again[0].ID != "a" {
		t.Error("Recent 应返回副本")
	}
}

func TestMemoryStoreDefaultCapacity(t *testing.T) {
	s := NewMemoryStore(0)
	if s.capacity != 100 {
		t.Errorf("默认容量应为 100, 实际 %d", s.capacity)
	}
}
