package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/iWorld-y/policy_radar/pkg/model"
)

// PostgresStore 持久化历史存储, 记录整体以 JSONB 落库
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore 连接数据库并确保表存在
func NewPostgresStore(host string, port int, user, password, dbname string) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS simulation_records (
		id TEXT PRIMARY KEY,
		record JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("初始化表失败: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Append 追加一条模拟记录
func (s *PostgresStore) Append(rec model.SimulationRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("序列化记录失败: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO simulation_records (id, record, created_at) VALUES ($1, $2, $3)`,
		rec.ID, payload, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("写入记录失败: %w", err)
	}
	return nil
}

// Recent 返回最近 limit 条记录, 按时间升序
func (s *PostgresStore) Recent(limit int) ([]model.SimulationRecord, error) {
	if limit <= 0 {
		return []model.SimulationRecord{}, nil
	}
	rows, err := s.db.Query(
		`SELECT record FROM simulation_records ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("查询记录失败: %w", err)
	}
	defer rows.Close()

	records := []model.SimulationRecord{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("读取记录失败: %w", err)
		}
		var rec model.SimulationRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("反序列化记录失败: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历记录失败: %w", err)
	}

	// 查询按时间降序取最近 N 条, 返回前翻转为升序
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// Close 关闭数据库连接
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
