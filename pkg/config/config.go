package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 项目配置结构体
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Data      DataConfig      `yaml:"data"`
	History   HistoryConfig   `yaml:"history"`
	DB        DBConfig        `yaml:"db"`
	Inflation InflationConfig `yaml:"inflation"`
	Seed      int64           `yaml:"seed"` // 情绪采样随机种子，0 表示使用时间种子
}

// ServerConfig HTTP 服务相关配置
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DataConfig 静态参考数据相关配置
type DataConfig struct {
	Dir string `yaml:"dir"` // 参考数据目录，空则使用内置默认数据
}

// HistoryConfig 模拟历史存储相关配置
type HistoryConfig struct {
	Backend  string `yaml:"backend"`  // memory 或 postgres
	Capacity int    `yaml:"capacity"` // memory 后端的容量上限
}

// DBConfig 数据库相关配置
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// InflationConfig 通胀预测器相关配置
type InflationConfig struct {
	Provider string `yaml:"provider"` // local 或 remote
	BaseURL  string `yaml:"base_url"` // remote 服务地址
	Timeout  int    `yaml:"timeout"`  // remote 请求超时（秒）
	RPM      int    `yaml:"rpm"`      // remote 每分钟请求上限
	QPS      int    `yaml:"qps"`      // remote 突发请求上限
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults 填充缺省值
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.History.Backend == "" {
		c.History.Backend = "memory"
	}
	if c.History.Capacity <= 0 {
		c.History.Capacity = 100
	}
	if c.Inflation.Provider == "" {
		c.Inflation.Provider = "local"
	}
	if c.Inflation.Timeout <= 0 {
		c.Inflation.Timeout = 30
	}
	if c.Inflation.RPM <= 0 {
		c.Inflation.RPM = 60
	}
	if c.Inflation.QPS <= 0 {
		c.Inflation.QPS = 2
	}
}
