package main

import (
	"log"

	"github.com/iWorld-y/policy_radar/pkg/api"
	"github.com/iWorld-y/policy_radar/pkg/compare"
	"github.com/iWorld-y/policy_radar/pkg/config"
	"github.com/iWorld-y/policy_radar/pkg/engine"
	"github.com/iWorld-y/policy_radar/pkg/history"
	"github.com/iWorld-y/policy_radar/pkg/indicators"
	"github.com/iWorld-y/policy_radar/pkg/inflation"
	"github.com/iWorld-y/policy_radar/pkg/logger"
	"github.com/iWorld-y/policy_radar/pkg/refdata"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}

	// 2. 初始化日志
	if err = logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Info("启动政策模拟服务...")

	// 3. 加载静态参考数据
	ref, err := refdata.Load(cfg.Data.Dir)
	if err != nil {
		logger.Log.Fatalf("参考数据加载失败: %v", err)
	}
	logger.Log.Infof("参考数据已加载: %d 个行业, %d 种政策模板", len(ref.Sectors), len(ref.PolicySentiments))

	// 4. 初始化宏观指标来源
	provider, err := indicators.NewYAMLProvider(cfg.Data.Dir)
	if err != nil {
		logger.Log.Fatalf("宏观指标加载失败: %v", err)
	}
	logger.Log.Infof("宏观指标已加载: 最新期 %s", provider.Latest().Period)

	// 5. 初始化通胀预测器
	predictor, err := inflation.NewPredictor(cfg)
	if err != nil {
		logger.Log.Fatalf("通胀预测器初始化失败: %v", err)
	}
	logger.Log.Infof("通胀预测器: %s", cfg.Inflation.Provider)

	// 6. 初始化历史存储
	var store history.Store
	switch cfg.History.Backend {
	case "postgres":
		pg, err := history.NewPostgresStore(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
		if err != nil {
			logger.Log.Fatalf("数据库存储初始化失败: %v", err)
		}
		defer pg.Close()
		store = pg
	case "memory":
		store = history.NewMemoryStore(cfg.History.Capacity)
	default:
		logger.Log.Fatalf("不支持的历史存储类型: %s", cfg.History.Backend)
	}
	logger.Log.Infof("历史存储: %s", cfg.History.Backend)

	// 7. 组装模拟引擎与对比器
	eng := engine.NewEngine(ref, predictor, provider, store, cfg.Seed)
	comparator := compare.NewComparator(eng)

	// 8. 启动 HTTP 服务
	handler := api.NewHandler(eng, comparator, provider, ref)
	router := api.Router(handler)
	logger.Log.Infof("HTTP 服务监听: %s", cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		logger.Log.Fatalf("HTTP 服务退出: %v", err)
	}
}
