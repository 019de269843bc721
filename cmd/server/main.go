package main

import (
	"github.com/MatevzKlancar/phyacc/internal/config"
	"github.com/MatevzKlancar/phyacc/internal/database"
	"github.com/MatevzKlancar/phyacc/internal/logger"
	"github.com/MatevzKlancar/phyacc/internal/router"
	"github.com/MatevzKlancar/phyacc/internal/scheduler"
	"github.com/MatevzKlancar/phyacc/internal/solana"
	"github.com/MatevzKlancar/phyacc/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	level := logger.ParseLogLevel(cfg.Log.Level)
	if cfg.Log.Output == "file" {
		fileLogger, err := logger.NewWithFileRotation(level, cfg.Log.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(fileLogger)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化Solana客户端
	solClient, err := solana.Init(cfg.Solana)
	if err != nil {
		logger.Fatal("Failed to initialize solana client: %v", err)
	}

	// 初始化图片存储
	store, err := storage.NewService(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage: %v", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, solClient, store, cfg)

	// 启动定时任务
	manager := scheduler.Start(db, solClient, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
