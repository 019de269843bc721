package config

import (
	"github.com/MatevzKlancar/phyacc/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Solana    SolanaConfig    `mapstructure:"solana"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Token     TokenConfig     `mapstructure:"token"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// SolanaConfig Solana链配置
type SolanaConfig struct {
	RpcUrl          string  `mapstructure:"rpc_url"`           // RPC节点URL
	TokenMint       string  `mapstructure:"token_mint"`        // 平台代币mint地址
	MinTokenBalance float64 `mapstructure:"min_token_balance"` // 提交项目所需的最小代币余额
}

// StorageConfig 图片存储配置
type StorageConfig struct {
	Dir       string `mapstructure:"dir"`         // 本地存储目录
	BaseUrl   string `mapstructure:"base_url"`    // 公开访问URL前缀
	MaxSizeMB int64  `mapstructure:"max_size_mb"` // 单个文件大小上限（MB）
}

// TokenConfig 代币创建API配置
type TokenConfig struct {
	ApiBase string `mapstructure:"api_base"` // pumpportal API基础URL
	Timeout int    `mapstructure:"timeout"`  // 请求超时（秒）
}

type SchedulerConfig struct {
	FundingInterval   int `mapstructure:"funding_interval"`   // 募资进度刷新间隔（秒）
	ReconcileInterval int `mapstructure:"reconcile_interval"` // 钱包池对账间隔（秒）
	StaleMinutes      int `mapstructure:"stale_minutes"`      // 预留钱包视为滞留的时间（分钟）
	PoolSize          int `mapstructure:"pool_size"`          // 余额刷新协程池大小
	BatchSize         int `mapstructure:"batch_size"`         // 单次RPC查询的地址数量
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/phyacc")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "launchpad")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("solana.rpc_url", "https://api.mainnet-beta.solana.com")
	viper.SetDefault("solana.min_token_balance", 1)
	viper.SetDefault("storage.dir", "uploads")
	viper.SetDefault("storage.base_url", "http://localhost:8080/uploads")
	viper.SetDefault("storage.max_size_mb", 5)
	viper.SetDefault("token.api_base", "https://pumpportal.fun/api")
	viper.SetDefault("token.timeout", 30)
	viper.SetDefault("scheduler.funding_interval", 30)
	viper.SetDefault("scheduler.reconcile_interval", 300)
	viper.SetDefault("scheduler.stale_minutes", 30)
	viper.SetDefault("scheduler.pool_size", 4)
	viper.SetDefault("scheduler.batch_size", 100)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
