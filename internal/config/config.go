package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	// 文档解析相关配置
	Parser ParserConfig `yaml:"parser"`

	// Tika服务器配置（PDF回退提取与OCR）
	Tika TikaConfig `yaml:"tika"`

	// Aliyun Embedding配置
	Aliyun struct {
		APIKey    string          `yaml:"api_key"`
		Embedding EmbeddingConfig `yaml:"embedding"`
	} `yaml:"aliyun"`

	// OpenAI Embedding配置
	OpenAI struct {
		APIKey    string          `yaml:"api_key"`
		Embedding EmbeddingConfig `yaml:"embedding"`
	} `yaml:"openai"`

	// 分块配置
	Chunking ChunkingConfig `yaml:"chunking"`

	// ATS评分权重配置
	Scoring ScoringConfig `yaml:"scoring"`

	// MinIO配置（向量索引持久化的对象存储后端）
	MinIO MinIOConfig `yaml:"minio"`

	// 日志配置
	Logger LoggerConfig `yaml:"logger"`
}

// ParserConfig 文档解析配置
type ParserConfig struct {
	// OCRMinCharThreshold PDF直接提取字符数低于该值时视为扫描件并改走OCR
	OCRMinCharThreshold int `yaml:"ocr_min_char_threshold"`
}

// TikaConfig Tika服务器配置结构
type TikaConfig struct {
	ServerURL string `yaml:"server_url"`      // Tika服务器URL，为空表示未部署
	Timeout   int    `yaml:"timeout_seconds"` // 超时时间(秒)
}

// EmbeddingConfig Embedding模型配置
type EmbeddingConfig struct {
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
	BaseURL    string `yaml:"base_url"`
}

// ChunkingConfig 文本分块配置
type ChunkingConfig struct {
	MaxChars int `yaml:"max_chars"` // 单个分块最大字符数
	Overlap  int `yaml:"overlap"`   // 相邻分块重叠字符数
}

// ScoringConfig ATS评分权重配置
// 默认值沿用经验常数：coverage 0.7 / density 0.3，density放大5倍并封顶1.0
type ScoringConfig struct {
	CoverageWeight float64 `yaml:"coverage_weight"`
	DensityWeight  float64 `yaml:"density_weight"`
	DensityBoost   float64 `yaml:"density_boost"`
	DensityCap     float64 `yaml:"density_cap"`
}

// MinIOConfig MinIO对象存储配置
type MinIOConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl"`
	Bucket          string `yaml:"bucket"`
	Location        string `yaml:"location"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json 或 pretty
	TimeFormat   string `yaml:"time_format"`   // 时间戳格式
	ReportCaller bool   `yaml:"report_caller"` // 是否记录调用位置
}

// DefaultConfig 创建带默认值的配置
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Parser.OCRMinCharThreshold = 40

	cfg.Tika.Timeout = 60

	cfg.Aliyun.Embedding.Model = "text-embedding-v3"
	cfg.Aliyun.Embedding.Dimensions = 1024
	cfg.Aliyun.Embedding.BaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/embeddings"

	cfg.OpenAI.Embedding.Model = "text-embedding-3-small"
	cfg.OpenAI.Embedding.Dimensions = 1536

	cfg.Chunking.MaxChars = 600
	cfg.Chunking.Overlap = 120

	cfg.Scoring.CoverageWeight = 0.7
	cfg.Scoring.DensityWeight = 0.3
	cfg.Scoring.DensityBoost = 5.0
	cfg.Scoring.DensityCap = 1.0

	cfg.MinIO.Bucket = "resume-indexes"

	cfg.Logger.Level = "info"
	cfg.Logger.Format = "json"

	return cfg
}

// LoadConfig 从YAML文件加载配置，环境变量覆盖密钥类字段
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("必须提供配置文件路径")
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 从环境变量覆盖密钥（如果存在）
	if envKey := os.Getenv("ALIYUN_API_KEY"); envKey != "" {
		config.Aliyun.APIKey = envKey
	}
	if envKey := os.Getenv("OPENAI_API_KEY"); envKey != "" {
		config.OpenAI.APIKey = envKey
	}

	applyDefaults(config)

	return config, nil
}

// applyDefaults 补齐YAML中显式写空的字段
func applyDefaults(config *Config) {
	if config.Parser.OCRMinCharThreshold <= 0 {
		config.Parser.OCRMinCharThreshold = 40
	}
	if config.Tika.Timeout <= 0 {
		config.Tika.Timeout = 60
	}
	if config.Chunking.MaxChars <= 0 {
		config.Chunking.MaxChars = 600
	}
	if config.Chunking.Overlap < 0 {
		config.Chunking.Overlap = 120
	}
	if config.Scoring.CoverageWeight == 0 && config.Scoring.DensityWeight == 0 {
		config.Scoring.CoverageWeight = 0.7
		config.Scoring.DensityWeight = 0.3
	}
	if config.Scoring.DensityBoost == 0 {
		config.Scoring.DensityBoost = 5.0
	}
	if config.Scoring.DensityCap == 0 {
		config.Scoring.DensityCap = 1.0
	}
	if config.Aliyun.Embedding.Model == "" {
		config.Aliyun.Embedding.Model = "text-embedding-v3"
	}
	if config.Aliyun.Embedding.Dimensions == 0 {
		config.Aliyun.Embedding.Dimensions = 1024
	}
	if config.Aliyun.Embedding.BaseURL == "" {
		config.Aliyun.Embedding.BaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/embeddings"
	}
	if config.OpenAI.Embedding.Model == "" {
		config.OpenAI.Embedding.Model = "text-embedding-3-small"
	}
	if config.OpenAI.Embedding.Dimensions == 0 {
		config.OpenAI.Embedding.Dimensions = 1536
	}
}
