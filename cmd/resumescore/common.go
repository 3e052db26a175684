package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"resume-insight/internal/config"
	"resume-insight/internal/logger"
	"resume-insight/internal/parser"
	"resume-insight/internal/types"
)

// loadCLIConfig 加载配置文件并初始化日志，未指定配置时使用内置默认值
func loadCLIConfig() *config.Config {
	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Printf("加载配置失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger.Init(cfg.Logger)
	logger.Debug().Str("config", *configPath).Msg("配置加载完成")
	return cfg
}

// buildDocumentParser 按配置组装文档解析器
// Tika未配置时没有PDF回退与OCR能力，扫描件会解析失败
func buildDocumentParser(ctx context.Context, cfg *config.Config) *parser.DocumentParser {
	einoExtractor, err := parser.NewEinoPDFExtractor(ctx)
	if err != nil {
		fmt.Printf("创建PDF提取器失败: %v\n", err)
		os.Exit(1)
	}

	options := []parser.DocumentParserOption{
		parser.WithPDFExtractor(einoExtractor),
		parser.WithDocxExtractor(parser.NewDocxTextExtractor()),
		parser.WithOCRMinChars(cfg.Parser.OCRMinCharThreshold),
	}

	if cfg.Tika.ServerURL != "" {
		tika := parser.NewTikaExtractor(cfg.Tika.ServerURL,
			parser.WithTikaTimeout(time.Duration(cfg.Tika.Timeout)*time.Second))
		options = append(options,
			parser.WithPDFFallback(tika),
			parser.WithOCRExtractor(tika))
	}

	return parser.NewDocumentParser(options...)
}

// parseResumeFile 解析命令行指定的简历文件
func parseResumeFile(ctx context.Context, cfg *config.Config) *types.ParsedDocument {
	if *resumeFilePath == "" {
		fmt.Println("错误: 必须提供简历文件路径。使用 -resume 参数。")
		os.Exit(1)
	}

	p := buildDocumentParser(ctx, cfg)
	doc, err := p.Parse(ctx, *resumeFilePath)
	if err != nil {
		fmt.Printf("解析简历失败: %v\n", err)
		os.Exit(1)
	}
	return doc
}

// buildEmbedder 按配置选择可用的嵌入模型，优先Aliyun
func buildEmbedder(cfg *config.Config) parser.Embedder {
	if cfg.Aliyun.APIKey != "" {
		embedder, err := parser.NewAliyunEmbedder(cfg.Aliyun.APIKey, cfg.Aliyun.Embedding)
		if err != nil {
			fmt.Printf("创建Aliyun嵌入模型失败: %v\n", err)
			os.Exit(1)
		}
		return embedder
	}
	if cfg.OpenAI.APIKey != "" {
		embedder, err := parser.NewOpenAIEmbedder(cfg.OpenAI.APIKey, cfg.OpenAI.Embedding)
		if err != nil {
			fmt.Printf("创建OpenAI嵌入模型失败: %v\n", err)
			os.Exit(1)
		}
		return embedder
	}

	fmt.Println("错误: 未配置任何嵌入模型API密钥。设置 ALIYUN_API_KEY 或 OPENAI_API_KEY 环境变量。")
	os.Exit(1)
	return nil
}

// truncateForDisplay 按maxLen截断展示文本
func truncateForDisplay(text string) string {
	if *maxLen >= 0 && len(text) > *maxLen {
		return text[:*maxLen] + "...(已截断，使用 -maxlen 参数显示更多)"
	}
	return text
}
