package main

import (
	"context"
	"fmt"
	"time"
)

// 处理解析子命令
func handleParseCommand() {
	cfg := loadCLIConfig()

	// 创建上下文，添加超时以防止无限等待
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("准备解析文件: %s\n", *resumeFilePath)
	startTime := time.Now()

	doc := parseResumeFile(ctx, cfg)

	elapsedTime := time.Since(startTime)
	fmt.Printf("解析完成! 耗时: %v\n", elapsedTime)

	// 显示提取结果
	fmt.Printf("\n===== 提取的文本 (总计 %d 字符) =====\n", len(doc.Text))
	fmt.Println(truncateForDisplay(doc.Text))

	// 显示元数据
	fmt.Println("\n===== 元数据 =====")
	fmt.Printf("是否使用OCR: %v\n", doc.OCRUsed)
	for k, v := range doc.Metadata {
		fmt.Printf("  %s: %s\n", k, v)
	}

	fmt.Println("\n文档解析完成。")
}
