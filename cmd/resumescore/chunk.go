package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"resume-insight/internal/parser"
)

// 处理分块子命令
func handleChunkCommand() {
	cfg := loadCLIConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// 解析简历
	fmt.Println("1. 开始解析简历...")
	startTime := time.Now()
	doc := parseResumeFile(ctx, cfg)
	extractTime := time.Since(startTime)
	fmt.Printf("解析完成! 耗时: %v，提取了 %d 字符文本\n", extractTime, len(doc.Text))

	// 执行分块
	fmt.Println("2. 开始分块文本...")
	startTime = time.Now()

	chunks, err := parser.ChunkText(doc.Text, cfg.Chunking.MaxChars, cfg.Chunking.Overlap)
	if err != nil {
		fmt.Printf("分块文本失败: %v\n", err)
		os.Exit(1)
	}

	chunkTime := time.Since(startTime)
	fmt.Printf("分块完成! 耗时: %v，生成了 %d 个分块\n", chunkTime, len(chunks))

	// 输出结果
	fmt.Println("\n===== 分块结果 =====")
	for _, chunk := range chunks {
		fmt.Printf("--- 分块 #%d (起始位置 %d, %d 字符) ---\n", chunk.Index, chunk.Start, len([]rune(chunk.Text)))
		fmt.Println(truncateForDisplay(chunk.Text))
	}

	// 显示统计信息
	fmt.Println("\n===== 处理统计 =====")
	fmt.Printf("文本大小: %d 字符\n", len(doc.Text))
	fmt.Printf("分块数: %d\n", len(chunks))
	fmt.Printf("解析耗时: %v\n", extractTime)
	fmt.Printf("分块耗时: %v\n", chunkTime)

	fmt.Println("\n文本分块完成。")
}
