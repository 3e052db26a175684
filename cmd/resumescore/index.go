package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"resume-insight/internal/storage"
	"resume-insight/internal/vector"
)

// 定义索引命令的命令行参数
var (
	indexQuery = flag.String("query", "", "检索查询文本 (index命令必填)")
	indexDir   = flag.String("index-dir", "", "索引持久化目录，为空时不落盘")
	indexTopK  = flag.Int("topk", 3, "返回的最近邻数量")
)

// 处理索引构建与检索子命令
func handleIndexCommand() {
	if *indexQuery == "" {
		fmt.Println("错误: 必须提供检索查询。使用 -query 参数。")
		flag.Usage()
		os.Exit(1)
	}

	cfg := loadCLIConfig()
	embedder := buildEmbedder(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	// 解析简历
	fmt.Println("1. 开始解析简历...")
	doc := parseResumeFile(ctx, cfg)
	fmt.Printf("解析完成，提取了 %d 字符文本\n", len(doc.Text))

	// 构建索引
	fmt.Printf("2. 开始构建向量索引 (模型: %s)...\n", embedder.ModelID())
	startTime := time.Now()

	idx, err := vector.BuildIndex(ctx, doc.Text, embedder,
		vector.WithChunkSize(cfg.Chunking.MaxChars),
		vector.WithChunkOverlap(cfg.Chunking.Overlap))
	if err != nil {
		fmt.Printf("构建索引失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("索引构建完成! 耗时: %v，共 %d 个分块，维度 %d\n", time.Since(startTime), len(idx.Chunks), idx.Dim)

	// 可选持久化
	if *indexDir != "" {
		store, err := storage.NewLocalStore(*indexDir)
		if err != nil {
			fmt.Printf("创建本地存储失败: %v\n", err)
			os.Exit(1)
		}
		if err := vector.SaveIndex(ctx, store, idx.ID, idx); err != nil {
			fmt.Printf("持久化索引失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("索引已保存到: %s/%s\n", *indexDir, idx.ID)
	}

	// 检索并拼装上下文
	fmt.Printf("3. 检索查询: %q\n", *indexQuery)
	contextText, err := vector.BuildContext(ctx, idx, embedder, *indexQuery, *indexTopK)
	if err != nil {
		fmt.Printf("检索失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n===== 检索上下文 =====")
	fmt.Println(contextText)

	fmt.Println("\n索引检索完成。")
}
