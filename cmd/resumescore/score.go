package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"resume-insight/internal/analyzer"
)

// 定义评分命令的命令行参数
var (
	scoreJDFile = flag.String("jd", "", "职位描述文本文件路径 (score命令必填)")
)

// 处理ATS评分子命令
func handleScoreCommand() {
	if *scoreJDFile == "" {
		fmt.Println("错误: 必须提供职位描述文件路径。使用 -jd 参数。")
		flag.Usage()
		os.Exit(1)
	}

	jdData, err := os.ReadFile(*scoreJDFile)
	if err != nil {
		fmt.Printf("读取职位描述失败: %v\n", err)
		os.Exit(1)
	}

	cfg := loadCLIConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// 解析简历
	fmt.Println("1. 开始解析简历...")
	startTime := time.Now()
	doc := parseResumeFile(ctx, cfg)
	fmt.Printf("解析完成! 耗时: %v，提取了 %d 字符文本\n", time.Since(startTime), len(doc.Text))

	// 创建评分器
	extractor := analyzer.NewSkillExtractor(analyzer.DefaultLexicon())
	scorer := analyzer.NewScorer(extractor,
		analyzer.WithScoringWeights(analyzer.ScoringWeights{
			Coverage:     cfg.Scoring.CoverageWeight,
			Density:      cfg.Scoring.DensityWeight,
			DensityBoost: cfg.Scoring.DensityBoost,
			DensityCap:   cfg.Scoring.DensityCap,
		}))

	// 计算评分
	fmt.Println("2. 开始计算ATS匹配度...")
	result := scorer.ComputeATSScore(ctx, doc.Text, string(jdData))

	fmt.Println("\n===== ATS评分结果 =====")
	fmt.Printf("综合得分: %.2f / 100\n", result.Score)
	fmt.Printf("命中技能 (%d): %v\n", len(result.MatchedSkills), result.MatchedSkills.Sorted())
	fmt.Printf("缺失技能 (%d): %v\n", len(result.MissingSkills), result.MissingSkills.Sorted())
	for k, v := range result.Detail {
		fmt.Printf("  %s: %.4f\n", k, v)
	}

	// 生成改进建议
	analysis := scorer.AnalyzeSkills(ctx, doc.Text, string(jdData))
	suggestions := analyzer.ImprovementSuggestions(doc.Text, analysis)

	fmt.Println("\n===== 改进建议 =====")
	for i, s := range suggestions {
		fmt.Printf("%d. %s\n", i+1, s)
	}

	fmt.Println("\nATS评分完成。")
}
