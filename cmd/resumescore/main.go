package main

import (
	"flag"
	"fmt"
	"os"
)

// 命令行参数定义
var (
	resumeFilePath = flag.String("resume", "", "简历文件路径，支持 .pdf 和 .docx (必填)")
	configPath     = flag.String("config", "", "配置文件路径，为空时使用内置默认配置")
	maxLen         = flag.Int("maxlen", 1000, "显示的文本最大长度，设为-1显示全部")
	command        = flag.String("cmd", "parse", "执行的命令: parse=解析文档, score=ATS评分与建议, chunk=分块文本, index=构建索引并检索")
)

func main() {
	// 解析命令行参数
	flag.Parse()

	// 根据命令执行不同的功能
	switch *command {
	case "parse":
		handleParseCommand()
	case "score":
		handleScoreCommand()
	case "chunk":
		handleChunkCommand()
	case "index":
		handleIndexCommand()
	default:
		fmt.Printf("错误: 未知命令 '%s'。支持的命令: parse, score, chunk, index\n", *command)
		flag.Usage()
		os.Exit(1)
	}
}
