package parser

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
)

// EinoPDFExtractor 使用 Eino PDF Parser 提取文本层
// 作为PDF提取的主后端
type EinoPDFExtractor struct {
	parser *pdf.PDFParser
	logger *log.Logger
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFExtractor)

// WithEinoLogger 配置自定义日志记录器
func WithEinoLogger(logger *log.Logger) EinoPDFOption {
	return func(e *EinoPDFExtractor) {
		e.logger = logger
	}
}

// 确保EinoPDFExtractor实现了PDFExtractor接口
var _ PDFExtractor = (*EinoPDFExtractor)(nil)

// NewEinoPDFExtractor 初始化 Eino PDF 文本提取器
// 不按页面分割，获取整个文档的连续文本
func NewEinoPDFExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 Eino PDF parser 失败: %w", err)
	}

	extractor := &EinoPDFExtractor{
		parser: p,
		logger: log.New(os.Stderr, "[EinoPDF] ", log.LstdFlags),
	}
	for _, option := range options {
		option(extractor)
	}

	return extractor, nil
}

// ExtractText 从PDF文件提取文本层内容，返回文本与字符数
func (e *EinoPDFExtractor) ExtractText(ctx context.Context, filePath string) (string, int, error) {
	startTime := time.Now()

	file, err := os.Open(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("打开PDF文件 %s 失败: %w", filePath, err)
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	docs, err := e.parser.Parse(ctx, file, einoParser.WithURI(filePath))
	if err != nil {
		return "", 0, fmt.Errorf("eino PDF parser 解析 %s 失败: %w", filePath, err)
	}
	if len(docs) == 0 {
		return "", 0, fmt.Errorf("eino PDF parser 对 %s 未返回任何文档", filePath)
	}

	// ToPages为false时通常只有一个文档，逐页场景下按页拼接
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, doc.Content)
	}
	text := strings.Join(parts, "\n")

	e.logger.Printf("PDF提取完成: %s, %d 个字符 (用时 %.2f秒)", filePath, len(text), time.Since(startTime).Seconds())
	return text, len(text), nil
}
