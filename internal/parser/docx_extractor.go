package parser

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DocxTextExtractor 基于document.xml的DOCX段落提取器
type DocxTextExtractor struct{}

// 确保DocxTextExtractor实现了DocxExtractor接口
var _ DocxExtractor = (*DocxTextExtractor)(nil)

// NewDocxTextExtractor 创建DOCX提取器
func NewDocxTextExtractor() *DocxTextExtractor {
	return &DocxTextExtractor{}
}

var (
	paragraphSplitRegex = regexp.MustCompile(`</w:p>`)
	textRunRegex        = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
)

// xmlEntityReplacer document.xml中常见实体的反转义
var xmlEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// ExtractParagraphs 提取DOCX的全部段落文本，保留空段落以维持分节结构
func (d *DocxTextExtractor) ExtractParagraphs(ctx context.Context, filePath string) ([]string, error) {
	reader, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("打开DOCX文件 %s 失败: %w", filePath, err)
	}
	defer reader.Close()

	content := reader.Editable().GetContent()

	var paragraphs []string
	for _, block := range paragraphSplitRegex.Split(content, -1) {
		// 不含<w:p>起始标记的尾部片段不是段落
		if !strings.Contains(block, "<w:p") {
			continue
		}
		var sb strings.Builder
		for _, match := range textRunRegex.FindAllStringSubmatch(block, -1) {
			sb.WriteString(xmlEntityReplacer.Replace(match[1]))
		}
		paragraphs = append(paragraphs, sb.String())
	}

	return paragraphs, nil
}
