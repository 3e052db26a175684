package parser

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"resume-insight/internal/types"
)

// 支持的文件扩展名集合
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// DefaultOCRMinCharThreshold PDF直接提取字符数低于该值时视为扫描件
const DefaultOCRMinCharThreshold = 40

// 文本归一化用的正则
var (
	horizontalSpaceRegex = regexp.MustCompile("[ \t]+")
	bulletRegex          = regexp.MustCompile(`\n[•\-*]\s*`)
	excessNewlineRegex   = regexp.MustCompile(`\n{3,}`)
)

// DocumentParser 文档解析器
// 将磁盘上的PDF/DOCX文件转换为归一化的纯文本，必要时回退到OCR
type DocumentParser struct {
	pdfPrimary  PDFExtractor
	pdfFallback PDFExtractor // 可为nil，表示没有回退层
	docx        DocxExtractor
	ocr         OCRExtractor // 可为nil，表示环境中没有OCR能力
	ocrMinChars int
	logger      *log.Logger
}

// DocumentParserOption 解析器的配置选项
type DocumentParserOption func(*DocumentParser)

// WithPDFExtractor 配置主PDF提取后端
func WithPDFExtractor(e PDFExtractor) DocumentParserOption {
	return func(p *DocumentParser) {
		p.pdfPrimary = e
	}
}

// WithPDFFallback 配置PDF回退提取后端
func WithPDFFallback(e PDFExtractor) DocumentParserOption {
	return func(p *DocumentParser) {
		p.pdfFallback = e
	}
}

// WithDocxExtractor 配置DOCX提取后端
func WithDocxExtractor(e DocxExtractor) DocumentParserOption {
	return func(p *DocumentParser) {
		p.docx = e
	}
}

// WithOCRExtractor 配置OCR后端
func WithOCRExtractor(e OCRExtractor) DocumentParserOption {
	return func(p *DocumentParser) {
		p.ocr = e
	}
}

// WithOCRMinChars 配置触发OCR的最小字符数阈值
func WithOCRMinChars(threshold int) DocumentParserOption {
	return func(p *DocumentParser) {
		if threshold > 0 {
			p.ocrMinChars = threshold
		}
	}
}

// WithParserLogger 配置自定义日志记录器
func WithParserLogger(logger *log.Logger) DocumentParserOption {
	return func(p *DocumentParser) {
		p.logger = logger
	}
}

// NewDocumentParser 创建文档解析器
func NewDocumentParser(options ...DocumentParserOption) *DocumentParser {
	p := &DocumentParser{
		docx:        NewDocxTextExtractor(),
		ocrMinChars: DefaultOCRMinCharThreshold,
		logger:      log.New(os.Stderr, "[文档解析器] ", log.LstdFlags),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// parseOptions 单次解析调用的选项
type parseOptions struct {
	forceOCR bool
}

// ParseOption 单次解析调用的配置选项
type ParseOption func(*parseOptions)

// WithForceOCR 跳过文本层提取，直接走OCR
func WithForceOCR() ParseOption {
	return func(o *parseOptions) {
		o.forceOCR = true
	}
}

// Parse 将文件解析为归一化文本与元数据
// 扩展名不在支持集合中返回 ErrUnsupportedFormat；
// 所有提取后端都失败时返回 ErrExtractionFailed；
// 需要OCR但OCR能力缺失时返回 ErrOCRUnavailable
func (p *DocumentParser) Parse(ctx context.Context, filePath string, options ...ParseOption) (*types.ParsedDocument, error) {
	opts := parseOptions{}
	for _, option := range options {
		option(&opts)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if !supportedExtensions[ext] {
		return nil, NewUnsupportedFormatError(filePath, fmt.Sprintf("扩展名 %q，支持: .pdf .docx", ext))
	}

	var (
		rawText string
		ocrUsed bool
		backend string
		err     error
	)

	switch ext {
	case ".pdf":
		rawText, ocrUsed, backend, err = p.parsePDF(ctx, filePath, opts.forceOCR)
	case ".docx":
		rawText, err = p.parseDocx(ctx, filePath)
		backend = "docx"
	}
	if err != nil {
		return nil, err
	}

	clean := NormalizeText(rawText)

	meta := map[string]string{
		"filename":  filepath.Base(filePath),
		"extension": ext,
		"extractor": backend,
		"ocr_used":  strconv.FormatBool(ocrUsed),
		"char_len":  strconv.Itoa(len(clean)),
	}
	if info, statErr := os.Stat(filePath); statErr == nil {
		meta["filesize"] = strconv.FormatInt(info.Size(), 10)
	}

	p.logger.Printf("解析完成: %s (扩展名=%s, OCR=%v, 字符数=%d)", filepath.Base(filePath), ext, ocrUsed, len(clean))

	return &types.ParsedDocument{
		Text:     clean,
		Metadata: meta,
		OCRUsed:  ocrUsed,
	}, nil
}

// parsePDF 提取PDF文本，必要时回退到OCR
// 返回文本、是否使用OCR与实际生效的后端名
func (p *DocumentParser) parsePDF(ctx context.Context, filePath string, forceOCR bool) (string, bool, string, error) {
	if forceOCR {
		text, err := p.runOCR(ctx, filePath)
		return text, err == nil, "ocr", err
	}

	text, charCount, backend, err := p.extractPDFText(ctx, filePath)
	if err != nil {
		return "", false, "", err
	}

	// 文本层过于稀疏，判定为扫描件，改走OCR
	if charCount < p.ocrMinChars {
		p.logger.Printf("PDF文本层仅 %d 字符（阈值 %d），按扫描件处理: %s", charCount, p.ocrMinChars, filePath)
		ocrText, ocrErr := p.runOCR(ctx, filePath)
		if ocrErr != nil {
			return "", false, "", ocrErr
		}
		return ocrText, true, "ocr", nil
	}

	return text, false, backend, nil
}

// extractPDFText 依次尝试主后端与回退后端
func (p *DocumentParser) extractPDFText(ctx context.Context, filePath string) (string, int, string, error) {
	if p.pdfPrimary == nil && p.pdfFallback == nil {
		return "", 0, "", NewExtractionError(filePath, "没有配置任何PDF提取后端")
	}

	var primaryErr error
	if p.pdfPrimary != nil {
		text, charCount, err := p.pdfPrimary.ExtractText(ctx, filePath)
		if err == nil {
			return text, charCount, "pdf_primary", nil
		}
		primaryErr = err
		p.logger.Printf("主PDF后端提取失败，尝试回退后端: %v", err)
	}

	if p.pdfFallback != nil {
		text, charCount, err := p.pdfFallback.ExtractText(ctx, filePath)
		if err == nil {
			return text, charCount, "pdf_fallback", nil
		}
		p.logger.Printf("回退PDF后端提取失败: %v", err)
		return "", 0, "", NewExtractionError(filePath, fmt.Sprintf("主后端: %v; 回退后端: %v", primaryErr, err))
	}

	return "", 0, "", NewExtractionError(filePath, primaryErr.Error())
}

// runOCR 执行OCR，能力缺失时返回独立的错误类型
func (p *DocumentParser) runOCR(ctx context.Context, filePath string) (string, error) {
	if p.ocr == nil {
		return "", NewOCRUnavailableError(filePath, "环境中没有配置OCR后端")
	}
	text, err := p.ocr.RenderAndRecognize(ctx, filePath)
	if err != nil {
		return "", NewExtractionError(filePath, fmt.Sprintf("OCR识别失败: %v", err))
	}
	return text, nil
}

// parseDocx 提取DOCX全部段落并以换行符拼接
func (p *DocumentParser) parseDocx(ctx context.Context, filePath string) (string, error) {
	if p.docx == nil {
		return "", NewExtractionError(filePath, "没有配置DOCX提取后端")
	}
	paragraphs, err := p.docx.ExtractParagraphs(ctx, filePath)
	if err != nil {
		return "", NewExtractionError(filePath, fmt.Sprintf("DOCX提取失败: %v", err))
	}
	return strings.Join(paragraphs, "\n"), nil
}

// NormalizeText 统一化提取文本
// 不间断空格转普通空格、横向空白折叠、行首项目符号统一为"- "、
// 三个以上连续换行压缩为两个、去除首尾空白
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = horizontalSpaceRegex.ReplaceAllString(text, " ")
	text = bulletRegex.ReplaceAllString(text, "\n- ")
	text = excessNewlineRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
