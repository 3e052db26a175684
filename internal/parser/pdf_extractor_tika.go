package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// TikaExtractor 基于Apache Tika服务器的PDF提取器
// 同时充当PDF回退后端与OCR后端：Tika配合tesseract可在服务端
// 渲染扫描页并识别文字（X-Tika-PDFOcrStrategy）
type TikaExtractor struct {
	// ServerURL Tika服务器地址，例如 http://localhost:9998
	ServerURL string
	// Client HTTP客户端，可配置超时等参数
	Client *http.Client
	logger *log.Logger
}

// TikaOption 定义配置选项函数
type TikaOption func(*TikaExtractor)

// WithTikaTimeout 配置HTTP客户端超时时间
func WithTikaTimeout(timeout time.Duration) TikaOption {
	return func(e *TikaExtractor) {
		e.Client.Timeout = timeout
	}
}

// WithTikaLogger 配置自定义日志记录器
func WithTikaLogger(logger *log.Logger) TikaOption {
	return func(e *TikaExtractor) {
		e.logger = logger
	}
}

// 确保TikaExtractor同时实现了两种后端接口
var (
	_ PDFExtractor = (*TikaExtractor)(nil)
	_ OCRExtractor = (*TikaExtractor)(nil)
)

// NewTikaExtractor 创建一个新的Tika提取器
func NewTikaExtractor(serverURL string, options ...TikaOption) *TikaExtractor {
	extractor := &TikaExtractor{
		ServerURL: serverURL,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: log.New(os.Stderr, "[TikaPDF] ", log.LstdFlags),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// ExtractText 通过Tika提取PDF文本层内容
func (e *TikaExtractor) ExtractText(ctx context.Context, filePath string) (string, int, error) {
	text, err := e.putFile(ctx, filePath, false)
	if err != nil {
		return "", 0, err
	}
	return text, len(text), nil
}

// RenderAndRecognize 通过Tika的OCR策略识别扫描件
func (e *TikaExtractor) RenderAndRecognize(ctx context.Context, filePath string) (string, error) {
	return e.putFile(ctx, filePath, true)
}

// putFile 将文件内容PUT到Tika的/tika端点并返回纯文本响应
func (e *TikaExtractor) putFile(ctx context.Context, filePath string, ocrOnly bool) (string, error) {
	startTime := time.Now()

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("打开文件 %s 失败: %w", filePath, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("读取文件内容失败: %w", err)
	}

	url := fmt.Sprintf("%s/tika", e.ServerURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("创建HTTP请求失败: %w", err)
	}

	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("X-Tika-Resource-Name", filePath)
	if ocrOnly {
		// 强制Tika跳过文本层，逐页渲染图像后走tesseract识别
		req.Header.Set("X-Tika-PDFOcrStrategy", "ocr_only")
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("发送请求到Tika服务器失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tika服务器返回错误状态码: %d", resp.StatusCode)
	}

	textBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取Tika响应失败: %w", err)
	}

	e.logger.Printf("Tika提取完成: %s, OCR=%v, %d 个字符 (用时 %.2f秒)",
		filePath, ocrOnly, len(textBytes), time.Since(startTime).Seconds())
	return string(textBytes), nil
}
