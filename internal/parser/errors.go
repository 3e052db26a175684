package parser

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrUnsupportedFormat  = errors.New("不支持的文件格式")
	ErrExtractionFailed   = errors.New("文档文本提取失败")
	ErrOCRUnavailable     = errors.New("OCR能力不可用")
	ErrInvalidChunkConfig = errors.New("分块参数无效")
	ErrEmbeddingFailed    = errors.New("向量嵌入失败")
)

// DocumentParseError 包含详细错误信息的自定义错误
type DocumentParseError struct {
	Path    string
	Op      string
	BaseErr error
	Detail  string
}

func (e *DocumentParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.Path, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.Path)
}

func (e *DocumentParseError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *DocumentParseError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewUnsupportedFormatError(path, detail string) error {
	return &DocumentParseError{
		Path:    path,
		Op:      "dispatch",
		BaseErr: ErrUnsupportedFormat,
		Detail:  detail,
	}
}

func NewExtractionError(path, detail string) error {
	return &DocumentParseError{
		Path:    path,
		Op:      "extract",
		BaseErr: ErrExtractionFailed,
		Detail:  detail,
	}
}

func NewOCRUnavailableError(path, detail string) error {
	return &DocumentParseError{
		Path:    path,
		Op:      "ocr",
		BaseErr: ErrOCRUnavailable,
		Detail:  detail,
	}
}

func NewInvalidChunkConfigError(detail string) error {
	return &DocumentParseError{
		Op:      "chunk",
		BaseErr: ErrInvalidChunkConfig,
		Detail:  detail,
	}
}

func NewEmbeddingError(detail string) error {
	return &DocumentParseError{
		Op:      "embed",
		BaseErr: ErrEmbeddingFailed,
		Detail:  detail,
	}
}
