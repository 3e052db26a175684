package parser

import "context"

// PDFExtractor PDF文本层提取能力接口
// 返回提取的文本与字符数；实现方可能失败，由解析器负责回退
type PDFExtractor interface {
	ExtractText(ctx context.Context, filePath string) (string, int, error)
}

// DocxExtractor DOCX段落提取能力接口
type DocxExtractor interface {
	ExtractParagraphs(ctx context.Context, filePath string) ([]string, error)
}

// OCRExtractor OCR能力接口：渲染页面图像并识别文字
// 可选能力，缺失时由解析器以 ErrOCRUnavailable 显式暴露
type OCRExtractor interface {
	RenderAndRecognize(ctx context.Context, filePath string) (string, error)
}

// Embedder 文本向量化能力接口
// 对同一模型版本，结果是确定性的
type Embedder interface {
	// EmbedStrings 批量将文本转换为固定维度的向量
	EmbedStrings(ctx context.Context, texts []string) ([][]float64, error)
	// Dimensions 返回向量维度
	Dimensions() int
	// ModelID 返回模型标识，持久化索引时随元数据一起记录
	ModelID() string
}

// EmbedQuery 将单条查询文本向量化
func EmbedQuery(ctx context.Context, e Embedder, query string) ([]float64, error) {
	vecs, err := e.EmbedStrings(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 {
		return nil, NewEmbeddingError("嵌入服务未返回查询向量")
	}
	return vecs[0], nil
}
