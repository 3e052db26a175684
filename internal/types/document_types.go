package types

// ParsedDocument 文档解析结果
// 每个上传文件创建一次，创建后不可变，由调用方持有
type ParsedDocument struct {
	// Text 归一化后的纯文本
	Text string `json:"text"`
	// Metadata 来源元数据：文件名、字节大小、扩展名、是否OCR、字符数等
	Metadata map[string]string `json:"metadata"`
	// OCRUsed 是否经过OCR提取
	OCRUsed bool `json:"ocr_used"`
}

// TextChunk 文本分块，嵌入与检索的基本单元
type TextChunk struct {
	// Index 分块在文档中的序号
	Index int `json:"index"`
	// Start 分块在源文本中的起始偏移
	Start int `json:"start"`
	// Text 分块内容
	Text string `json:"text"`
}

// SearchResult 向量检索的单条结果
type SearchResult struct {
	// ChunkIndex 命中分块的序号
	ChunkIndex int `json:"chunk_index"`
	// Distance L2距离，越小越相似
	Distance float64 `json:"distance"`
	// Text 命中分块的文本
	Text string `json:"text"`
}
