package vector

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/google/uuid"

	"resume-insight/internal/parser"
	"resume-insight/internal/types"
)

// DefaultTopK 检索时默认返回的结果数量
const DefaultTopK = 5

// Index 平铺的精确L2最近邻索引
// 每个文档构建一个独立实例，构建后内容不可变；文档变化时重建而非修改。
// 简历分块数量是几十量级，精确检索的成本远低于嵌入计算，
// 近似索引在这个规模下只会增加复杂度
type Index struct {
	// ID 索引标识，持久化元数据的一部分
	ID string
	// ModelID 生成向量所用的嵌入模型标识
	ModelID string
	// Dim 向量维度
	Dim int
	// Chunks 按构建顺序保存的分块文本
	Chunks []string
	// Vectors 与Chunks一一对应的嵌入向量，即索引结构本身
	Vectors [][]float64
}

// buildOptions 构建索引的选项
type buildOptions struct {
	chunkSize int
	overlap   int
	logger    *log.Logger
}

// BuildOption 构建索引的配置选项
type BuildOption func(*buildOptions)

// WithChunkSize 覆盖默认分块大小
func WithChunkSize(size int) BuildOption {
	return func(o *buildOptions) {
		o.chunkSize = size
	}
}

// WithChunkOverlap 覆盖默认分块重叠
func WithChunkOverlap(overlap int) BuildOption {
	return func(o *buildOptions) {
		o.overlap = overlap
	}
}

// WithBuildLogger 配置自定义日志记录器
func WithBuildLogger(logger *log.Logger) BuildOption {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// BuildIndex 将文本分块、嵌入并构建精确L2索引
// 嵌入能力失败时返回 ErrEmbeddingFailed，不在内部重试
func BuildIndex(ctx context.Context, text string, embedder parser.Embedder, options ...BuildOption) (*Index, error) {
	opts := buildOptions{
		chunkSize: parser.DefaultChunkSize,
		overlap:   parser.DefaultChunkOverlap,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(&opts)
	}

	if embedder == nil {
		return nil, parser.NewEmbeddingError("没有配置嵌入模型")
	}

	chunks, err := parser.ChunkText(text, opts.chunkSize, opts.overlap)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		ID:      uuid.NewString(),
		ModelID: embedder.ModelID(),
		Dim:     embedder.Dimensions(),
	}
	if len(chunks) == 0 {
		return idx, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := embedder.EmbedStrings(ctx, texts)
	if err != nil {
		return nil, parser.NewEmbeddingError(err.Error())
	}
	if len(vectors) != len(texts) {
		return nil, parser.NewEmbeddingError(
			fmt.Sprintf("嵌入数量不匹配: 期望 %d，实际 %d", len(texts), len(vectors)))
	}

	idx.Chunks = texts
	idx.Vectors = vectors
	if len(vectors) > 0 && len(vectors[0]) > 0 {
		idx.Dim = len(vectors[0])
	}

	opts.logger.Printf("索引构建完成: id=%s chunks=%d dim=%d model=%s", idx.ID, len(idx.Chunks), idx.Dim, idx.ModelID)
	return idx, nil
}

// Search 精确L2最近邻检索，按距离升序返回最多topK条结果
// 距离与FAISS的IndexFlatL2一致，为平方L2；
// 无效槽位（向量缺失）直接跳过，不会出现在结果中
func (idx *Index) Search(queryVector []float64, topK int) ([]types.SearchResult, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if len(queryVector) != idx.Dim {
		return nil, fmt.Errorf("查询向量维度不匹配: 索引为 %d，查询为 %d", idx.Dim, len(queryVector))
	}

	results := make([]types.SearchResult, 0, len(idx.Vectors))
	for i, vec := range idx.Vectors {
		if len(vec) != len(queryVector) {
			continue
		}
		results = append(results, types.SearchResult{
			ChunkIndex: i,
			Distance:   l2Squared(queryVector, vec),
			Text:       idx.Chunks[i],
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Distance < results[b].Distance
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// l2Squared 平方欧氏距离
func l2Squared(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
