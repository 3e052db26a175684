package vector

import (
	"context"
	"fmt"
	"strings"

	"resume-insight/internal/parser"
)

// BuildContext 检索与查询最相关的简历分块并拼装为上下文文本
// 供下游问答与面试准备类功能作为提示上下文使用
func BuildContext(ctx context.Context, idx *Index, embedder parser.Embedder, query string, topK int) (string, error) {
	queryVector, err := parser.EmbedQuery(ctx, embedder, query)
	if err != nil {
		return "", err
	}

	results, err := idx.Search(queryVector, topK)
	if err != nil {
		return "", err
	}

	blocks := make([]string, 0, len(results))
	for _, result := range results {
		blocks = append(blocks, fmt.Sprintf("[Chunk d=%.2f]\n%s", result.Distance, result.Text))
	}
	return strings.Join(blocks, "\n\n"), nil
}
