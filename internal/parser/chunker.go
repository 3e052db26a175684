package parser

import (
	"fmt"

	"resume-insight/internal/types"
)

// 分块默认参数，与嵌入模型的上下文长度相匹配
const (
	DefaultChunkSize    = 600
	DefaultChunkOverlap = 120
)

// ChunkText 将文本切分为带重叠的固定窗口分块
// 窗口每次前进 maxChars-overlap 个字符，最后一个窗口可以短于 maxChars；
// 空文本返回空序列；overlap 必须小于 maxChars，否则返回 ErrInvalidChunkConfig
func ChunkText(text string, maxChars, overlap int) ([]types.TextChunk, error) {
	if maxChars <= 0 {
		return nil, NewInvalidChunkConfigError(fmt.Sprintf("maxChars 必须为正数，实际为 %d", maxChars))
	}
	if overlap < 0 {
		return nil, NewInvalidChunkConfigError(fmt.Sprintf("overlap 不能为负数，实际为 %d", overlap))
	}
	if overlap >= maxChars {
		return nil, NewInvalidChunkConfigError(fmt.Sprintf("overlap(%d) 必须小于 maxChars(%d)", overlap, maxChars))
	}

	if text == "" {
		return nil, nil
	}

	// 按字符而非字节切分，避免多字节字符被截断
	runes := []rune(text)
	n := len(runes)

	var chunks []types.TextChunk
	start := 0
	for start < n {
		end := start + maxChars
		if end > n {
			end = n
		}
		chunks = append(chunks, types.TextChunk{
			Index: len(chunks),
			Start: start,
			Text:  string(runes[start:end]),
		})
		if end == n {
			break
		}
		start = end - overlap
	}

	return chunks, nil
}
