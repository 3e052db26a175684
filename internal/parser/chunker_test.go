package parser_test

import (
	"errors"
	"strings"
	"testing"

	"resume-insight/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChunkText_OverlappingWindows 测试重叠窗口的切分结果
func TestChunkText_OverlappingWindows(t *testing.T) {
	chunks, err := parser.ChunkText("abcdefghij", 4, 2)
	require.NoError(t, err)
	require.Len(t, chunks, 4)

	assert.Equal(t, "abcd", chunks[0].Text)
	assert.Equal(t, "cdef", chunks[1].Text)
	assert.Equal(t, "efgh", chunks[2].Text)
	assert.Equal(t, "ghij", chunks[3].Text)

	// 序号与起始位置递增
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index)
	}
	assert.Equal(t, 0, chunks[0].Start)
	assert.Equal(t, 2, chunks[1].Start)
	assert.Equal(t, 4, chunks[2].Start)
	assert.Equal(t, 6, chunks[3].Start)
}

// TestChunkText_CoversEveryCharacter 测试分块覆盖全部字符
func TestChunkText_CoversEveryCharacter(t *testing.T) {
	text := strings.Repeat("简历内容abc ", 200)
	runes := []rune(text)

	chunks, err := parser.ChunkText(text, 100, 20)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	covered := make([]bool, len(runes))
	for _, chunk := range chunks {
		chunkRunes := []rune(chunk.Text)
		assert.LessOrEqual(t, len(chunkRunes), 100)
		for i, r := range chunkRunes {
			pos := chunk.Start + i
			require.Less(t, pos, len(runes))
			assert.Equal(t, runes[pos], r)
			covered[pos] = true
		}
	}
	for i, ok := range covered {
		assert.True(t, ok, "位置 %d 未被任何分块覆盖", i)
	}
}

// TestChunkText_ShortText 测试短于窗口的文本只产生一个分块
func TestChunkText_ShortText(t *testing.T) {
	chunks, err := parser.ChunkText("abc", 10, 2)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "abc", chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Start)
}

// TestChunkText_EmptyText 测试空文本返回空序列而非错误
func TestChunkText_EmptyText(t *testing.T) {
	chunks, err := parser.ChunkText("", 600, 120)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

// TestChunkText_InvalidConfig 测试非法参数返回配置错误
func TestChunkText_InvalidConfig(t *testing.T) {
	cases := []struct {
		name     string
		maxChars int
		overlap  int
	}{
		{"maxChars为零", 0, 0},
		{"maxChars为负", -1, 0},
		{"overlap为负", 10, -1},
		{"overlap等于maxChars", 10, 10},
		{"overlap大于maxChars", 10, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chunks, err := parser.ChunkText("some text", tc.maxChars, tc.overlap)
			assert.Nil(t, chunks)
			require.Error(t, err)
			assert.True(t, errors.Is(err, parser.ErrInvalidChunkConfig))
		})
	}
}

// TestChunkText_MultiByteBoundary 测试多字节字符不会被窗口截断
func TestChunkText_MultiByteBoundary(t *testing.T) {
	text := "简历解析与技能提取的测试文本"
	chunks, err := parser.ChunkText(text, 5, 1)
	require.NoError(t, err)

	for _, chunk := range chunks {
		// 每个分块都是合法的UTF-8字符串
		assert.Equal(t, chunk.Text, strings.ToValidUTF8(chunk.Text, "?"))
	}
}
