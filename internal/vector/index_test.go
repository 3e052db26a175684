package vector_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resume-insight/internal/parser"
	"resume-insight/internal/storage"
	"resume-insight/internal/vector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder 确定性的测试用嵌入桩
// 向量由文本长度与首字符派生，同一文本总是得到同一向量
type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) EmbedStrings(ctx context.Context, texts []string) ([][]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		var first float64
		if len(text) > 0 {
			first = float64(text[0])
		}
		vectors[i] = []float64{float64(len(text)), first, 1}
	}
	return vectors, nil
}

func (f *fakeEmbedder) Dimensions() int { return 3 }

func (f *fakeEmbedder) ModelID() string { return "fake-embedding-v1" }

// TestBuildIndex 测试索引构建
func TestBuildIndex(t *testing.T) {
	text := strings.Repeat("resume content block ", 40)
	embedder := &fakeEmbedder{}

	idx, err := vector.BuildIndex(context.Background(), text, embedder,
		vector.WithChunkSize(100),
		vector.WithChunkOverlap(20))
	require.NoError(t, err)
	require.NotNil(t, idx)

	assert.NotEmpty(t, idx.ID)
	assert.Equal(t, "fake-embedding-v1", idx.ModelID)
	assert.Equal(t, 3, idx.Dim)
	assert.NotEmpty(t, idx.Chunks)
	require.Len(t, idx.Vectors, len(idx.Chunks))
	for _, vec := range idx.Vectors {
		assert.Len(t, vec, 3)
	}
}

// TestBuildIndex_EmptyText 测试空文本得到空索引
func TestBuildIndex_EmptyText(t *testing.T) {
	idx, err := vector.BuildIndex(context.Background(), "", &fakeEmbedder{})
	require.NoError(t, err)
	require.NotNil(t, idx)

	assert.Empty(t, idx.Chunks)
	assert.Empty(t, idx.Vectors)

	// 空索引可检索，返回空结果
	results, err := idx.Search([]float64{1, 2, 3}, 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

// TestBuildIndex_EmbedderFailure 测试嵌入失败时的错误类型
func TestBuildIndex_EmbedderFailure(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("服务限流")}

	idx, err := vector.BuildIndex(context.Background(), "some resume text", embedder)
	assert.Nil(t, idx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrEmbeddingFailed))
}

// TestBuildIndex_InvalidChunkConfig 测试非法分块参数透传
func TestBuildIndex_InvalidChunkConfig(t *testing.T) {
	idx, err := vector.BuildIndex(context.Background(), "text", &fakeEmbedder{},
		vector.WithChunkSize(10),
		vector.WithChunkOverlap(10))
	assert.Nil(t, idx)
	assert.True(t, errors.Is(err, parser.ErrInvalidChunkConfig))
}

// newManualIndex 构造已知向量的索引，便于断言距离
func newManualIndex() *vector.Index {
	return &vector.Index{
		ID:      "test-index",
		ModelID: "fake-embedding-v1",
		Dim:     2,
		Chunks:  []string{"chunk a", "chunk b", "chunk c"},
		Vectors: [][]float64{
			{0, 0},
			{3, 4},
			{1, 0},
		},
	}
}

// TestSearch_AscendingDistance 测试检索结果按距离升序
func TestSearch_AscendingDistance(t *testing.T) {
	idx := newManualIndex()

	results, err := idx.Search([]float64{0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// 平方L2距离: 0, 1, 25
	assert.Equal(t, 0, results[0].ChunkIndex)
	assert.InDelta(t, 0.0, results[0].Distance, 1e-9)
	assert.Equal(t, 2, results[1].ChunkIndex)
	assert.InDelta(t, 1.0, results[1].Distance, 1e-9)
	assert.Equal(t, 1, results[2].ChunkIndex)
	assert.InDelta(t, 25.0, results[2].Distance, 1e-9)

	assert.Equal(t, "chunk a", results[0].Text)
}

// TestSearch_TopKTruncation 测试topK截断与默认值
func TestSearch_TopKTruncation(t *testing.T) {
	idx := newManualIndex()

	results, err := idx.Search([]float64{0, 0}, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// topK非正数时使用默认值
	results, err = idx.Search([]float64{0, 0}, 0)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

// TestSearch_DimensionMismatch 测试查询向量维度不匹配
func TestSearch_DimensionMismatch(t *testing.T) {
	idx := newManualIndex()

	results, err := idx.Search([]float64{1, 2, 3}, 5)
	assert.Nil(t, results)
	assert.Error(t, err)
}

// TestSearch_SkipsInvalidSlots 测试向量缺失的槽位被跳过
func TestSearch_SkipsInvalidSlots(t *testing.T) {
	idx := newManualIndex()
	idx.Vectors[1] = nil

	results, err := idx.Search([]float64{0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEqual(t, 1, r.ChunkIndex)
	}
}

// TestSaveLoadIndex 测试索引持久化的往返一致性
func TestSaveLoadIndex(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	original := newManualIndex()
	require.NoError(t, vector.SaveIndex(ctx, store, "resume-42", original))

	loaded, err := vector.LoadIndex(ctx, store, "resume-42")
	require.NoError(t, err)

	assert.Equal(t, original.ID, loaded.ID)
	assert.Equal(t, original.ModelID, loaded.ModelID)
	assert.Equal(t, original.Dim, loaded.Dim)
	assert.Equal(t, original.Chunks, loaded.Chunks)
	assert.Equal(t, original.Vectors, loaded.Vectors)

	// 恢复后的索引检索行为与原索引一致
	want, err := original.Search([]float64{0, 0}, 3)
	require.NoError(t, err)
	got, err := loaded.Search([]float64{0, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestLoadIndex_Missing 测试加载不存在的索引
func TestLoadIndex_Missing(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	idx, err := vector.LoadIndex(context.Background(), store, "no-such-index")
	assert.Nil(t, idx)
	assert.Error(t, err)
}

// TestBuildContext_Format 测试检索上下文的拼装格式
func TestBuildContext_Format(t *testing.T) {
	text := "golang backend development with postgres"
	embedder := &fakeEmbedder{}

	idx, err := vector.BuildIndex(context.Background(), text, embedder,
		vector.WithChunkSize(20),
		vector.WithChunkOverlap(5))
	require.NoError(t, err)
	require.NotEmpty(t, idx.Chunks)

	contextText, err := vector.BuildContext(context.Background(), idx, embedder, "golang", 2)
	require.NoError(t, err)
	require.NotEmpty(t, contextText)

	blocks := strings.Split(contextText, "\n\n")
	assert.LessOrEqual(t, len(blocks), 2)
	for _, block := range blocks {
		assert.True(t, strings.HasPrefix(block, "[Chunk d="), "分块前缀格式: %q", block)
		assert.Contains(t, block, "]\n")
	}
	// 距离保留两位小数
	assert.Regexp(t, `^\[Chunk d=\d+\.\d{2}\]`, blocks[0])
}
