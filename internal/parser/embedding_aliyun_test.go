package parser_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-insight/internal/config"
	"resume-insight/internal/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAliyunTestServer 构造模拟DashScope兼容端点的测试服务器
func newAliyunTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *parser.AliyunEmbedder) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	embedder, err := parser.NewAliyunEmbedder("test-api-key", config.EmbeddingConfig{
		Model:      "text-embedding-v3",
		Dimensions: 4,
		BaseURL:    server.URL,
	})
	require.NoError(t, err)
	return server, embedder
}

// TestAliyunEmbedder_EmbedStrings_Success 测试批量嵌入与按Index落位
func TestAliyunEmbedder_EmbedStrings_Success(t *testing.T) {
	_, embedder := newAliyunTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "text-embedding-v3", req["model"])

		// 故意乱序返回，验证按Index落位
		resp := map[string]interface{}{
			"object": "list",
			"model":  "text-embedding-v3",
			"data": []map[string]interface{}{
				{"object": "embedding", "index": 1, "embedding": []float64{0.5, 0.6, 0.7, 0.8}},
				{"object": "embedding", "index": 0, "embedding": []float64{0.1, 0.2, 0.3, 0.4}},
			},
			"usage": map[string]int{"prompt_tokens": 8, "total_tokens": 8},
		}
		json.NewEncoder(w).Encode(resp)
	})

	embeddings, err := embedder.EmbedStrings(context.Background(), []string{"first text", "second text"})
	require.NoError(t, err)
	require.Len(t, embeddings, 2)

	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, embeddings[0])
	assert.Equal(t, []float64{0.5, 0.6, 0.7, 0.8}, embeddings[1])
}

// TestAliyunEmbedder_EmbedStrings_EmptyInput 测试空输入不发起请求
func TestAliyunEmbedder_EmbedStrings_EmptyInput(t *testing.T) {
	requested := false
	_, embedder := newAliyunTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})

	embeddings, err := embedder.EmbedStrings(context.Background(), []string{})
	require.NoError(t, err)
	assert.Empty(t, embeddings)
	assert.False(t, requested)
}

// TestAliyunEmbedder_EmbedStrings_HTTPError 测试非200状态码
func TestAliyunEmbedder_EmbedStrings_HTTPError(t *testing.T) {
	_, embedder := newAliyunTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Invalid API key",
			"type":    "authentication_error",
			"code":    "invalid_api_key",
		})
	})

	embeddings, err := embedder.EmbedStrings(context.Background(), []string{"text"})
	assert.Nil(t, embeddings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

// TestAliyunEmbedder_EmbedStrings_APILevelError 测试200响应中携带的错误
func TestAliyunEmbedder_EmbedStrings_APILevelError(t *testing.T) {
	_, embedder := newAliyunTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"object": "list",
			"error": map[string]string{
				"message": "input too long",
				"type":    "invalid_request_error",
				"code":    "data_inspection_failed",
			},
		})
	})

	embeddings, err := embedder.EmbedStrings(context.Background(), []string{"text"})
	assert.Nil(t, embeddings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input too long")
}

// TestNewAliyunEmbedder_EmptyAPIKey 测试缺失API密钥
func TestNewAliyunEmbedder_EmptyAPIKey(t *testing.T) {
	embedder, err := parser.NewAliyunEmbedder("", config.EmbeddingConfig{})
	assert.Nil(t, embedder)
	assert.Error(t, err)
}

// TestAliyunEmbedder_Metadata 测试维度与模型标识
func TestAliyunEmbedder_Metadata(t *testing.T) {
	embedder, err := parser.NewAliyunEmbedder("key", config.EmbeddingConfig{
		Model:      "text-embedding-v3",
		Dimensions: 1024,
	})
	require.NoError(t, err)
	assert.Equal(t, 1024, embedder.Dimensions())
	assert.Equal(t, "text-embedding-v3", embedder.ModelID())
}

// TestEmbedQuery 测试单条查询的向量化
func TestEmbedQuery(t *testing.T) {
	_, embedder := newAliyunTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"object": "list",
			"data": []map[string]interface{}{
				{"object": "embedding", "index": 0, "embedding": []float64{1, 2, 3, 4}},
			},
			"usage": map[string]int{"total_tokens": 3},
		})
	})

	vec, err := parser.EmbedQuery(context.Background(), embedder, "golang experience")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, vec)
}
