package parser

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"resume-insight/internal/config"
)

// openaiMaxBatchSize OpenAI Embedding API单次请求的最大文本数
const openaiMaxBatchSize = 100

// OpenAIEmbedder OpenAI嵌入客户端
type OpenAIEmbedder struct {
	client     openai.Client
	model      string
	dimensions int
}

// 确保OpenAIEmbedder实现了Embedder接口
var _ Embedder = (*OpenAIEmbedder)(nil)

// NewOpenAIEmbedder 创建新的OpenAI Embedder
func NewOpenAIEmbedder(apiKey string, embeddingCfg config.EmbeddingConfig) (*OpenAIEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API密钥不能为空")
	}

	model := embeddingCfg.Model
	if model == "" {
		model = "text-embedding-3-small"
	}
	dimensions := embeddingCfg.Dimensions
	if dimensions <= 0 {
		dimensions = 1536
	}

	return &OpenAIEmbedder{
		client:     openai.NewClient(option.WithAPIKey(apiKey)),
		model:      model,
		dimensions: dimensions,
	}, nil
}

// EmbedStrings 批量将文本转换为向量，超过单次上限时分批请求
func (o *OpenAIEmbedder) EmbedStrings(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	out := make([][]float64, 0, len(texts))
	for start := 0; start < len(texts); start += openaiMaxBatchSize {
		end := start + openaiMaxBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch, err := o.embedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (o *OpenAIEmbedder) embedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(o.model),
	}
	if len(texts) == 1 {
		params.Input = openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(texts[0]),
		}
	} else {
		params.Input = openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		}
	}
	if o.dimensions > 0 {
		params.Dimensions = openai.Int(int64(o.dimensions))
	}

	resp, err := o.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("OpenAI嵌入请求失败: %w", err)
	}

	embeddings := make([][]float64, len(resp.Data))
	for i, data := range resp.Data {
		embeddings[i] = data.Embedding
	}
	return embeddings, nil
}

// Dimensions 返回向量维度
func (o *OpenAIEmbedder) Dimensions() int {
	return o.dimensions
}

// ModelID 返回嵌入模型标识
func (o *OpenAIEmbedder) ModelID() string {
	return o.model
}
