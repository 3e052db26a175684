package vector

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"path"

	"resume-insight/internal/storage"
)

// 持久化对象名
const (
	indexObjectName = "index.gob"
	metaObjectName  = "meta.json"
)

// indexMeta 索引的旁路元数据记录
// 记录分块文本、维度与模型标识，保证重新加载的索引
// 只能配合同一模型产出的查询向量使用
type indexMeta struct {
	IndexID     string   `json:"index_id"`
	ModelID     string   `json:"model_id"`
	Dim         int      `json:"dim"`
	VectorCount int      `json:"vector_count"`
	Chunks      []string `json:"chunks"`
}

// SaveIndex 将索引持久化到对象存储的prefix路径下
// 索引结构以gob写入，元数据以JSON旁路记录
func SaveIndex(ctx context.Context, store storage.ObjectStore, prefix string, idx *Index) error {
	if idx == nil {
		return fmt.Errorf("索引不能为空")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(idx.Vectors); err != nil {
		return fmt.Errorf("编码索引结构失败: %w", err)
	}
	if err := store.PutObject(ctx, path.Join(prefix, indexObjectName), buf.Bytes()); err != nil {
		return fmt.Errorf("写入索引结构失败: %w", err)
	}

	meta := indexMeta{
		IndexID:     idx.ID,
		ModelID:     idx.ModelID,
		Dim:         idx.Dim,
		VectorCount: len(idx.Vectors),
		Chunks:      idx.Chunks,
	}
	metaData, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("编码索引元数据失败: %w", err)
	}
	if err := store.PutObject(ctx, path.Join(prefix, metaObjectName), metaData); err != nil {
		return fmt.Errorf("写入索引元数据失败: %w", err)
	}

	return nil
}

// LoadIndex 从对象存储恢复索引
// 平铺L2索引的结构就是向量矩阵本身，恢复后即可直接检索，
// 不需要额外重建原始嵌入缓冲
func LoadIndex(ctx context.Context, store storage.ObjectStore, prefix string) (*Index, error) {
	metaData, err := store.GetObject(ctx, path.Join(prefix, metaObjectName))
	if err != nil {
		return nil, fmt.Errorf("读取索引元数据失败: %w", err)
	}
	var meta indexMeta
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("解析索引元数据失败: %w", err)
	}

	indexData, err := store.GetObject(ctx, path.Join(prefix, indexObjectName))
	if err != nil {
		return nil, fmt.Errorf("读取索引结构失败: %w", err)
	}
	var vectors [][]float64
	if err := gob.NewDecoder(bytes.NewReader(indexData)).Decode(&vectors); err != nil {
		return nil, fmt.Errorf("解码索引结构失败: %w", err)
	}

	if len(vectors) != meta.VectorCount || len(vectors) != len(meta.Chunks) {
		return nil, fmt.Errorf("索引结构与元数据不一致: vectors=%d meta=%d chunks=%d",
			len(vectors), meta.VectorCount, len(meta.Chunks))
	}

	return &Index{
		ID:      meta.IndexID,
		ModelID: meta.ModelID,
		Dim:     meta.Dim,
		Chunks:  meta.Chunks,
		Vectors: vectors,
	}, nil
}
