package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ObjectStore 对象存储接口
// 向量索引持久化的落盘边界，实现可以是本地文件系统或远端对象存储
type ObjectStore interface {
	// PutObject 写入对象，已存在时覆盖
	PutObject(ctx context.Context, objectName string, data []byte) error

	// GetObject 读取对象的全部内容
	GetObject(ctx context.Context, objectName string) ([]byte, error)
}

// 确保LocalStore实现了ObjectStore接口
var _ ObjectStore = (*LocalStore)(nil)

// LocalStore 基于本地文件系统的对象存储
type LocalStore struct {
	root string
}

// NewLocalStore 创建以root为根目录的本地存储
func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("存储根目录不能为空")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("创建存储根目录失败: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// PutObject 将对象写入根目录下的相对路径
func (s *LocalStore) PutObject(ctx context.Context, objectName string, data []byte) error {
	path := filepath.Join(s.root, filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建对象目录失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入对象 %s 失败: %w", objectName, err)
	}
	return nil
}

// GetObject 读取根目录下相对路径的对象
func (s *LocalStore) GetObject(ctx context.Context, objectName string) ([]byte, error) {
	path := filepath.Join(s.root, filepath.FromSlash(objectName))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取对象 %s 失败: %w", objectName, err)
	}
	return data, nil
}
