package parser

import "context"

// Entity 命名实体识别结果中的单个实体
type Entity struct {
	// Text 实体在原文中的表面形式
	Text string
	// Label 实体类型标签，例如 ORG、PRODUCT、LANGUAGE、SKILL
	Label string
}

// EntityRecognizer 命名实体识别能力接口
// 模型驱动的外部能力，运行环境中可能不存在
type EntityRecognizer interface {
	ExtractEntities(ctx context.Context, text string) ([]Entity, error)
}

// OptionalNER 可缺省的NER能力
// 可用性是显式状态而非空指针，调用方必须先判断 Available
type OptionalNER struct {
	recognizer EntityRecognizer
}

// AvailableNER 包装一个可用的识别器
func AvailableNER(r EntityRecognizer) OptionalNER {
	return OptionalNER{recognizer: r}
}

// UnavailableNER 表示环境中没有NER能力
func UnavailableNER() OptionalNER {
	return OptionalNER{}
}

// Available 返回NER能力是否存在
func (o OptionalNER) Available() bool {
	return o.recognizer != nil
}

// Recognizer 返回底层识别器，仅在 Available 为真时有效
func (o OptionalNER) Recognizer() EntityRecognizer {
	return o.recognizer
}
