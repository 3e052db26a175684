package analyzer

import (
	"context"
	"io"
	"log"
	"regexp"
	"strings"

	"resume-insight/internal/parser"
	"resume-insight/internal/types"
)

// skillTokenRegex 捕获单词或双词候选，允许 + # . 以命中 c++/c#/node.js 这类词
var skillTokenRegex = regexp.MustCompile(`\b([A-Za-z][A-Za-z+#.]{1,31}(?:\s+[A-Za-z][A-Za-z+#.]{1,31})?)\b`)

// nerSkillLabels 与技能语义接近的实体类型
var nerSkillLabels = map[string]bool{
	"ORG":      true,
	"PRODUCT":  true,
	"LANGUAGE": true,
	"SKILL":    true,
}

// SkillExtractor 词表驱动的技能提取器
// 三轮互补扫描（多词短语、词法token、变体表）取并集，可选NER补充召回；
// 确定性、大小写不敏感，便于审计与复现
type SkillExtractor struct {
	baseSkills      map[string]bool
	multiWordSkills []string
	variations      map[string][]string
	stopwords       map[string]bool
	ner             parser.OptionalNER
	logger          *log.Logger
}

// SkillExtractorOption 提取器的配置选项
type SkillExtractorOption func(*SkillExtractor)

// WithNER 配置可选的NER能力
func WithNER(ner parser.OptionalNER) SkillExtractorOption {
	return func(e *SkillExtractor) {
		e.ner = ner
	}
}

// WithSkillLogger 配置自定义日志记录器
func WithSkillLogger(logger *log.Logger) SkillExtractorOption {
	return func(e *SkillExtractor) {
		e.logger = logger
	}
}

// NewSkillExtractor 基于词表创建技能提取器
func NewSkillExtractor(lex Lexicon, options ...SkillExtractorOption) *SkillExtractor {
	e := &SkillExtractor{
		baseSkills:      make(map[string]bool, len(lex.BaseSkills)),
		multiWordSkills: lex.MultiWordSkills,
		variations:      lex.Variations,
		stopwords:       make(map[string]bool, len(lex.Stopwords)),
		ner:             parser.UnavailableNER(),
		logger:          log.New(io.Discard, "", 0),
	}
	for _, skill := range lex.BaseSkills {
		e.baseSkills[skill] = true
	}
	for _, word := range lex.Stopwords {
		e.stopwords[word] = true
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// ExtractSkills 从任意文本中识别已知技能
// NER能力缺失或失败时静默退化为纯词法扫描，这不是错误场景
func (e *SkillExtractor) ExtractSkills(ctx context.Context, text string) types.SkillSet {
	textLower := strings.ToLower(text)
	skills := make(types.SkillSet)

	// 第一轮：多词短语的直接子串匹配
	for _, phrase := range e.multiWordSkills {
		if strings.Contains(textLower, phrase) {
			skills.Add(phrase)
		}
	}

	// 第二轮：单词/双词token扫描
	for _, match := range skillTokenRegex.FindAllStringSubmatch(text, -1) {
		token := normalizeToken(match[1])
		if e.stopwords[token] || len(token) <= 1 {
			continue
		}
		if e.baseSkills[token] {
			skills.Add(token)
		}
		// 常见变体的子串启发式归一化
		if strings.Contains(token, "postgres") {
			skills.Add("postgresql")
		}
		if strings.Contains(token, "js") && len(token) <= 3 {
			skills.Add("javascript")
		}
		if strings.Contains(token, "node") {
			skills.Add("nodejs")
		}
	}

	// 第三轮：变体表的子串匹配，命中任一变体即加入规范名
	for canonical, variants := range e.variations {
		for _, variant := range variants {
			if strings.Contains(textLower, variant) {
				skills.Add(canonical)
				break
			}
		}
	}

	// 第四轮（可选）：NER补充，只允许召回词表内的已知技能
	if e.ner.Available() {
		e.enrichWithNER(ctx, text, skills)
	}

	return skills
}

// enrichWithNER 用实体识别结果补充召回
// 实体先与基础词表求交集，NER永远不会引入词表之外的词
func (e *SkillExtractor) enrichWithNER(ctx context.Context, text string, skills types.SkillSet) {
	entities, err := e.ner.Recognizer().ExtractEntities(ctx, text)
	if err != nil {
		e.logger.Printf("NER识别失败，继续使用词法扫描结果: %v", err)
		return
	}
	for _, entity := range entities {
		if !nerSkillLabels[entity.Label] {
			continue
		}
		token := normalizeToken(entity.Text)
		if e.baseSkills[token] {
			skills.Add(token)
		}
	}
}

// normalizeToken 小写并去除首尾空白
func normalizeToken(token string) string {
	return strings.TrimSpace(strings.ToLower(token))
}
