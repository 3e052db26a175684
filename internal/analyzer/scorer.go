package analyzer

import (
	"context"
	"io"
	"log"
	"math"
	"strings"

	"resume-insight/internal/types"
)

// ScoringWeights ATS评分权重
// 经验常数：覆盖度权重大于密度权重，密度放大后封顶，
// 表达"技能匹配的广度比重复频次更重要"的设计意图
type ScoringWeights struct {
	Coverage     float64 // 覆盖度权重
	Density      float64 // 密度权重
	DensityBoost float64 // 密度放大倍数
	DensityCap   float64 // 密度加权前的上限
}

// DefaultScoringWeights 返回默认权重
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Coverage:     0.7,
		Density:      0.3,
		DensityBoost: 5.0,
		DensityCap:   1.0,
	}
}

// Scorer 简历与JD的兼容性评分器
type Scorer struct {
	extractor *SkillExtractor
	weights   ScoringWeights
	logger    *log.Logger
}

// ScorerOption 评分器的配置选项
type ScorerOption func(*Scorer)

// WithScoringWeights 覆盖默认评分权重
func WithScoringWeights(weights ScoringWeights) ScorerOption {
	return func(s *Scorer) {
		s.weights = weights
	}
}

// WithScorerLogger 配置自定义日志记录器
func WithScorerLogger(logger *log.Logger) ScorerOption {
	return func(s *Scorer) {
		s.logger = logger
	}
}

// NewScorer 创建评分器
func NewScorer(extractor *SkillExtractor, options ...ScorerOption) *Scorer {
	s := &Scorer{
		extractor: extractor,
		weights:   DefaultScoringWeights(),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// AnalyzeSkills 对比简历与JD的技能集合
// strengths为交集，gaps为JD中简历缺失的部分；JD技能为空时匹配比例为0
func (s *Scorer) AnalyzeSkills(ctx context.Context, resumeText, jdText string) *types.SkillAnalysis {
	resumeSkills := s.extractor.ExtractSkills(ctx, resumeText)
	jdSkills := s.extractor.ExtractSkills(ctx, jdText)

	strengths := resumeSkills.Intersect(jdSkills)
	gaps := jdSkills.Diff(resumeSkills)

	matchedRatio := 0.0
	if len(jdSkills) > 0 {
		matchedRatio = float64(len(strengths)) / float64(len(jdSkills))
	}

	return &types.SkillAnalysis{
		Strengths:    strengths,
		Gaps:         gaps,
		MatchedRatio: matchedRatio,
	}
}

// ComputeATSScore 计算0-100的ATS兼容性得分
// coverage为技能覆盖比例，density为命中技能在简历中的出现频次与词数之比
func (s *Scorer) ComputeATSScore(ctx context.Context, resumeText, jdText string) *types.ATSScore {
	analysis := s.AnalyzeSkills(ctx, resumeText, jdText)

	coverage := analysis.MatchedRatio

	totalTokens := len(strings.Fields(resumeText))
	if totalTokens == 0 {
		totalTokens = 1
	}
	resumeLower := strings.ToLower(resumeText)
	matchedTokens := 0
	for skill := range analysis.Strengths {
		matchedTokens += strings.Count(resumeLower, skill)
	}
	density := float64(matchedTokens) / float64(totalTokens)

	weighted := s.weights.Coverage*coverage +
		s.weights.Density*math.Min(density*s.weights.DensityBoost, s.weights.DensityCap)
	score := math.Round(weighted*100*100) / 100

	s.logger.Printf("ATS评分完成: score=%.2f coverage=%.3f density=%.3f", score, coverage, density)

	return &types.ATSScore{
		Score:         score,
		MatchedSkills: analysis.Strengths,
		MissingSkills: analysis.Gaps,
		Detail: map[string]float64{
			"coverage": coverage,
			"density":  density,
		},
	}
}
