package types

import "sort"

// SkillSet 规范化后的技能集合（小写、去重、无序）
// 派生数据，每次提取时重新计算，核心内部从不持久化
type SkillSet map[string]struct{}

// NewSkillSet 从任意数量的技能词构建集合
func NewSkillSet(skills ...string) SkillSet {
	s := make(SkillSet, len(skills))
	for _, skill := range skills {
		s[skill] = struct{}{}
	}
	return s
}

// Add 向集合中加入一个技能词
func (s SkillSet) Add(skill string) {
	s[skill] = struct{}{}
}

// Contains 判断技能词是否在集合中
func (s SkillSet) Contains(skill string) bool {
	_, ok := s[skill]
	return ok
}

// Intersect 返回两个集合的交集
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	result := make(SkillSet)
	for skill := range s {
		if other.Contains(skill) {
			result.Add(skill)
		}
	}
	return result
}

// Diff 返回 s 中存在但 other 中不存在的技能
func (s SkillSet) Diff(other SkillSet) SkillSet {
	result := make(SkillSet)
	for skill := range s {
		if !other.Contains(skill) {
			result.Add(skill)
		}
	}
	return result
}

// Union 返回两个集合的并集
func (s SkillSet) Union(other SkillSet) SkillSet {
	result := make(SkillSet, len(s)+len(other))
	for skill := range s {
		result.Add(skill)
	}
	for skill := range other {
		result.Add(skill)
	}
	return result
}

// Sorted 返回按字典序排序的技能列表，用于确定性输出
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// SkillAnalysis 简历与JD的技能对比结果
type SkillAnalysis struct {
	// Strengths 简历与JD技能的交集
	Strengths SkillSet `json:"strengths"`
	// Gaps JD要求但简历中缺失的技能
	Gaps SkillSet `json:"gaps"`
	// MatchedRatio 匹配比例 |Strengths| / |JD技能|，JD技能为空时为0
	MatchedRatio float64 `json:"matched_ratio"`
}

// ATSScore ATS兼容性评分结果 (0-100)
type ATSScore struct {
	// Score 最终得分，保留两位小数
	Score float64 `json:"score"`
	// MatchedSkills 命中的技能，等同于 SkillAnalysis.Strengths
	MatchedSkills SkillSet `json:"matched_skills"`
	// MissingSkills 缺失的技能，等同于 SkillAnalysis.Gaps
	MissingSkills SkillSet `json:"missing_skills"`
	// Detail 子指标明细，至少包含 coverage 与 density
	Detail map[string]float64 `json:"detail"`
}
