package analyzer_test

import (
	"strings"
	"testing"

	"resume-insight/internal/analyzer"
	"resume-insight/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestImprovementSuggestions_ShortResumeWithGaps 测试短简历触发全部规则
func TestImprovementSuggestions_ShortResumeWithGaps(t *testing.T) {
	analysis := &types.SkillAnalysis{
		Strengths: types.NewSkillSet("python"),
		Gaps:      types.NewSkillSet("kubernetes", "docker"),
	}

	suggestions := analyzer.ImprovementSuggestions("Worked on backend services.", analysis)
	require.Len(t, suggestions, 5)

	// 缺口建议排在第一位，技能按字典序拼接
	assert.Contains(t, suggestions[0], "docker, kubernetes")
	assert.Contains(t, suggestions[1], "Resume seems short")
	assert.Contains(t, suggestions[2], "action verbs")
	assert.Contains(t, suggestions[3], "section breaks")
	assert.Contains(t, suggestions[4], "Quantify results")
}

// TestImprovementSuggestions_NoGaps 测试没有技能缺口时不出现缺口建议
func TestImprovementSuggestions_NoGaps(t *testing.T) {
	analysis := &types.SkillAnalysis{
		Strengths:    types.NewSkillSet("python", "django"),
		Gaps:         types.NewSkillSet(),
		MatchedRatio: 1.0,
	}

	suggestions := analyzer.ImprovementSuggestions("Short resume text.", analysis)
	for _, s := range suggestions {
		assert.NotContains(t, s, "Consider adding")
	}
}

// TestImprovementSuggestions_SolidResume 测试结构完善的简历得到正向反馈
func TestImprovementSuggestions_SolidResume(t *testing.T) {
	// 超过200词、包含量化成果与动作动词、分段清晰
	body := strings.Repeat("delivered measurable outcomes across distributed platform initiatives ", 30)
	resume := "Experience\n\n" +
		"Achieved 40% latency reduction and increased throughput across services. " + body +
		"\n\nSkills\n\nEducation"

	analysis := &types.SkillAnalysis{
		Strengths:    types.NewSkillSet("python", "go"),
		Gaps:         types.NewSkillSet(),
		MatchedRatio: 1.0,
	}

	suggestions := analyzer.ImprovementSuggestions(resume, analysis)
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "look solid")
}

// TestImprovementSuggestions_MissingImpactMarkers 测试缺少量化指标的建议
func TestImprovementSuggestions_MissingImpactMarkers(t *testing.T) {
	body := strings.Repeat("responsible for maintaining internal services and writing documentation ", 30)
	resume := "Experience\n\n" + "Achieved stable operations. " + body + "\n\nSkills\n\nEducation"

	analysis := &types.SkillAnalysis{Gaps: types.NewSkillSet()}

	suggestions := analyzer.ImprovementSuggestions(resume, analysis)
	require.NotEmpty(t, suggestions)

	found := false
	for _, s := range suggestions {
		if strings.Contains(s, "Quantify results") {
			found = true
		}
	}
	assert.True(t, found, "缺少量化指标时应给出对应建议")
}
