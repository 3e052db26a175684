package analyzer

import (
	"fmt"
	"strings"

	"resume-insight/internal/types"
)

// 量化成果的标志词，用于判断简历是否包含可度量的结果
var impactMarkers = []string{"%", "increased", "reduced", "improved"}

// ImprovementSuggestions 根据技能分析与简历文本的启发式特征生成改进建议
// 规则顺序固定，输出确定且可测试；只覆盖影响最大的问题，并不求穷尽
func ImprovementSuggestions(resumeText string, analysis *types.SkillAnalysis) []string {
	var suggestions []string
	resumeLower := strings.ToLower(resumeText)

	if len(analysis.Gaps) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider adding or demonstrating experience with: %s (if applicable).",
			strings.Join(analysis.Gaps.Sorted(), ", ")))
	}
	if len(strings.Fields(resumeText)) < 200 {
		suggestions = append(suggestions,
			"Resume seems short; consider expanding achievements with quantified impact.")
	}
	if !strings.Contains(resumeLower, "achieved") {
		suggestions = append(suggestions,
			"Include action verbs (achieved, led, improved, optimized) to emphasize impact.")
	}
	if strings.Count(resumeText, "\n\n") < 2 {
		suggestions = append(suggestions,
			"Add clear section breaks (Experience, Skills, Education).")
	}
	if !containsAny(resumeLower, impactMarkers) {
		suggestions = append(suggestions,
			"Quantify results with metrics or percentages.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Resume structure and keywords look solid. Fine-tune bullet specificity for further impact.")
	}
	return suggestions
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
