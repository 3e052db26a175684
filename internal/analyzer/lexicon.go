package analyzer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon 技能词表配置
// 只读词汇表，在构造提取器时注入，便于测试时替换
type Lexicon struct {
	// BaseSkills 基础技能词（编程语言、框架、数据库、云与DevOps工具等）
	BaseSkills []string `yaml:"base_skills"`
	// MultiWordSkills 需要整体匹配的多词技能短语
	MultiWordSkills []string `yaml:"multi_word_skills"`
	// Variations 规范技能名到文本变体的映射
	Variations map[string][]string `yaml:"variations"`
	// Stopwords 需要剔除的常见虚词
	Stopwords []string `yaml:"stopwords"`
}

// LoadLexicon 从YAML文件加载自定义词表
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("读取词表文件失败: %w", err)
	}
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicon{}, fmt.Errorf("解析词表文件失败: %w", err)
	}
	return lex, nil
}

// DefaultLexicon 内置技能词表
func DefaultLexicon() Lexicon {
	return Lexicon{
		BaseSkills: []string{
			// 编程语言
			"python", "java", "javascript", "typescript", "c++", "c#", "c", "go", "rust",
			"php", "ruby", "swift", "kotlin", "scala", "r", "matlab", "perl", "shell",
			"bash", "powershell",
			// Web框架与库
			"react", "angular", "vue", "svelte", "django", "flask", "fastapi", "express",
			"node", "nodejs", "spring", "laravel", "rails", "asp.net", "blazor",
			// 数据库
			"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "cassandra",
			"elasticsearch", "sqlite", "oracle", "mssql", "dynamodb", "firebase",
			// 云与DevOps
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
			"jenkins", "gitlab", "github", "ci/cd", "nginx", "apache", "linux", "unix",
			"windows",
			// 数据科学与机器学习
			"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
			"matplotlib", "seaborn", "jupyter", "anaconda", "ml", "machine learning",
			"deep learning", "nlp", "opencv", "spark", "hadoop", "kafka", "airflow",
			// 工具
			"git", "svn", "jira", "confluence", "slack", "teams", "figma", "adobe",
			"photoshop", "excel", "powerbi", "tableau", "looker", "grafana",
			// API与Web技术
			"rest", "restful", "graphql", "soap", "json", "xml", "html", "css", "sass",
			"less", "bootstrap", "tailwind", "webpack", "vite", "npm", "yarn",
			// 方法论与实践
			"agile", "scrum", "kanban", "devops", "tdd", "bdd", "microservices", "api",
			"mvp", "lean", "waterfall",
			// 移动开发
			"ios", "android", "react native", "flutter", "xamarin", "cordova", "ionic",
			// 测试
			"junit", "pytest", "jest", "selenium", "cypress", "postman", "unit testing",
			"integration testing", "automation testing",
		},
		MultiWordSkills: []string{
			"machine learning", "deep learning", "data analysis", "web development",
			"software development", "unit testing", "integration testing",
			"automation testing", "rest api", "react native", "node.js", "asp.net",
			"ci/cd",
		},
		Variations: map[string][]string{
			"python":     {"python", "py"},
			"javascript": {"javascript", "js", "ecmascript"},
			"postgresql": {"postgresql", "postgres", "psql"},
			"mysql":      {"mysql", "my sql"},
			"aws":        {"aws", "amazon web services"},
			"docker":     {"docker", "containerization"},
			"kubernetes": {"kubernetes", "k8s"},
			"react":      {"react", "reactjs", "react.js"},
			"django":     {"django"},
			"flask":      {"flask"},
			"git":        {"git", "version control"},
			"agile":      {"agile", "scrum"},
			"rest":       {"rest", "restful", "rest api"},
			"ci/cd":      {"ci/cd", "continuous integration", "continuous deployment"},
		},
		Stopwords: []string{
			"and", "or", "the", "a", "an", "for", "to", "in", "on", "with", "of", "by",
			"at", "is", "are", "this", "that", "from", "as", "it", "be", "using",
			"used", "use",
		},
	}
}
