package skills

// Query: параметры запроса статистики навыков.
type Query struct {
	Role  string
	Scale int
}

// Summary: ответ /api/skills.
type Summary struct {
	Role     *string        `json:"role"`
	JobCount int            `json:"job_count"`
	Skills   map[string]int `json:"skills"`
}
