package job

import (
	"strings"

	"github.com/artem13815/skillstat/pkg/nlp"
)

// Filter оставляет вакансии, подходящие под роль.
//
// Сначала сравниваются нормализованные токены роли и title+description;
// если общих токенов нет, роль ищется как подстрока (без учёта регистра)
// в title или description. Пустая роль возвращает jobs как есть.
func Filter(jobs []Job, role string, n nlp.Normalizer) []Job {
	if strings.TrimSpace(role) == "" {
		return jobs
	}
	roleTokens := nlp.TokenSet(n.Normalize(role))
	roleLower := strings.ToLower(role)

	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		jobTokens := nlp.TokenSet(n.Normalize(j.Title + " " + j.Description))
		if nlp.Overlaps(roleTokens, jobTokens) {
			out = append(out, j)
			continue
		}
		if strings.Contains(strings.ToLower(j.Title), roleLower) ||
			strings.Contains(strings.ToLower(j.Description), roleLower) {
			out = append(out, j)
		}
	}
	return out
}
