package job

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// idNamespace: пространство имён для детерминированных ID вакансий.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Job описывает одну вакансию. Все текстовые поля необязательны;
// отсутствующие значения хранятся как пустая строка.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
}

// New builds a job and derives its ID from the text fields.
func New(title, description, company, location string) Job {
	j := Job{Title: title, Description: description, Company: company, Location: location}
	j.ID = j.DerivedID()
	return j
}

// DerivedID is a stable SHA-1 UUID over the record's text fields.
func (j Job) DerivedID() uuid.UUID {
	key := j.Title + "\x00" + j.Description + "\x00" + j.Company + "\x00" + j.Location
	return uuid.NewSHA1(idNamespace, []byte(key))
}

// SkillText is the text searched for skills: title and description.
func (j Job) SkillText() string {
	return j.Title + "\n" + j.Description
}

// UnmarshalJSON accepts loosely shaped records: missing, null or non-string
// text fields become "", and a missing or invalid id is derived.
func (j *Job) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*j = Job{
		Title:       str(raw["title"]),
		Description: str(raw["description"]),
		Company:     str(raw["company"]),
		Location:    str(raw["location"]),
	}
	if id, err := uuid.Parse(str(raw["id"])); err == nil {
		j.ID = id
	} else {
		j.ID = j.DerivedID()
	}
	return nil
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// Texts maps jobs to their SkillText.
func Texts(jobs []Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.SkillText())
	}
	return out
}

// Repository: порт для чтения базового набора вакансий.
type Repository interface {
	List(ctx context.Context) ([]Job, error)
}
