package file

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	apperrors "github.com/artem13815/skillstat/pkg/errors"
	"github.com/artem13815/skillstat/pkg/job"
)

// JobRepository читает вакансии из JSON-файла: либо массив,
// либо объект с массивом в ключе "jobs".
type JobRepository struct {
	path string
}

func NewJobRepository(path string) *JobRepository {
	return &JobRepository{path: path}
}

func (r *JobRepository) Path() string { return r.path }

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NotFound("jobs file "+r.path, err)
		}
		return nil, apperrors.Unavailable("read jobs file "+r.path, err)
	}
	return Decode(data)
}

// Decode parses either a top-level array of jobs or {"jobs": [...]}.
func Decode(data []byte) ([]job.Job, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.InvalidInput("malformed jobs JSON", err)
	}

	var list []job.Job
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			list = []job.Job{}
		}
		return list, nil
	}

	var wrapped struct {
		Jobs *[]job.Job `json:"jobs"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.Jobs == nil {
		return nil, apperrors.InvalidInput("jobs JSON must be an array or an object with a jobs array", err)
	}
	if *wrapped.Jobs == nil {
		return []job.Job{}, nil
	}
	return *wrapped.Jobs, nil
}
