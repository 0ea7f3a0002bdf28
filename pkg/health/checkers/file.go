package checkers

import (
	"context"
	"fmt"
	"os"
)

// FileChecker verifies that the jobs file exists and is a regular file.
type FileChecker struct {
	path string
}

func NewFileChecker(path string) *FileChecker {
	return &FileChecker{path: path}
}

func (c *FileChecker) Name() string { return "jobs_file" }

func (c *FileChecker) Check(_ context.Context) error {
	st, err := os.Stat(c.path)
	if err != nil {
		return err
	}
	if !st.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", c.path)
	}
	return nil
}
