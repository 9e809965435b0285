// Package seed は名簿の初期データを読み込みます。
package seed

import (
	"fmt"
	"os"

	"github.com/ogurasousui/employee-directory/internal/core/employee"
	"gopkg.in/yaml.v3"
)

type file struct {
	Employees []record `yaml:"employees"`
}

type record struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Age        int    `yaml:"age"`
	Department string `yaml:"department"`
	Status     string `yaml:"status"`
}

// Load は path の YAML から下書きを読み込みます。path が空なら組み込みのサンプルです。
// 値の検証は登録時に行います。
func Load(path string) ([]employee.Draft, error) {
	if path == "" {
		return employee.SampleDrafts(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read file %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("seed: parse yaml: %w", err)
	}

	drafts := make([]employee.Draft, 0, len(f.Employees))
	for _, r := range f.Employees {
		drafts = append(drafts, employee.Draft{
			Name:       r.Name,
			Email:      r.Email,
			Age:        r.Age,
			Department: employee.Department(r.Department),
			Status:     employee.Status(r.Status),
		})
	}
	return drafts, nil
}
