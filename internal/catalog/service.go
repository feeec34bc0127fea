// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"promptoteka/internal/models"
	"promptoteka/internal/taxonomy"
)

// PromptSource is the slice of the prompt store the classification service
// needs. Declared here so the service can be tested without a database.
type PromptSource interface {
	ListUncategorized() ([]models.Prompt, error)
	UpdateCategory(id uuid.UUID, c taxonomy.Category) error
}

// Service runs tag-based classification over the prompt catalog and
// persists the results. The taxonomy and the store are explicit
// dependencies; the service holds no caches of its own.
type Service struct {
	prompts PromptSource
}

// NewService creates a classification service over the given prompt source.
func NewService(prompts PromptSource) *Service {
	return &Service{prompts: prompts}
}

// ClassifyAll assigns a category to every prompt that does not have one yet
// and writes the assignment back through the store. It returns the number
// of prompts classified. A write failure aborts the batch so a retry
// resumes exactly where it stopped.
func (s *Service) ClassifyAll() (int, error) {
	pending, err := s.prompts.ListUncategorized()
	if err != nil {
		return 0, fmt.Errorf("classify all: %w", err)
	}

	classified := 0
	for _, p := range pending {
		c := taxonomy.Classify(p.Tags)
		if err := s.prompts.UpdateCategory(p.ID, c); err != nil {
			return classified, fmt.Errorf("classify prompt %s: %w", p.ID, err)
		}
		classified++
	}

	if classified > 0 {
		slog.Info("prompts classified", "count", classified)
	}
	return classified, nil
}
