// Package filter provides the pure tag and text filters used by the
// library and exercise-picker views. Nothing here mutates its inputs.
package filter

import (
	"sort"
	"strings"

	"github.com/liftlog-dev/liftlog/internal/models"
)

// ByTags keeps only exercises whose tag set contains every selected
// tag, compared case-insensitively. Filtering is conjunctive: selecting
// "push" and "chest" matches exercises tagged with both, not either.
// An empty selection returns the input unchanged.
func ByTags(exercises []models.Exercise, selected []string) []models.Exercise {
	if len(selected) == 0 {
		return exercises
	}

	out := make([]models.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if hasAllTags(ex, selected) {
			out = append(out, ex)
		}
	}
	return out
}

func hasAllTags(ex models.Exercise, selected []string) bool {
	if len(ex.Tags) == 0 {
		return false
	}
	have := make(map[string]bool, len(ex.Tags))
	for _, t := range ex.Tags {
		have[strings.ToLower(t)] = true
	}
	for _, want := range selected {
		if !have[strings.ToLower(want)] {
			return false
		}
	}
	return true
}

// ByText keeps exercises whose name contains the query,
// case-insensitively. An empty query returns the input unchanged.
func ByText(exercises []models.Exercise, query string) []models.Exercise {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return exercises
	}

	out := make([]models.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if strings.Contains(strings.ToLower(ex.Name), query) {
			out = append(out, ex)
		}
	}
	return out
}

// Apply composes both filters, tags first.
func Apply(exercises []models.Exercise, selected []string, query string) []models.Exercise {
	return ByText(ByTags(exercises, selected), query)
}

// Tags returns the union of all tags across the exercises, lower-cased,
// deduplicated and sorted.
func Tags(exercises []models.Exercise) []string {
	seen := make(map[string]bool)
	for _, ex := range exercises {
		for _, t := range ex.Tags {
			seen[strings.ToLower(t)] = true
		}
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
