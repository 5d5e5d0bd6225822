package filter

import (
	"reflect"
	"testing"

	"github.com/liftlog-dev/liftlog/internal/models"
)

func library() []models.Exercise {
	return []models.Exercise{
		{ID: "1", Name: "Bench Press", Tags: []string{"Chest", "push"}},
		{ID: "2", Name: "Squat", Tags: []string{"legs"}},
		{ID: "3", Name: "Incline Press", Tags: []string{"chest", "push", "dumbbell"}},
		{ID: "4", Name: "Plank"},
	}
}

func names(exs []models.Exercise) []string {
	out := make([]string, len(exs))
	for i, ex := range exs {
		out[i] = ex.Name
	}
	return out
}

func TestByTagsEmptySelectionReturnsAll(t *testing.T) {
	got := ByTags(library(), nil)
	if len(got) != 4 {
		t.Fatalf("expected all 4 exercises, got %d", len(got))
	}
}

func TestByTagsIsConjunctive(t *testing.T) {
	got := names(ByTags(library(), []string{"chest", "push"}))
	want := []string{"Bench Press", "Incline Press"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got = names(ByTags(library(), []string{"chest", "dumbbell"}))
	want = []string{"Incline Press"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestByTagsIsCaseInsensitive(t *testing.T) {
	got := names(ByTags(library(), []string{"CHEST"}))
	want := []string{"Bench Press", "Incline Press"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestByTagsExcludesUntaggedWhenFiltering(t *testing.T) {
	for _, ex := range ByTags(library(), []string{"legs"}) {
		if ex.Name == "Plank" {
			t.Fatal("untagged exercise matched a tag filter")
		}
	}
}

func TestByTextMatchesSubstring(t *testing.T) {
	got := names(ByText(library(), "press"))
	want := []string{"Bench Press", "Incline Press"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestByTextBlankQueryReturnsAll(t *testing.T) {
	if got := ByText(library(), "  "); len(got) != 4 {
		t.Fatalf("expected all 4 exercises, got %d", len(got))
	}
}

func TestApplyCombinesTagsAndText(t *testing.T) {
	got := names(Apply(library(), []string{"push"}, "incline"))
	want := []string{"Incline Press"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTagsUnionSortedLowercase(t *testing.T) {
	got := Tags(library())
	want := []string{"chest", "dumbbell", "legs", "push"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
