package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/liftlog-dev/liftlog/internal/store"
)

type exerciseForm struct {
	ID           string
	Name         string
	Tags         string
	Notes        string
	LastWeight   string
	PR           string
	WarmupWeight string
	SetSpec      string
}

func newExerciseForm(ex *models.Exercise) *exerciseForm {
	fm := &exerciseForm{}
	if ex != nil {
		fm.ID = ex.ID
		fm.Name = ex.Name
		fm.Tags = strings.Join(ex.Tags, ", ")
		fm.Notes = ex.Notes
		fm.LastWeight = ex.LastWeight
		fm.PR = ex.PR
		fm.WarmupWeight = ex.WarmupWeight
		fm.SetSpec = ex.SetSpec
	}
	return fm
}

func (fm *exerciseForm) build() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("please enter a name")
					}
					return nil
				}),
			huh.NewInput().
				Title("Tags").
				Description("comma separated, e.g. chest, push").
				Value(&fm.Tags),
			huh.NewInput().
				Title("Notes").
				Value(&fm.Notes),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Last weight").
				Value(&fm.LastWeight),
			huh.NewInput().
				Title("Personal record").
				Value(&fm.PR),
			huh.NewInput().
				Title("Warmup weight").
				Value(&fm.WarmupWeight),
			huh.NewInput().
				Title("Sets x reps").
				Description("free text, e.g. 3x8").
				Value(&fm.SetSpec),
		),
	).WithTheme(huh.ThemeDracula())
}

func (fm *exerciseForm) details() models.ExerciseDetails {
	return models.ExerciseDetails{
		LastWeight:   fm.LastWeight,
		PR:           fm.PR,
		WarmupWeight: fm.WarmupWeight,
		SetSpec:      fm.SetSpec,
	}
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

type presetForm struct {
	ID        string
	Name      string
	Selected  []string // exercise IDs
	available []models.Exercise
}

func newPresetForm(st *store.Store, p *models.Preset) *presetForm {
	fm := &presetForm{available: st.Exercises()}
	if p != nil {
		fm.ID = p.ID
		fm.Name = p.Name
		for _, ref := range p.Exercises {
			fm.Selected = append(fm.Selected, ref.ID)
		}
	}
	return fm
}

func (fm *presetForm) build() *huh.Form {
	opts := make([]huh.Option[string], 0, len(fm.available))
	for _, ex := range fm.available {
		opts = append(opts, huh.NewOption(ex.Name, ex.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Preset name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("please enter a name")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Exercises").
				Options(opts...).
				Value(&fm.Selected).
				Validate(func(ids []string) error {
					if len(ids) == 0 {
						return errors.New("please select at least one exercise")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func (fm *presetForm) refs() []models.ExerciseRef {
	byID := make(map[string]models.Exercise, len(fm.available))
	for _, ex := range fm.available {
		byID[ex.ID] = ex
	}
	refs := make([]models.ExerciseRef, 0, len(fm.Selected))
	for _, id := range fm.Selected {
		if ex, ok := byID[id]; ok {
			refs = append(refs, models.ExerciseRef{ID: ex.ID, Name: ex.Name})
		}
	}
	return refs
}
