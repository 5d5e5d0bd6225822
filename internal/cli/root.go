package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/liftlog-dev/liftlog/internal/storage"
	"github.com/liftlog-dev/liftlog/internal/store"
	"github.com/liftlog-dev/liftlog/internal/transfer"
)

type Context struct {
	Provider storage.Provider
	Store    *store.Store
}

// open loads the provider and hydrates the domain store. Every command
// except init goes through here.
func (ctx *Context) open() error {
	if err := ctx.Provider.Load(); err != nil {
		return err
	}
	return ctx.Store.Load()
}

// parseTags splits a comma-separated tag list, trimming whitespace and
// dropping empties.
func parseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// confirmPrompt asks a y/N question on stdin and reports the answer.
func confirmPrompt(message string) (bool, error) {
	fmt.Printf("%s [y/N]: ", message)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// friendlyError rewrites domain sentinel errors into the messages shown
// to the user; anything else passes through unchanged.
func friendlyError(err error) error {
	switch {
	case errors.Is(err, store.ErrEmptyName):
		return fmt.Errorf("please enter a name")
	case errors.Is(err, store.ErrDuplicateName):
		return fmt.Errorf("an exercise with this name already exists")
	case errors.Is(err, store.ErrEmptyExerciseList):
		return fmt.Errorf("please select at least one exercise")
	case errors.Is(err, store.ErrMissingDate):
		return fmt.Errorf("please select a date")
	case errors.Is(err, transfer.ErrInvalidFormat):
		return fmt.Errorf("invalid file format")
	default:
		return err
	}
}
