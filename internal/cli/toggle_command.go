package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/validation"
)

// ToggleCommand flips the done flag of one item
type ToggleCommand struct {
	app          *App
	out          io.Writer
	validator    *validation.ItemValidator
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App, out io.Writer) *ToggleCommand {
	return &ToggleCommand{
		app:          app,
		out:          out,
		validator:    validation.NewItemValidator(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the toggle command
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	id, err := c.validator.ParseItemID(args[0])
	if err != nil {
		return c.errorHandler.Handle("toggle item", err)
	}

	item, err := c.app.service.ToggleItem(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("toggle item", err)
	}

	fmt.Fprintf(c.out, "Item %d is now %s: %s\n", item.ID, item.Status(), item.Title)
	return nil
}
