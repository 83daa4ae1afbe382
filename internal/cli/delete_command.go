package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/validation"
)

// DeleteCommand permanently removes one item
type DeleteCommand struct {
	app          *App
	out          io.Writer
	validator    *validation.ItemValidator
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App, out io.Writer) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		out:          out,
		validator:    validation.NewItemValidator(),
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := c.validator.ParseItemID(args[0])
	if err != nil {
		return c.errorHandler.Handle("delete item", err)
	}

	if err := c.app.service.DeleteItem(ctx, id); err != nil {
		return c.errorHandler.Handle("delete item", err)
	}

	fmt.Fprintf(c.out, "Deleted item %d\n", id)
	return nil
}
