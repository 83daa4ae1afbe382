package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// AddCommand adds a new item from the joined arguments
type AddCommand struct {
	app          *App
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, out io.Writer) *AddCommand {
	return &AddCommand{app: app, out: out, errorHandler: NewErrorHandler()}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")

	item, err := c.app.service.AddItem(ctx, title)
	if err != nil {
		return c.errorHandler.Handle("add item", err)
	}

	if item == nil {
		fmt.Fprintln(c.out, "Nothing added: the title is empty.")
		return nil
	}

	fmt.Fprintf(c.out, "Added item %d: %s\n", item.ID, item.Title)
	return nil
}
