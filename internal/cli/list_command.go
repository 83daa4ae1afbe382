package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"todo-list/internal/domain"
)

// ListCommand prints all items, newest first
type ListCommand struct {
	app          *App
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, out io.Writer) *ListCommand {
	return &ListCommand{app: app, out: out, errorHandler: NewErrorHandler()}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	items, err := c.app.service.ListItems(ctx)
	if err != nil {
		return c.errorHandler.Handle("list items", err)
	}

	if len(items) == 0 {
		fmt.Fprintln(c.out, "No items.")
		return nil
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"ID", "Done", "Title", "Created"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	timeFormat := c.app.config.Display.TimeFormat
	table.AppendBulk(lo.Map(items, func(item domain.Item, _ int) []string {
		return []string{
			strconv.FormatInt(item.ID, 10),
			doneMarker(item.Done),
			item.Title,
			item.CreatedAt.Local().Format(timeFormat),
		}
	}))
	table.Render()

	return nil
}

func doneMarker(done bool) string {
	if done {
		return color.New(color.FgGreen).Render("[x]")
	}
	return "[ ]"
}
