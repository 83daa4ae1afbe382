package cli

import (
	"context"
	"fmt"
	"io"
)

// MigrateCommand reports the schema version. Opening the store has already
// applied pending migrations.
type MigrateCommand struct {
	app          *App
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewMigrateCommand creates a new migrate command handler
func NewMigrateCommand(app *App, out io.Writer) *MigrateCommand {
	return &MigrateCommand{app: app, out: out, errorHandler: NewErrorHandler()}
}

// Execute runs the migrate command
func (c *MigrateCommand) Execute(ctx context.Context, args []string) error {
	version, err := c.app.repo.SchemaVersion(ctx)
	if err != nil {
		return c.errorHandler.Handle("read schema version", err)
	}

	fmt.Fprintf(c.out, "Database %s is at schema version %d\n", c.app.config.GetDatabasePath(), version)
	return nil
}
