package cli

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"todo-list/internal/view"
	"todo-list/internal/web"
)

// ServeCommand runs the web server until ctx is cancelled
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute runs the serve command
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	cfg := c.app.config

	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	renderer, err := view.NewRenderer(cfg.Display.TimeFormat)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	server := web.NewServer(c.app.service, renderer, c.app.log, web.Options{
		Addr:            cfg.Address(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	return server.Run(ctx)
}
