package cli

import (
	"context"
	"io"

	"hotelsys/config"
	"hotelsys/infras/otel"
	"hotelsys/transport/cli/router"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// CLI dispatches `<hotel|customer|reservation> <op> args...` and `events` to
// the domain handlers. Results are written as JSON to the output writer.
type CLI struct {
	Config *config.Config
	Router router.Router
	Otel   otel.Otel
}

func New(cfg *config.Config, r router.Router, otl otel.Otel) *CLI {
	return &CLI{
		Config: cfg,
		Router: r,
		Otel:   otl,
	}
}

// Run executes the command named by args, which excludes the program name.
func (c *CLI) Run(ctx context.Context, args []string, out io.Writer) error {
	app := c.setup(out)

	log.Debug().Strs("args", args).Msg("Running command.")

	return app.RunContext(ctx, append([]string{c.Config.App.Name}, args...)) //nolint:wrapcheck
}

// Shutdown flushes the spans recorded while running commands.
func (c *CLI) Shutdown(ctx context.Context) error {
	log.Debug().Msg("Flushing traces.")

	return c.Otel.Shutdown(ctx) //nolint:wrapcheck
}

func (c *CLI) setup(out io.Writer) *cli.App {
	app := &cli.App{
		Name:      c.Config.App.Name,
		Usage:     "hotel records and room reservations",
		Writer:    out,
		ErrWriter: out,
		// errors are already written as JSON by the handlers
		ExitErrHandler: func(*cli.Context, error) {},
	}

	c.Router.SetupCommands(app)

	return app
}
