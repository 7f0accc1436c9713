package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/gabapcia/firmchain/internal/firm"
	"github.com/gabapcia/firmchain/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the firm CLI application.
//
// It registers all available commands, including:
//
//   - `code`: Prints the confirmed code of a contract.
//   - `receipt`: Prints the confirmed receipt of a transaction.
//   - `logs`: Prints the logs of the confirmed block matching a filter.
//   - `watch`: Streams confirmed logs matching a filter until interrupted.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - client: The firm client every command reads through.
func Run(ctx context.Context, client *firm.Client) error {
	return newApp(client).Run(ctx, os.Args)
}

func newApp(client *firm.Client) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "firm",
		Description:           "Reads Ethereum values only once they are buried under enough confirmed blocks.",
		Usage:                 "firm [--certainty N] [command] [flags]",
		Writer:                os.Stdout,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "certainty",
				Usage: "Confirmation depth in blocks; overrides FIRM_CERTAINTY",
			},
		},
		Commands: []*cli.Command{
			getCodeCommand(client),
			getReceiptCommand(client),
			getLogsCommand(client),
			watchLogsCommand(client),
		},
	}
}

// resolveClient applies the global --certainty flag when it was given.
func resolveClient(c *cli.Command, client *firm.Client) *firm.Client {
	if c.IsSet("certainty") {
		return client.WithCertainty(c.Uint64("certainty"))
	}

	return client
}

// reportProgress logs failures of a confirmed read.
func reportProgress(ctx context.Context, err error) {
	logger.Warn(ctx, "confirmed read failed", "error", err)
}

// printJSON writes v as a single JSON line to the command output.
func printJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
