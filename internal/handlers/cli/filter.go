package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/firmchain/internal/firm"
	"github.com/gabapcia/firmchain/internal/pkg/logger"
	"github.com/gabapcia/firmchain/internal/pkg/validator"

	"github.com/urfave/cli/v3"
)

type filterInput struct {
	Addresses []string `validate:"dive,eth_addr"`
	Topics    []string `validate:"dive,eth_hash"`
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "address",
			Usage: "Emitting contract address; repeat to match any of several",
		},
		&cli.StringSliceFlag{
			Name:  "topic",
			Usage: "Event signature hash (topic 0); repeat to match any of several",
		},
	}
}

// buildFilter validates the filter flags of c and builds the matching filter.
func buildFilter(c *cli.Command, client *firm.Client) (*firm.Filter, error) {
	input := filterInput{
		Addresses: c.StringSlice("address"),
		Topics:    c.StringSlice("topic"),
	}
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	spec := firm.FilterSpec{}
	for _, address := range input.Addresses {
		spec.Addresses = append(spec.Addresses, common.HexToAddress(address))
	}

	if len(input.Topics) > 0 {
		signatures := make([]common.Hash, 0, len(input.Topics))
		for _, topic := range input.Topics {
			signatures = append(signatures, common.HexToHash(topic))
		}
		spec.Topics = [][]common.Hash{signatures}
	}

	return resolveClient(c, client).Filter(spec)
}

// getLogsCommand returns a CLI command that prints the logs of the confirmed
// block matching a filter.
//
// Usage example:
//
//	firm logs --address 0xABC123... --topic 0xddf252ad...
func getLogsCommand(client *firm.Client) *cli.Command {
	return &cli.Command{
		Name:        "logs",
		Description: "Print the logs of the confirmed block that match a filter.",
		Usage:       "Reads the confirmed block once and prints each matching log as a JSON line.",
		Flags:       filterFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			filter, err := buildFilter(c, client)
			if err != nil {
				return err
			}

			logs, err := filter.Get(ctx, firm.WithProgress(reportProgress))
			if err != nil {
				return err
			}

			for _, log := range logs {
				if err := printJSON(c.Root().Writer, log); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// watchLogsCommand returns a CLI command that streams the logs of every newly
// confirmed block matching a filter.
//
// Usage example:
//
//	firm watch --address 0xABC123... --checkpoint-key transfers
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func watchLogsCommand(client *firm.Client) *cli.Command {
	flags := append(filterFlags(), &cli.StringFlag{
		Name:  "checkpoint-key",
		Usage: "Persist the last delivered block under this key so a restart resumes after it",
	})

	return &cli.Command{
		Name:        "watch",
		Description: "Stream the logs of every newly confirmed block that match a filter.",
		Usage:       "Prints each matching log as a JSON line. Terminates gracefully on Ctrl+C or termination signals.",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			filter, err := buildFilter(c, client)
			if err != nil {
				return err
			}

			if key := c.String("checkpoint-key"); key != "" {
				filter = filter.WithCheckpoint(key)
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := c.Root().Writer
			handler := func(ctx context.Context, log types.Log, err error) {
				if err != nil {
					logger.Error(ctx, "watch failed", "error", err)
					return
				}

				if err := printJSON(w, log); err != nil {
					logger.Error(ctx, "failed to print log", "error", err)
				}
			}

			if err := filter.Watch(ctx, handler); err != nil {
				return err
			}
			defer filter.StopWatching()

			<-ctx.Done()
			return nil
		},
	}
}
