package cli

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/gabapcia/firmchain/internal/firm"
	"github.com/gabapcia/firmchain/internal/pkg/validator"

	"github.com/urfave/cli/v3"
)

type codeInput struct {
	Address string `validate:"required,eth_addr"`
}

type receiptInput struct {
	Hash string `validate:"required,eth_hash"`
}

// getCodeCommand returns a CLI command that prints the code of a contract
// once it is identical at the head and at the confirmed block.
//
// Usage example:
//
//	firm code --address 0xABC123...
func getCodeCommand(client *firm.Client) *cli.Command {
	return &cli.Command{
		Name:        "code",
		Description: "Print the code deployed at an address once it is confirmed.",
		Usage:       "Waits until the contract code is confirmed and prints it hex-encoded.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Contract address",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			input := codeInput{Address: c.String("address")}
			if err := validator.Validate(input); err != nil {
				return err
			}

			code, err := resolveClient(c, client).GetCode(ctx, common.HexToAddress(input.Address), firm.WithProgress(reportProgress))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, hexutil.Encode(code))
			return err
		},
	}
}

// getReceiptCommand returns a CLI command that prints the receipt of a
// transaction once its block is confirmed.
//
// Usage example:
//
//	firm receipt --hash 0xDEF456...
func getReceiptCommand(client *firm.Client) *cli.Command {
	return &cli.Command{
		Name:        "receipt",
		Description: "Print the receipt of a transaction once its block is confirmed.",
		Usage:       "Waits until the transaction is confirmed and prints its receipt as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "hash",
				Usage:    "Transaction hash",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			input := receiptInput{Hash: c.String("hash")}
			if err := validator.Validate(input); err != nil {
				return err
			}

			receipt, err := resolveClient(c, client).GetTransactionReceipt(ctx, common.HexToHash(input.Hash), firm.WithProgress(reportProgress))
			if err != nil {
				return err
			}

			return printJSON(c.Root().Writer, receipt)
		},
	}
}
