package firm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Contract binds an ABI to a deployed address. Calls go straight to the
// source; event filters are read at the confirmed block like any Filter.
type Contract struct {
	client  *Client
	abi     abi.ABI
	address common.Address
}

// Contract parses abiJSON and binds it to address.
func (c *Client) Contract(abiJSON string, address common.Address) (*Contract, error) {
	if address == (common.Address{}) {
		return nil, usageError("a contract address is required")
	}

	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, usageError("invalid contract abi: %v", err)
	}

	return &Contract{client: c, abi: parsed, address: address}, nil
}

// Address returns the bound contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

// ABI returns the parsed contract ABI.
func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// WithCertainty returns a copy of c whose event filters read at a different
// depth.
func (c *Contract) WithCertainty(certainty uint64) *Contract {
	return &Contract{client: c.client.WithCertainty(certainty), abi: c.abi, address: c.address}
}

// Call executes a read-only method at the latest block and returns its
// decoded outputs. It carries no confirmation semantics.
func (c *Contract) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, usageError("failed to pack %q call: %v", method, err)
	}

	output, err := c.client.source.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %q: %w", method, err)
	}

	values, err := c.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %q result: %w", method, err)
	}

	return values, nil
}

// Event returns a Filter for the named event emitted by the contract.
// query holds one slice of accepted values per indexed argument, in order;
// a nil slice matches any value.
func (c *Contract) Event(name string, query ...[]any) (*Filter, error) {
	event, ok := c.abi.Events[name]
	if !ok {
		return nil, usageError("event %q not found in abi", name)
	}

	topics, err := abi.MakeTopics(query...)
	if err != nil {
		return nil, usageError("invalid topics for event %q: %v", name, err)
	}

	return newFilter(c.client, ethereum.FilterQuery{
		Addresses: []common.Address{c.address},
		Topics:    append([][]common.Hash{{event.ID}}, topics...),
	}), nil
}

// AllEvents returns a Filter for every log emitted by the contract.
func (c *Contract) AllEvents() *Filter {
	return newFilter(c.client, ethereum.FilterQuery{
		Addresses: []common.Address{c.address},
	})
}

// UnpackLog decodes the indexed and non-indexed arguments of log into out,
// keyed by argument name. It fails when log was not emitted as event.
func (c *Contract) UnpackLog(out map[string]any, event string, log types.Log) error {
	ev, ok := c.abi.Events[event]
	if !ok {
		return usageError("event %q not found in abi", event)
	}

	if len(log.Topics) == 0 || log.Topics[0] != ev.ID {
		return fmt.Errorf("log is not a %q event", event)
	}

	if len(log.Data) > 0 {
		if err := c.abi.UnpackIntoMap(out, event, log.Data); err != nil {
			return fmt.Errorf("failed to unpack %q data: %w", event, err)
		}
	}

	var indexed abi.Arguments
	for _, arg := range ev.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	return abi.ParseTopicsIntoMap(out, indexed, log.Topics[1:])
}
