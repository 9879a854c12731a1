package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// QueryCmd runs a single research query and prints the result.
type QueryCmd struct {
	Query string `arg:"" help:"The research question."`
}

func (c *QueryCmd) Run(cli *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_, researcher, err := buildAgent(cli)
	if err != nil {
		return err
	}

	result := researcher.Research(ctx, c.Query)

	fmt.Println(result.Response)
	fmt.Fprintf(os.Stderr, "\n(%d iterations", result.Iterations)
	if result.TokensUsed > 0 {
		fmt.Fprintf(os.Stderr, ", %d tokens", result.TokensUsed)
	}
	fmt.Fprintln(os.Stderr, ")")

	if !result.Success {
		return fmt.Errorf("research query failed")
	}
	return nil
}
