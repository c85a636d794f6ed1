package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", c.Addr)
	if err := deps.Server.Serve(ctx, c.Addr); err != nil && ctx.Err() == nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

