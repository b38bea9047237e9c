package main

import (
	"context"
	"fmt"
	"os"

	"github.com/belfry/go-anvil/internal/cli"
	"github.com/belfry/go-anvil/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "anvil: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCmd(cfg)
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
