// FilePath: server/stockkarte/cmd/stockkarte/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tm "github.com/buger/goterm"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/cli"
	nuts "github.com/vaudience/go-nuts"
)

func main() {
	// Initialize version info
	nuts.InitVersion()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(cli.Options{})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, tm.Color("Error: "+err.Error(), tm.RED))
		stop()
		os.Exit(1)
	}
}
