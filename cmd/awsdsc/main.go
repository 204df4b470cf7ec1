// awsdsc — a universal describe command for AWS resources.
package main

import (
	"fmt"
	"os"

	"github.com/awsdsc/awsdsc/cmd/awsdsc/cli"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := cli.NewRootCommand(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
