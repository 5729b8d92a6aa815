package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/wrk/cmd"
	"github.com/mattsolo1/wrk/pkg/service"
)

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(service.ExitCode(err))
	}
}
