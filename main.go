package main

import (
	"fmt"
	"os"

	"fjacquet/stmt-convert/cmd/batch"
	"fjacquet/stmt-convert/cmd/configcmd"
	"fjacquet/stmt-convert/cmd/convert"
	"fjacquet/stmt-convert/cmd/root"
	"fjacquet/stmt-convert/internal/config"
)

func init() {
	// 1. Load .env before viper reads STMT_* variables
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	// 2. Initialize root command flags
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
