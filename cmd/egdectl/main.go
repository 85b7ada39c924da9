package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axobase/egde/cmd/egdectl/commands"
)

var rootCmd = &cobra.Command{
	Use:   "egdectl",
	Short: "Axobase EGDE CLI",
	Long:  `Command line interface for the Axobase evolutionary genome and decision engine.`,
}

func init() {
	rootCmd.AddCommand(commands.GenesisCmd)
	rootCmd.AddCommand(commands.ExpressCmd)
	rootCmd.AddCommand(commands.BreedCmd)
	rootCmd.AddCommand(commands.KeygenCmd)
	rootCmd.AddCommand(commands.ServeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
