package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexeykadochnik0v/nextlevel-backend/internal/build"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("build time: %s\n", build.Time)
			fmt.Printf("go version: %s\n", build.GoVersion)
		},
	}
}
