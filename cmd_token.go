package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
)

func runToken(cmd *cobra.Command, args []string) error {
	days := tokenDays
	if days == 0 {
		days = envInt("JWT_EXPIRES_DAYS", 14)
	}
	tok, exp, err := httpserver.SignToken(os.Getenv("JWT_SECRET"), args[0], time.Duration(days)*24*time.Hour)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.UTC().Format(time.RFC3339))
	return nil
}
