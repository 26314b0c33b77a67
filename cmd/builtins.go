package cmd

import (
	"fmt"
	"sort"

	"github.com/josephlewis42/mysh/core/shell"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands the interpreter handles itself.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var builtins []string

		for name := range shell.AllBuiltins {
			builtins = append(builtins, "builtin:"+name)
		}

		for _, keyword := range []string{shell.KeywordThen, shell.KeywordElse, shell.ExitLine} {
			builtins = append(builtins, "keyword:"+keyword)
		}

		sort.Strings(builtins)

		for _, v := range builtins {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
