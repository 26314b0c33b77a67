package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/josephlewis42/mysh/core/config"
	"github.com/josephlewis42/mysh/core/logger"
	"github.com/josephlewis42/mysh/core/shell"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string

	// exitCode is returned to the OS once the root command finishes.
	exitCode int
)

func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mysh [BATCH_FILE]",
	Short: "A small line-oriented command interpreter.",
	Long: `mysh runs one command per line. It supports "<" and ">" redirection,
a single "|" pipe, "*" wildcards, then/else conditionals and the cd, pwd and
which builtins.

With no arguments mysh reads from the terminal. Given a file it runs each
line in turn and stops at the first blank line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cliLog := log.New(cmd.ErrOrStderr(), "", 0)
		events, closeEvents := openEvents(cfg, cliLog)
		defer closeEvents()

		stdout := cmd.OutOrStdout()
		sh := shell.New(cmd.InOrStdin(), stdout, cmd.ErrOrStderr(), shell.Options{
			SearchPath:   cfg.SearchPath,
			RedirectMode: cfg.FileMode(),
			Farewell:     cfg.Farewell,
			Color:        colorEnabled(cfg.Color, stdout),
			Events:       events,
		})

		var mode string
		var run func() (int, error)
		switch {
		case cmd.Flags().Changed("command"):
			mode = "command"
			run = func() (int, error) {
				return sh.Run(shell.NewBatchReader(strings.NewReader(commandLine)), shell.Batch)
			}
		case len(args) == 1:
			mode = shell.Batch.String()
			run = func() (int, error) { return runBatch(sh, args[0]) }
		default:
			mode = shell.Interactive.String()
			run = func() (int, error) { return runInteractive(cmd, sh, cfg) }
		}

		recordEvent(events, cliLog, &logger.SessionStart{Mode: mode, Workdir: workdir(), Pid: os.Getpid()})
		code, err := run()
		recordEvent(events, cliLog, &logger.SessionEnd{ExitCode: code, Dispatches: sh.Dispatches()})

		exitCode = code
		if shell.IsFatal(err) {
			// Already reported by the shell.
			exitCode = 1
			return nil
		}
		return err
	},
}

func runBatch(sh *shell.Shell, path string) (int, error) {
	fd, err := afero.NewOsFs().Open(path)
	if err != nil {
		return 1, err
	}
	defer fd.Close()

	return sh.Run(shell.NewBatchReader(fd), shell.Batch)
}

func runInteractive(cmd *cobra.Command, sh *shell.Shell, cfg *config.Configuration) (int, error) {
	stdin := cmd.InOrStdin()
	if cfg.Banner && isTerminal(stdin) {
		sh.Banner()
	}

	reader, err := shell.NewPromptReader(cfg.Prompt, stdin, cmd.OutOrStdout(), cmd.ErrOrStderr(), func() bool {
		return isTerminal(stdin)
	})
	if err != nil {
		return 1, err
	}
	defer reader.Close()

	return sh.Run(reader, shell.Interactive)
}

func workdir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitCode)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config path, built-in defaults if empty")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single line and exit")
}
