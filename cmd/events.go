package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/josephlewis42/mysh/core/config"
	"github.com/josephlewis42/mysh/core/logger"
	"github.com/josephlewis42/mysh/core/shell"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// openEvents starts a session on the configured event log. Logging problems
// are reported but never stop the interpreter.
func openEvents(cfg *config.Configuration, cliLog *log.Logger) (shell.EventRecorder, func()) {
	fd, err := cfg.OpenEventLog()
	switch {
	case errors.Is(err, config.ErrNoEventLog):
		return nil, func() {}
	case err != nil:
		cliLog.Printf("Couldn't open event log: %v", err)
		return nil, func() {}
	}

	return logger.NewJsonLinesLogRecorder(fd).NewSession(), func() { fd.Close() }
}

func recordEvent(events shell.EventRecorder, cliLog *log.Logger, event logger.LogType) {
	if events == nil {
		return
	}
	if err := events.Record(event); err != nil {
		cliLog.Printf("Couldn't record event: %v", err)
	}
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the interpreter event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Show a report of events.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		config, err := loadConfig()
		if err != nil {
			return err
		}

		fd, err := config.ReadEventLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		var report logger.Report
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
}
