package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gnames/conslaw/internal/iolaws"
	"github.com/gnames/conslaw/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command)

// yesFlag skips interactive confirmations.
func yesFlag(cmd *cobra.Command) {
	yes, _ := cmd.Flags().GetBool("yes")
	if yes {
		cfg.Update([]config.Option{config.OptYes(true)})
	}
}

// delayFlag returns the delay set on the command line, if any.
func delayFlag(cmd *cobra.Command) (time.Duration, bool) {
	if !cmd.Flags().Changed("delay") {
		return 0, false
	}
	d, _ := cmd.Flags().GetDuration("delay")
	return d, true
}

// dataDirFlag sets the directory with law data files.
func dataDirFlag(cmd *cobra.Command) {
	dir, _ := cmd.Flags().GetString("data-dir")
	if dir != "" {
		cfg.Update([]config.Option{config.OptDataDir(dir)})
	}
}

func addDelayFlag(cmd *cobra.Command, def time.Duration) {
	cmd.Flags().DurationP("delay", "d", def, "pause between requests")
}

func addYesFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "skip confirmation prompts")
}

func addDataDirFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("data-dir", "D", "",
		"directory with law data files (overrides config)")
}

// lawFiles returns files given as arguments or, when there are none, data
// files listed in laws.yaml.
func lawFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	lc, err := iolaws.New(cfg).Load()
	if err != nil {
		return nil, err
	}
	return lc.Files(), nil
}

// confirm asks a yes/no question. Confirmations are skipped with --yes.
func confirm(cmd *cobra.Command, question string) bool {
	if cfg.Yes {
		return true
	}
	return askYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), question)
}

func askYesNo(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s (y/n): ", question)

	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		gn.Warn("Failed to read user input")
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// signalContext is cancelled by Ctrl-C.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
