/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/conslaw/internal/ioiucn"
	"github.com/gnames/conslaw/internal/iopipeline"
	"github.com/gnames/conslaw/pkg/config"
	"github.com/gnames/conslaw/pkg/format"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// iucnIndent is the indentation of the IUCN status file.
const iucnIndent = 4

// getIUCNCmd returns the iucn command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getIUCNCmd() *cobra.Command {
	var (
		names  []string
		output string
	)

	iucnCmd := &cobra.Command{
		Use:   "iucn [law files...]",
		Short: "Fetch IUCN Red List categories of species",
		Long: `Fetch conservation status from the IUCN Red List API v4.

This command:
  1. Collects unique scientific names from law data files
  2. Queries the API for every name in alphabetical order
  3. Saves found species with their IUCN category to a JSON file
  4. Prints a summary of categories

Law data files are given as arguments or taken from
~/.config/conslaw/laws.yaml. The API token is read from
CONSLAW_IUCN_TOKEN, IUCN_API_TOKEN, a .env file or config.yaml.

Examples:
  conslaw iucn
  conslaw iucn nd06_2019.json nd64_2019.json -o iucn.json
  conslaw iucn -n "Panthera tigris" -n "Manis javanica"
  conslaw iucn -y -d 1s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIUCN(cmd, args, names, output)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	iucnCmd.Flags().StringSliceVarP(&names, "name", "n", nil,
		"query names directly and print results")
	iucnCmd.Flags().StringVarP(&output, "output", "o", "",
		"output file (default: data.iucn_file from config)")
	addDelayFlag(iucnCmd, config.New().IUCN.Delay)
	addYesFlag(iucnCmd)
	addDataDirFlag(iucnCmd)

	return iucnCmd
}

func runIUCN(
	cmd *cobra.Command,
	args []string,
	names []string,
	output string,
) error {
	for _, f := range []funcFlag{yesFlag, dataDirFlag} {
		f(cmd)
	}
	if d, ok := delayFlag(cmd); ok {
		cfg.Update([]config.Option{config.OptIUCNDelay(d)})
	}

	if !cfg.HasToken() {
		gn.Warn(`<warn>IUCN API token is not set.</warn>
   Set <em>IUCN_API_TOKEN</em> or <em>iucn.token</em> in config.yaml.
   Every query will fail as unauthorized.`)
		if !confirm(cmd, "Do you want to continue anyway?") {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	fetcher := ioiucn.New(cfg)
	if len(names) > 0 {
		queryNames(ctx, cmd.OutOrStdout(), fetcher, names)
		return nil
	}

	files, err := lawFiles(args)
	if err != nil {
		return err
	}

	recs, err := collectSpecies(files)
	if err != nil {
		return err
	}

	if output == "" {
		output = cfg.IUCNPath()
	}

	return runStatus(
		ctx, fetcher, format.IUCN, recs, output, iucnIndent,
		iopipeline.OptDelay(cfg.IUCN.Delay),
		iopipeline.OptSorted(true),
	)
}
