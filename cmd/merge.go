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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/internal/iomerge"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getMergeCmd returns the merge command.
func getMergeCmd() *cobra.Command {
	var target string

	mergeCmd := &cobra.Command{
		Use:   "merge [law files...]",
		Short: "Fill Vietnamese common names of a status file",
		Long: `Fill Vietnamese common names of a status file from law data files.

For every species of the status file the common name becomes the first
non-empty Vietnamese common name found in law files, in the order the
files are given. Species without a name get an empty common name. The
status file is rewritten in place, running merge twice changes nothing.

Examples:
  conslaw merge
  conslaw merge -t vnredlist_status.json
  conslaw merge nd06_2019.json nd64_2019.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runMerge(cmd, args, target)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	mergeCmd.Flags().StringVarP(&target, "target", "t", "",
		"status file to update (default: data.iucn_file from config)")
	addDataDirFlag(mergeCmd)

	return mergeCmd
}

func runMerge(cmd *cobra.Command, args []string, target string) error {
	dataDirFlag(cmd)

	files, err := lawFiles(args)
	if err != nil {
		return err
	}

	if target == "" {
		target = cfg.IUCNPath()
	}

	res, err := iomerge.New(target, files...).Merge()
	if err != nil {
		return err
	}

	for _, v := range res.Files {
		gn.Info("<em>%s</em>: %s common names",
			v.Path, humanize.Comma(int64(v.Names)))
	}
	gn.Info(
		"Updated <em>%s</em> species of <em>%s</em> "+
			"(%s with common name, %s without)",
		humanize.Comma(int64(res.Stats.Total)), target,
		humanize.Comma(int64(res.Stats.Matched)),
		humanize.Comma(int64(res.Stats.Unmatched())),
	)

	if len(res.Examples) == 0 {
		return nil
	}
	out, err := iofs.EncodeJSON(res.Examples, 2)
	if err != nil {
		return err
	}
	gn.Info("Examples of merged records:")
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
