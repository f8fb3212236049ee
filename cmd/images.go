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
	"github.com/dustin/go-humanize"
	"github.com/gnames/conslaw/internal/ioimages"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getImagesCmd returns the images command.
func getImagesCmd() *cobra.Command {
	imagesCmd := &cobra.Command{
		Use:   "images <input> [output]",
		Short: "Convert a species image sheet to JSON",
		Long: `Convert a .csv or .xlsx sheet of species images to JSON.

The sheet must have columns 'Tên khoa học', 'URL ảnh', 'Tác giả' and
'Nguồn'. The output is a JSON object keyed by scientific name, every key
holds the list of images of the species in the order of rows. Rows
without a scientific name are skipped.

Without output file the JSON is printed to STDOUT.

Examples:
  conslaw images images.csv images.json
  conslaw images images.xlsx > images.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runImages(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return imagesCmd
}

func runImages(cmd *cobra.Command, args []string) error {
	input := args[0]
	var output string
	if len(args) > 1 {
		output = args[1]
	}

	res, err := ioimages.Convert(input, output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if output == "" {
		return nil
	}
	gn.Info(
		"Saved images of <em>%s</em> species from %s rows to <em>%s</em>",
		humanize.Comma(int64(res.Species)),
		humanize.Comma(int64(res.Rows)), output,
	)
	if res.Skipped > 0 {
		gn.Warn("<warn>%d rows without scientific name were skipped</warn>",
			res.Skipped)
	}
	return nil
}
