package cli

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sampstat "github.com/jgbaldwinbrown/sampstat/pkg"
)

func (a *app) describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [FILE...]",
		Short: "Report mean, standard deviation and count for each input",
		Long: `Summarizes each input file on its own row. With no files, reads
standard input. "-" also names standard input.

	--population: divide by n instead of n-1
	--list:       file listing further input paths, one per line`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.readOptions()
			if err != nil {
				return err
			}

			paths := append([]string(nil), args...)
			if list := a.v.GetString("list"); list != "" {
				listed, err := sampstat.ReadPathList(list)
				if err != nil {
					return err
				}
				paths = append(paths, listed...)
			}
			if len(paths) == 0 {
				paths = []string{"-"}
			}

			kind := sampstat.Sample
			if a.v.GetBool("population") {
				kind = sampstat.Population
			}
			policy := a.policy()

			rows := make([]sampstat.SummaryRow, 0, len(paths))
			for _, path := range paths {
				fs, err := sampstat.ReadObservationsPath(path, opts)
				if err != nil {
					return err
				}
				s, err := policy.Summarize(kind, fs)
				if err != nil {
					return errors.Wrapf(err, "describe %v", path)
				}
				logrus.Debugf("%v: %+v", path, s)
				rows = append(rows, sampstat.SummaryRow{Name: path, Kind: kind, Summary: s})
			}

			if a.v.GetBool("json") {
				return a.write(cmd, func(w io.Writer) error {
					return sampstat.WriteSummariesJson(w, rows...)
				})
			}
			return a.write(cmd, func(w io.Writer) error {
				return sampstat.WriteSummaries(w, rows...)
			})
		},
	}

	cmd.Flags().BoolP("population", "p", false, "Use the population standard deviation")
	cmd.Flags().StringP("list", "l", "", "File listing input paths, one per line")
	a.bind(cmd.Flags(), "population", "list")
	return cmd
}
