package cli

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sampstat "github.com/jgbaldwinbrown/sampstat/pkg"
)

func (a *app) ttestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ttest FILE_A FILE_B",
		Short: "Two-sample t-statistic between two inputs",
		Long: `Summarizes both inputs as samples and reports the t-statistic of
their difference in means. By default the deviations are pooled as
sd/n; --welch pools variances (sd^2/n) instead.

The reported p-value is a fixed placeholder.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.readOptions()
			if err != nil {
				return err
			}
			policy := a.policy()
			formula := sampstat.Legacy
			if a.v.GetBool("welch") {
				formula = sampstat.Welch
			}

			var samples [2]sampstat.SampleStatistics
			for i, path := range args {
				fs, err := sampstat.ReadObservationsPath(path, opts)
				if err != nil {
					return err
				}
				samples[i], err = policy.SampleStatistics(fs)
				if err != nil {
					return errors.Wrapf(err, "ttest %v", path)
				}
			}

			res, err := policy.TTest(formula, samples[0], samples[1])
			if err != nil {
				return err
			}
			if res.Placeholder {
				logrus.Warnf("p-value %v is a placeholder, not computed from the t distribution", res.PValue)
			}

			row := sampstat.TTestRow{A: args[0], B: args[1], Formula: formula, TTestResult: res}
			if a.v.GetBool("json") {
				return a.write(cmd, func(w io.Writer) error {
					return sampstat.WriteTTestJson(w, row)
				})
			}
			return a.write(cmd, func(w io.Writer) error {
				return sampstat.WriteTTest(w, row)
			})
		},
	}

	cmd.Flags().Bool("welch", false, "Pool variances instead of standard deviations")
	a.bind(cmd.Flags(), "welch")
	return cmd
}
