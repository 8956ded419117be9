package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sampstat "github.com/jgbaldwinbrown/sampstat/pkg"
)

func (a *app) zscoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zscore [FILE]",
		Short: "Standardize each observation against its input's mean and deviation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.readOptions()
			if err != nil {
				return err
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			fs, err := sampstat.ReadObservationsPath(path, opts)
			if err != nil {
				return err
			}
			kind := sampstat.Sample
			if a.v.GetBool("zpopulation") {
				kind = sampstat.Population
			}
			zs, err := a.policy().Zscores(kind, fs)
			if err != nil {
				return err
			}
			return a.write(cmd, func(w io.Writer) error {
				for _, z := range zs {
					if _, e := fmt.Fprintln(w, z); e != nil {
						return e
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolP("population", "p", false, "Use the population standard deviation")
	if err := a.v.BindPFlag("zpopulation", cmd.Flags().Lookup("population")); err != nil {
		logrus.Fatalf("binding flag population: %v", err)
	}
	return cmd
}
