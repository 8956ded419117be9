package cli

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	sampstat "github.com/jgbaldwinbrown/sampstat/pkg"
)

type app struct {
	v       *viper.Viper
	cfgFile string
}

// NewRootCmd builds the sampstat command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "sampstat",
		Short: "Descriptive statistics and two-sample t-statistics for columns of numbers",
		Long: `Reads delimited text files (optionally gzipped) holding one observation
per row and reports mean, standard deviation and count, or compares two
files with a t-statistic:

	sampstat describe [opts] FILE...
	sampstat ttest [opts] FILE_A FILE_B

The t-test p-value is a fixed placeholder, not a computed probability.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			a.setLogLevels()
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.sampstat.yaml if present)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.BoolP("debug", "d", false, "Debug output")
	pf.Bool("strict", false, "Fail on inputs too short for a statistic instead of reporting NaN")
	pf.IntP("column", "c", 0, "Zero-based column holding the observations")
	pf.Bool("header", false, "Input files have a header line")
	pf.String("delim", `\t`, "Field delimiter")
	pf.Bool("json", false, "Write JSON lines instead of TSV")
	pf.StringP("output", "o", "", "Output path, default stdout; a .gz path is compressed")
	a.bind(pf, "verbose", "debug", "strict", "column", "header", "delim", "json", "output")

	rootCmd.AddCommand(a.describeCmd(), a.ttestCmd(), a.zscoreCmd())
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func (a *app) bind(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := a.v.BindPFlag(name, fs.Lookup(name)); err != nil {
			logrus.Fatalf("binding flag %v: %v", name, err)
		}
	}
}

func (a *app) loadConfig() error {
	a.v.SetEnvPrefix("SAMPSTAT")
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %v", a.cfgFile)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigName(".sampstat")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config")
	}
	return nil
}

func (a *app) setLogLevels() {
	if a.v.GetBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	} else if a.v.GetBool("verbose") {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
	if f := a.v.ConfigFileUsed(); f != "" {
		logrus.Infof("using config %v", f)
	}
}

func (a *app) policy() sampstat.Policy {
	if a.v.GetBool("strict") {
		return sampstat.Strict
	}
	return sampstat.Permissive
}

func (a *app) readOptions() (sampstat.ReadOptions, error) {
	opts := sampstat.ReadOptions{
		Column: a.v.GetInt("column"),
		Header: a.v.GetBool("header"),
	}
	d := a.v.GetString("delim")
	switch {
	case d == `\t` || d == "tab":
		opts.Delim = '\t'
	case len([]rune(d)) == 1:
		opts.Delim = []rune(d)[0]
	default:
		return opts, errors.Newf("delimiter must be a single character, got %q", d)
	}
	if opts.Column < 0 {
		return opts, errors.Newf("column must not be negative, got %v", opts.Column)
	}
	return opts, nil
}

func (a *app) write(cmd *cobra.Command, write func(io.Writer) error) error {
	out := a.v.GetString("output")
	if out == "" {
		return write(cmd.OutOrStdout())
	}
	logrus.Infof("writing %v", out)
	return sampstat.WritePath(out, write)
}
