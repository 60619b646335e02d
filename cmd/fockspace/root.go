package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/fockspace"
	"github.com/hupe1980/fockspace/binary"
)

const (
	configF   = "config"
	sitesF    = "sites"
	orderF    = "order"
	formatF   = "format"
	logLevelF = "log-level"

	defaultSites    = 2
	defaultOrder    = "reversed"
	defaultFormat   = formatTable
	defaultLogLevel = "warn"

	envPrefix = "FOCKSPACE"

	configFlagUsage = "YAML config file. Explicit flags take precedence over FOCKSPACE_* " +
		"environment variables, which take precedence over the file."
	sitesUsage    = "Number of lattice sites."
	orderUsage    = "Bit order of rendered states: reversed (site 0 leftmost) or natural."
	formatUsage   = "Output format: table or json."
	logLevelUsage = "Log level: debug, info, warn or error."
)

// Config is the resolved CLI configuration.
type Config struct {
	Sites    int    `mapstructure:"sites"`
	Order    string `mapstructure:"order"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log-level"`
}

type app struct {
	cfgFile string
	cfg     Config
	logger  *fockspace.Logger
	basis   *fockspace.FockBasis
}

// NewCmd returns the root command.
func NewCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "fockspace [flags]",
		Short:         "Inspect the Fock basis of spin-1/2 lattice models.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, configF, "", configFlagUsage)
	pf.Int(sitesF, defaultSites, sitesUsage)
	pf.String(orderF, defaultOrder, orderUsage)
	pf.String(formatF, defaultFormat, formatUsage)
	pf.String(logLevelF, defaultLogLevel, logLevelUsage)

	rootCmd.PersistentPreRunE = a.load
	rootCmd.AddCommand(a.sectorsCmd(), a.statesCmd(), a.spinCmd(), a.hubbardCmd())

	return rootCmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if a.cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}
	if err := validateFormat(cfg.Format); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid %s %q: %w", logLevelF, cfg.LogLevel, err)
	}

	order, err := binary.ParseBitOrder(cfg.Order)
	if err != nil {
		return err
	}

	logger := fockspace.NewWriterLogger(cmd.ErrOrStderr(), level)
	basis, err := fockspace.New(cfg.Sites,
		fockspace.WithBitOrder(order),
		fockspace.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.basis = basis
	return nil
}

func (a *app) sector(nUp, nDn int) (*fockspace.BasisSector, error) {
	for _, n := range []int{nUp, nDn} {
		if !a.basis.HasFilling(n) {
			return nil, fmt.Errorf("filling %d not in [0, %d]", n, a.basis.NumSites())
		}
	}
	return a.basis.GetSector(nUp, nDn), nil
}

func parseSpin(s string) (fockspace.Spin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "+1", "1":
		return fockspace.Up, nil
	case "dn", "down", "d", "-1":
		return fockspace.Dn, nil
	default:
		return fockspace.Up, fmt.Errorf("unknown spin %q", s)
	}
}
