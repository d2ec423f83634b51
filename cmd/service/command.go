package service

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/moodnest/moodnest-api/internal/core"
	"github.com/moodnest/moodnest-api/internal/store/sqlstore"
)

type Options struct {
	ConfigPath string
	Install    bool
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
	flagSet.BoolVar(&o.Install, "install", false, "apply database schema before serving")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "journal service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	if opts.Install {
		if provider, ok := app.Store().(*sqlstore.Provider); ok {
			if err := provider.Install(); err != nil {
				return err
			}
		}
	}
	serve(app)

	return nil
}
