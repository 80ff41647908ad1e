package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/darkclainer/sonago/pkg/ankiweb"
	"github.com/darkclainer/sonago/pkg/app"
)

type cli struct {
	v      *viper.Viper
	out    io.Writer
	logger *zap.Logger
	app    *app.App

	newApp func(conf *app.Config, logger *zap.Logger) (*app.App, error)
}

func newCLI(out io.Writer) *cli {
	return &cli{
		v:      viper.New(),
		out:    out,
		newApp: app.New,
	}
}

func newRootCmd(c *cli) *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:   "sonago",
		Short: "Estonian dictionary lookups and AnkiWeb cards",
		Long: `sonago looks Estonian and English words up in the sonapi.ee dictionary
and adds, checks and finds cards in the current AnkiWeb deck.

AnkiWeb credentials are read from SONAGO_EMAIL and SONAGO_PASSWORD, either in
the environment or in a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	root.PersistentFlags().Bool("verbose", false, "verbose output")
	_ = c.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(
		newWordCmd(c),
		newAddCardCmd(c),
		newHasCardCmd(c),
		newFindCardsCmd(c),
		newAddWordCmd(c),
	)
	return root
}

func (c *cli) setup(cfgFile string) error {
	// a missing .env is fine
	_ = godotenv.Load()

	app.BindViper(c.v)
	_ = c.v.BindEnv("email")
	_ = c.v.BindEnv("password")
	if cfgFile != "" {
		c.v.SetConfigFile(cfgFile)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("can not read config: %w", err)
		}
	}

	if c.logger == nil {
		zapConf := zap.NewDevelopmentConfig()
		if !c.v.GetBool("verbose") {
			zapConf.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}
		logger, err := zapConf.Build()
		if err != nil {
			return fmt.Errorf("can not build logger: %w", err)
		}
		c.logger = logger
	}

	var conf app.Config
	if err := c.v.Unmarshal(&conf); err != nil {
		return fmt.Errorf("error while unmarshaling config: %w", err)
	}
	a, err := c.newApp(&conf, c.logger)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

// close releases what setup opened, it is safe to call when setup did not run.
func (c *cli) close(ctx context.Context) error {
	if c.logger != nil {
		defer c.logger.Sync() // nolint:errcheck
	}
	if c.app == nil {
		return nil
	}
	return c.app.Close(ctx)
}

func (c *cli) credentials() ankiweb.Credentials {
	return ankiweb.Credentials{
		Email:    ankiweb.NewSecret(c.v.GetString("email")),
		Password: ankiweb.NewSecret(c.v.GetString("password")),
	}
}

func (c *cli) printJSON(v interface{}) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "\t")
	return encoder.Encode(v)
}
