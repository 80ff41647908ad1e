// Package app wires the lookup client, its optional cache, the AnkiWeb client
// and the card template into the actions used by both binaries.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/darkclainer/sonago/pkg/actions"
	"github.com/darkclainer/sonago/pkg/ankiweb"
	"github.com/darkclainer/sonago/pkg/browser"
	"github.com/darkclainer/sonago/pkg/cardtpl"
	"github.com/darkclainer/sonago/pkg/sonapi"
)

const EnvPrefix = "SONAGO"

type AnkiWebConfig struct {
	LoginURL      string
	SearchTimeout time.Duration
	Headless      bool
	ExecPath      string
	UserAgent     string
	NoSandbox     bool
}

type Config struct {
	Remote  sonapi.Config
	Cached  sonapi.CachedConfig
	AnkiWeb AnkiWebConfig
	// Template is a path to a tengo card template, empty for the default one
	Template string
}

// BindViper sets defaults and environment bindings for the Config keys.
func BindViper(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("ankiweb.headless", true)
	// AutomaticEnv only sees keys viper already knows about
	for _, key := range []string{
		"remote.host", "remote.protocol", "remote.timeout", "remote.maxworkers",
		"cached.path", "cached.inmemory", "cached.ttl",
		"ankiweb.loginurl", "ankiweb.searchtimeout", "ankiweb.execpath", "ankiweb.useragent",
		"ankiweb.nosandbox",
		"template",
	} {
		_ = v.BindEnv(key)
	}
}

type App struct {
	Actions  *actions.Actions
	Lookuper sonapi.Lookuper
}

func New(conf *Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var lookuper sonapi.Lookuper = sonapi.NewRemote(nil, &conf.Remote)
	if conf.Cached.Enabled() {
		cached, err := sonapi.NewCached(lookuper, &conf.Cached, logger.Named("cache"))
		if err != nil {
			_ = lookuper.Close(context.Background())
			return nil, err
		}
		lookuper = cached
	}

	template, err := cardtpl.Load(conf.Template)
	if err != nil {
		_ = lookuper.Close(context.Background())
		return nil, fmt.Errorf("can not load card template: %w", err)
	}

	opener := browser.NewChromeOpener(browser.Config{
		Headless:  conf.AnkiWeb.Headless,
		ExecPath:  conf.AnkiWeb.ExecPath,
		UserAgent: conf.AnkiWeb.UserAgent,
		NoSandbox: conf.AnkiWeb.NoSandbox,
	}, logger.Named("browser"))
	cards := ankiweb.NewClient(opener, &ankiweb.Config{
		LoginURL:      conf.AnkiWeb.LoginURL,
		SearchTimeout: conf.AnkiWeb.SearchTimeout,
	}, logger.Named("ankiweb"))

	return &App{
		Actions:  actions.New(lookuper, cards, template, logger.Named("actions")),
		Lookuper: lookuper,
	}, nil
}

func (a *App) Close(ctx context.Context) error {
	return a.Lookuper.Close(ctx)
}
