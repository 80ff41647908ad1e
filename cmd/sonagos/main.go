package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/darkclainer/sonago/pkg/app"
)

const (
	codeErrorArgs = iota + 1
	codeInternalError
)

func exitf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

type Config struct {
	ZapConfig string
	Host      string

	app.Config `mapstructure:",squash"`
}

func (c *Config) ZapConf() (*zap.Config, error) {
	if c.ZapConfig == "" {
		defaultConf := zap.NewDevelopmentConfig()
		return &defaultConf, nil
	}
	var zapConf zap.Config
	if err := json.Unmarshal([]byte(c.ZapConfig), &zapConf); err != nil {
		return nil, err
	}
	return &zapConf, nil
}

func getConfig(args []string) (*Config, *zap.Config, error) {
	// a missing .env is fine, the environment may be set up otherwise
	_ = godotenv.Load()

	flags := pflag.NewFlagSet("sonagos", pflag.ContinueOnError)
	flags.StringP("config", "c", "config.yaml", "path to local config")
	flags.String("host", "localhost:8080", "address to listen on")
	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	app.BindViper(v)
	if err := v.BindPFlags(flags); err != nil {
		return nil, nil, err
	}
	_ = v.BindEnv("zapconfig")

	configPath := v.GetString("config")
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err == nil {
		fmt.Printf("Using config file: %s\n", configPath)
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, nil, fmt.Errorf("error while unmarshaling config: %w", err)
	}
	zapConf, err := conf.ZapConf()
	if err != nil {
		return nil, nil, err
	}
	return &conf, zapConf, nil
}

func main() {
	conf, zapConf, err := getConfig(os.Args[1:])
	if err != nil {
		exitf(codeErrorArgs, "Failure while parsing arguments: %s\n", err)
	}
	logger, err := zapConf.Build()
	if err != nil {
		exitf(codeErrorArgs, "Failure while instantiating logger: %s\n", err)
	}
	defer logger.Sync()

	logger.Info("Starting server")
	server, err := New(logger, conf)
	if err != nil {
		exitf(codeInternalError, "Can not initialize server: %s\n", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		if err := server.Close(context.Background()); err != nil {
			logger.Error("Shutdown error", zap.Error(err))
			return
		}
	}()

	logger.Info("Listening started", zap.String("address", fmt.Sprintf("http://%s", conf.Host)))
	if err := server.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", zap.Error(err))
		}
	}
	logger.Info("Closed")
}
