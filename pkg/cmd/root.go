package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/c9s/gemini/pkg/cmd/cmdutil"
)

const defaultDotenvFile = ".env.local"

var RootCmd = &cobra.Command{
	Use:   "gemini",
	Short: "gemini exchange api client",
	Long:  "query market data and manage orders on the Gemini exchange through the v1 REST API",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadDotenv(); err != nil {
			return err
		}

		if err := loadConfigFile(); err != nil {
			return err
		}

		return setupLogging()
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file (yaml)")
	RootCmd.PersistentFlags().String("dotenv", defaultDotenvFile, "the dotenv file you want to load")
	RootCmd.PersistentFlags().String("log-file", "", "also write json logs into this file, rotated by size")
	RootCmd.PersistentFlags().StringP("output", "o", string(OutputFormatTable), "output format: table, json or yaml")

	// A flag can be 'persistent' meaning that this flag will be available to
	// the command it's assigned to as well as every command under that command.
	// For global flags, assign a flag as a persistent flag on the root.
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

func loadDotenv() error {
	dotenvFile := viper.GetString("dotenv")
	if len(dotenvFile) == 0 {
		return nil
	}

	if _, err := os.Stat(dotenvFile); err != nil {
		if os.IsNotExist(err) && dotenvFile == defaultDotenvFile {
			return nil
		}

		return errors.Wrapf(err, "unable to load dotenv file %s", dotenvFile)
	}

	log.Debugf("loading dotenv file %s", dotenvFile)
	return godotenv.Load(dotenvFile)
}

func loadConfigFile() error {
	configFile := viper.GetString("config")
	if len(configFile) == 0 {
		return nil
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to load config file %s", configFile)
	}

	log.Debugf("loaded config file %s", viper.ConfigFileUsed())
	return nil
}

func setupLogging() error {
	logger := log.StandardLogger()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&prefixed.TextFormatter{})

	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	logFile := viper.GetString("log-file")
	if len(logFile) == 0 {
		return nil
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
	}

	logger.AddHook(
		lfshook.NewHook(
			lfshook.WriterMap{
				log.DebugLevel: writer,
				log.InfoLevel:  writer,
				log.WarnLevel:  writer,
				log.ErrorLevel: writer,
				log.FatalLevel: writer,
			},
			&log.JSONFormatter{},
		),
	)
	return nil
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
