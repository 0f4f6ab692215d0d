package cmd

import (
	"log"
	"net/http"

	"github.com/rentcheck/rentcheck/internal/engine"
	"github.com/rentcheck/rentcheck/internal/history"
	"github.com/rentcheck/rentcheck/internal/httpapi"
	"github.com/rentcheck/rentcheck/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evaluation engine over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", ":8080", "listen address")
	serveCmd.Flags().String("db", "rentcheck.db", "history database path; 'off' disables persistence")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("server.database", serveCmd.Flags().Lookup("db"))
}

func serve() {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	var store httpapi.EvaluationStore
	if config.Server.Database != "" && config.Server.Database != "off" {
		sqlStore, err := history.Open(config.Server.Database)
		if err != nil {
			zlog.Fatal("opening history database",
				zap.Error(err),
				zap.String("database", config.Server.Database),
			)
		}
		defer sqlStore.Close()
		store = sqlStore

		zlog.Info("history enabled", zap.String("database", config.Server.Database))
	} else {
		zlog.Info("history disabled")
	}

	e := engine.New(config.Scoring, zlog)
	server := httpapi.NewServer(e, store, zlog)

	zlog.Info("starting the rentcheck api",
		zap.String("version", version),
		zap.String("listen", config.Server.Listen),
	)

	if err := http.ListenAndServe(config.Server.Listen, server.Routes()); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
