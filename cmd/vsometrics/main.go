package main

import (
	"fmt"
	netHttp "net/http"
	"os"

	"github.com/m-zajac/vsometrics/internal/adapter/vso"
	"github.com/m-zajac/vsometrics/internal/app"
	"github.com/m-zajac/vsometrics/internal/database"
	"github.com/m-zajac/vsometrics/internal/limiter"
	"github.com/m-zajac/vsometrics/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vsometrics",
	Short: "Extracts project build counts and member commit counts from Visual Studio Online.",
	Long: `vsometrics walks projects, teams, repositories and commits of a Visual Studio Online
collection and produces two reports: builds per project, and commits per project member.

Configuration is read from environment variables (and .env file), see VSO_URL, VSO_USER and VSO_PASSWORD.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(reportCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger creates colored logger. Verbose flag overrides configured level.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	l := logrus.New()
	l.Level = logrus.InfoLevel
	l.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		l.Level = logrus.DebugLevel
	}

	return l
}

// deps holds everything needed to run the service.
type deps struct {
	conf      *Config
	service   *app.Service
	collector *metrics.Collector
	close     func()
}

func setup(cmd *cobra.Command, l *logrus.Logger) (*deps, error) {
	conf, err := loadConfig(l)
	if err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		level, err := logrus.ParseLevel(conf.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		l.Level = level
	}
	groupBy, err := app.ParseGroupBy(conf.CommitReportGroupBy)
	if err != nil {
		return nil, err
	}

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return nil, fmt.Errorf("creating metrics collector: %w", err)
	}

	httpClient := &netHttp.Client{
		Timeout: conf.VSOTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		collector.HTTPDoer(httpClient),
		conf.VSORateLimit,
		conf.VSOMaxConcurrentRequests,
	)

	var (
		client  app.VSOClient
		closers []func()
	)
	client = vso.NewClient(
		limitedHTTPClient,
		conf.VSOURL,
		conf.VSOUser,
		conf.VSOPassword,
		conf.VSOAPIVersion,
	)

	if conf.CommitDBPath != "" {
		kvStore, err := database.NewBoltKVStore(
			conf.CommitDBPath,
			conf.CommitDBBucketName,
		)
		if err != nil {
			return nil, fmt.Errorf("creating bolt kv store: %w", err)
		}
		closers = append(closers, func() {
			if err := kvStore.Close(); err != nil {
				l.Errorf("closing bolt kv store: %v", err)
			}
		})
		if n, err := kvStore.Keys(); err == nil {
			l.Debugf("commit authors store has %d entries", n)
		}
		client = vso.NewStoreClient(client, kvStore, l.WithField("component", "vsoStoreClient"))
	}

	client, err = vso.NewCachedClient(client, conf.CommitCacheSize)
	if err != nil {
		for _, c := range closers {
			c()
		}
		return nil, fmt.Errorf("creating vso client cache: %w", err)
	}

	service := app.NewService(
		client,
		groupBy,
		conf.RunTimeout,
		l.WithField("component", "service"),
	)

	return &deps{
		conf:      conf,
		service:   service,
		collector: collector,
		close: func() {
			for _, c := range closers {
				c()
			}
		},
	}, nil
}
