package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/m-drozd/arcadium/internal/probe"
	"github.com/m-drozd/arcadium/pkg/clients"
	vegeta "github.com/tsenart/vegeta/v12/lib"
	"go.uber.org/zap"
)

var (
	optAddr     = flag.String("addr", "http://localhost:8080", "base URL of a running instance")
	optPost     = flag.Int("post", 1, "post ID to hammer")
	optPlayer   = flag.Int("player", 1, "player ID to hammer")
	optViews    = flag.Int("views", 200, "number of concurrent view requests")
	optUpgrades = flag.Int("upgrades", 25, "number of concurrent upgrade requests")
	optWorkers  = flag.Int("workers", 16, "number of concurrent workers")
	optRate     = flag.Int("rate", 0, "requests per second for the read warmup, 0 skips it")
	optDuration = flag.Duration("duration", 5*time.Second, "how long the read warmup runs")
)

var logger *zap.SugaredLogger

func main() {
	godotenv.Load()

	flag.Parse()

	l := zap.Must(zap.NewDevelopment())
	zap.ReplaceGlobals(l)
	logger = l.Sugar()

	if *optAddr == "" {
		logger.Fatalf("*** --addr must be specified")
	}

	ctx := context.Background()
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		logger.Fatalf("*** run: %v", err)
	}
}

func run(ctx context.Context) error {
	prober := probe.New(*optAddr, clients.NewHTTPClient(), *optWorkers)

	if *optRate > 0 {
		warmup(ctx)
	}

	views, err := prober.RunViews(ctx, *optPost, *optViews)
	if err != nil {
		return fmt.Errorf("prober.RunViews: %v", err)
	}
	logger.Infof("views: %s shots, %s acknowledged, counter %d -> %d",
		humanize.Comma(int64(views.Requested)), humanize.Comma(int64(views.OK)),
		views.StartViews, views.EndViews)
	if err := views.Verify(); err != nil {
		return err
	}

	upgrades, err := prober.RunUpgrades(ctx, *optPlayer, *optUpgrades)
	if err != nil {
		return fmt.Errorf("prober.RunUpgrades: %v", err)
	}
	logger.Infof("upgrades: %d upgraded, %d rejected, %d failed, money %d -> %d, level %d -> %d",
		upgrades.Upgraded, upgrades.Rejected, upgrades.Failed,
		upgrades.StartMoney, upgrades.EndMoney, upgrades.StartLevel, upgrades.EndLevel)
	if err := upgrades.Verify(); err != nil {
		return err
	}

	logger.Infof("all counters add up")
	return nil
}

// warmup floods the read path at a fixed rate before the counting
// phases so latency numbers come from a warm server.
func warmup(ctx context.Context) {
	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s/post/%d", *optAddr, *optPost),
	})
	attacker := vegeta.NewAttacker()

	stop := context.AfterFunc(ctx, func() { attacker.Stop() })
	defer stop()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *optRate, Per: time.Second}, *optDuration, "warmup") {
		metrics.Add(res)
	}
	metrics.Close()

	logger.With(zap.Any("statusCodes", metrics.StatusCodes)).Infof("warmup: %s requests, success %.2f%%, p99 %s",
		humanize.Comma(int64(metrics.Requests)), metrics.Success*100, metrics.Latencies.P99)
}
