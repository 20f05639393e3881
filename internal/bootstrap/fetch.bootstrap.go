package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/krobus00/refdata-service/internal/config"
	"github.com/krobus00/refdata-service/internal/service/fetcher"
	"github.com/krobus00/refdata-service/internal/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// StartFetch retrieves the raw exchange-info document for every
// configured segment and writes each one to its file under the data
// directory. Any failed request aborts the run.
func StartFetch(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := fetcher.New(config.Env.HTTP.Timeout, logrus.StandardLogger())

	err := os.MkdirAll(config.Env.DataDir, 0o755)
	util.ContinueOrFatal(err)

	for _, segment := range config.Env.Segments {
		body, err := client.FetchExchangeInfo(ctx, segment.BaseURL, segment.Path)
		util.ContinueOrFatal(err)

		fn := filepath.Join(config.Env.DataDir, segment.File)
		logrus.Infof("writing to file '%s'", fn)
		err = os.WriteFile(fn, body, 0o644)
		util.ContinueOrFatal(err)
	}
}
