package bootstrap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krobus00/refdata-service/internal/config"
	"github.com/krobus00/refdata-service/internal/constant"
	"github.com/krobus00/refdata-service/internal/entity"
	"github.com/krobus00/refdata-service/internal/service/export"
	"github.com/krobus00/refdata-service/internal/service/refdata"
	"github.com/krobus00/refdata-service/internal/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// StartParse reads the fetched documents, normalizes every segment into
// canonical instrument records and writes the merged CSV artifact.
func StartParse(cmd *cobra.Command, args []string) {
	logger := logrus.StandardLogger()
	normalizer := refdata.NewNormalizer(logger)

	records := make([]entity.InstrumentRecord, 0)
	for _, segment := range config.Env.Segments {
		fn := filepath.Join(config.Env.DataDir, segment.File)
		logger.Infof("reading file '%s'", fn)
		data, err := os.ReadFile(fn)
		util.ContinueOrFatal(err)

		doc, err := refdata.DecodeExchangeInfo(data)
		util.ContinueOrFatal(err)

		switch segment.Kind {
		case constant.SegmentKindSpot:
			records = append(records, normalizer.NormalizeSpot(doc, segment.Venue)...)
		case constant.SegmentKindDerivative:
			segmentRecords, err := normalizer.NormalizeDerivatives(doc, segment.Venue)
			util.ContinueOrFatal(err)
			records = append(records, segmentRecords...)
		default:
			util.ContinueOrFatal(fmt.Errorf("segment '%s' has unknown kind '%s'", segment.Name, segment.Kind))
		}
	}

	rows := make([]export.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec)
	}

	writer := export.NewWriter(config.Env.Output.KeyField, config.Env.Output.Delimiter, logger)

	var buf bytes.Buffer
	err := writer.Write(&buf, rows)
	util.ContinueOrFatal(err)

	err = os.MkdirAll(filepath.Dir(config.Env.Output.File), 0o755)
	util.ContinueOrFatal(err)

	logger.Infof("writing file '%s'", config.Env.Output.File)
	err = os.WriteFile(config.Env.Output.File, buf.Bytes(), 0o644)
	util.ContinueOrFatal(err)
}
