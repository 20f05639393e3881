package refdata

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/guregu/null/v6"
	"github.com/krobus00/refdata-service/internal/constant"
	"github.com/krobus00/refdata-service/internal/entity"
	"github.com/sirupsen/logrus"
)

// Normalizer is one parsing session over a set of raw segment
// documents. It owns the warn-once sink, so repeated diagnostics are
// suppressed across segments within a run but reset between runs.
type Normalizer struct {
	logger   logrus.FieldLogger
	warnings *WarnOnceSink
}

func NewNormalizer(logger logrus.FieldLogger) *Normalizer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Normalizer{
		logger:   logger,
		warnings: NewWarnOnceSink(logger),
	}
}

// Warnings exposes the session's diagnostic sink.
func (n *Normalizer) Warnings() *WarnOnceSink {
	return n.warnings
}

// DecodeExchangeInfo parses a raw exchange-info document. A document
// that does not parse aborts the run.
func DecodeExchangeInfo(data []byte) (*entity.ExchangeInfo, error) {
	var doc entity.ExchangeInfo
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse exchange-info document: %w", err)
	}

	return &doc, nil
}

// NormalizeSpot turns a spot exchange-info document into canonical
// records. Spot instruments carry no contract type; every one becomes a
// coinpair with instId <base>/<quote>.BNC.
func (n *Normalizer) NormalizeSpot(doc *entity.ExchangeInfo, venue string) []entity.InstrumentRecord {
	n.logger.Infof("segment has %d symbols", len(doc.Symbols))

	rules := SpotFilterRules()
	n.logger.Infof("ignoring following filters: %v", constant.SpotIgnoredFilters)

	records := make([]entity.InstrumentRecord, 0, len(doc.Symbols))
	for _, item := range doc.Symbols {
		rec := entity.InstrumentRecord{
			Symbol:              item.Symbol,
			InstID:              item.BaseAsset + "/" + item.QuoteAsset + "." + constant.VenueIDSuffix,
			Type:                entity.AssetTypeCoinpair,
			Venue:               venue,
			BaseAsset:           item.BaseAsset,
			QuoteAsset:          item.QuoteAsset,
			QuoteAssetPrecision: item.QuoteAssetPrecision,
			BaseAssetPrecision:  item.BaseAssetPrecision,
			Status:              item.Status,
		}

		n.applyFilters(&rec, item.Filters, rules)
		records = append(records, rec)
	}

	return records
}

// NormalizeDerivatives turns a derivative exchange-info document into
// canonical records. It is shared by the USD-margined and coin-margined
// segments; only the venue label differs. Instruments with an
// unclassifiable contract type are skipped; a malformed dated-futures
// symbol aborts the run.
func (n *Normalizer) NormalizeDerivatives(doc *entity.ExchangeInfo, venue string) ([]entity.InstrumentRecord, error) {
	n.logger.Infof("segment has %d symbols", len(doc.Symbols))

	rules := DerivativeFilterRules()
	n.logger.Infof("ignoring following filters: %v", constant.DerivativeIgnoredFilters)

	records := make([]entity.InstrumentRecord, 0, len(doc.Symbols))
	for _, item := range doc.Symbols {
		assetType, _, ok := ClassifyContractType(item.ContractType)
		if !ok {
			n.logger.Infof("skipping asset '%s', unhandled contract type '%s'", item.Symbol, item.ContractType)
			continue
		}

		instID, err := BuildInstrumentID(assetType, item.Symbol, item.BaseAsset, item.QuoteAsset)
		if err != nil {
			return nil, err
		}

		rec := entity.InstrumentRecord{
			Symbol:              item.Symbol,
			InstID:              instID,
			Type:                assetType,
			Venue:               venue,
			BaseAsset:           item.BaseAsset,
			QuoteAsset:          item.QuoteAsset,
			QuoteAssetPrecision: item.QuotePrecision,
			BaseAssetPrecision:  item.BaseAssetPrecision,
			Status:              derivativeStatus(item),
			MarginAsset:         null.StringFrom(item.MarginAsset),
		}

		if item.UnderlyingType != "" {
			rec.UnderlyingType = null.StringFrom(item.UnderlyingType)
		}
		if item.ContractType != "" {
			rec.ContractType = null.StringFrom(item.ContractType)
		}

		n.applyFilters(&rec, item.Filters, rules)
		records = append(records, rec)
	}

	return records, nil
}

// derivativeStatus resolves the status field, whose name varies across
// derivative documents: status, then contractStatus, then "unknown".
func derivativeStatus(item entity.RawSymbol) string {
	if item.Status != "" {
		return item.Status
	}
	if item.ContractStatus != "" {
		return item.ContractStatus
	}

	return constant.StatusUnknown
}
