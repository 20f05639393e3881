package refdata

import (
	"github.com/guregu/null/v6"
	"github.com/krobus00/refdata-service/internal/constant"
	"github.com/krobus00/refdata-service/internal/entity"
	"github.com/shopspring/decimal"
)

// FilterRules configures filter extraction for one venue segment: which
// tags are dropped silently, and which wire fields carry the notional
// and order-limit values. The venue reuses the same tags with different
// field keys per segment, so the remapping is explicit configuration
// rather than inline logic.
type FilterRules struct {
	Ignore     map[string]struct{}
	Notional   func(f entity.SymbolFilter) string
	OrderLimit func(f entity.SymbolFilter) int64
}

func SpotFilterRules() FilterRules {
	return FilterRules{
		Ignore:     ignoreSet(constant.SpotIgnoredFilters),
		Notional:   func(f entity.SymbolFilter) string { return f.MinNotional },
		OrderLimit: func(f entity.SymbolFilter) int64 { return f.MaxNumOrders },
	}
}

func DerivativeFilterRules() FilterRules {
	return FilterRules{
		Ignore:     ignoreSet(constant.DerivativeIgnoredFilters),
		Notional:   func(f entity.SymbolFilter) string { return f.Notional },
		OrderLimit: func(f entity.SymbolFilter) int64 { return f.Limit },
	}
}

func ignoreSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}

	return set
}

// applyFilters walks a symbol's filter list and copies the recognized
// numeric constraints onto the record. Ignored tags are dropped
// silently; any other unrecognized tag is reported once per run.
func (n *Normalizer) applyFilters(rec *entity.InstrumentRecord, filters []entity.SymbolFilter, rules FilterRules) {
	for _, f := range filters {
		switch f.FilterType {
		case constant.FilterLotSize:
			rec.MinQty = n.numericField(f.MinQty, "minQty", f.FilterType)
			rec.MaxQty = n.numericField(f.MaxQty, "maxQty", f.FilterType)
			rec.LotQty = n.numericField(f.StepSize, "stepSize", f.FilterType)
		case constant.FilterMinNotional:
			rec.MinNotional = n.numericField(rules.Notional(f), "minNotional", f.FilterType)
		case constant.FilterPriceFilter:
			rec.TickSize = n.numericField(f.TickSize, "tickSize", f.FilterType)
		case constant.FilterMaxNumOrders:
			rec.MaxNumOrders = null.IntFrom(rules.OrderLimit(f))
		default:
			if _, ok := rules.Ignore[f.FilterType]; ok {
				continue
			}

			n.warnings.Warnf("ignoring binance filter '%s'", f.FilterType)
		}
	}
}

// numericField validates a wire value as a decimal before copying it
// onto the record. An unparsable value leaves the field absent and is
// reported once per distinct message.
func (n *Normalizer) numericField(raw, name, filterType string) null.String {
	if _, err := decimal.NewFromString(raw); err != nil {
		n.warnings.Warnf("dropping unparsable %s value '%s' from filter %s", name, raw, filterType)
		return null.String{}
	}

	return null.StringFrom(raw)
}
