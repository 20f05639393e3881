package entity

import (
	"strconv"

	"github.com/guregu/null/v6"
)

type AssetType string

const (
	AssetTypeCoinpair AssetType = "coinpair"
	AssetTypePerp     AssetType = "perp"
	AssetTypeFuture   AssetType = "future"
)

// InstrumentRecord is the canonical, venue-agnostic instrument row.
// The always-present fields are plain values; everything a segment may
// omit is a null value so "field absent" survives into serialization.
type InstrumentRecord struct {
	Symbol              string
	InstID              string
	Type                AssetType
	Venue               string
	BaseAsset           string
	QuoteAsset          string
	QuoteAssetPrecision int
	BaseAssetPrecision  int
	Status              string
	MinQty              null.String
	MaxQty              null.String
	LotQty              null.String
	MinNotional         null.String
	TickSize            null.String
	MaxNumOrders        null.Int
	MarginAsset         null.String
	UnderlyingType      null.String
	ContractType        null.String
}

type instrumentField struct {
	name    string
	value   string
	present bool
}

func (r InstrumentRecord) fieldValues() []instrumentField {
	return []instrumentField{
		{"symbol", r.Symbol, true},
		{"instId", r.InstID, true},
		{"type", string(r.Type), true},
		{"venue", r.Venue, true},
		{"baseAsset", r.BaseAsset, true},
		{"quoteAsset", r.QuoteAsset, true},
		{"quoteAssetPrecision", strconv.Itoa(r.QuoteAssetPrecision), true},
		{"baseAssetPrecision", strconv.Itoa(r.BaseAssetPrecision), true},
		{"status", r.Status, true},
		{"minQty", r.MinQty.String, r.MinQty.Valid},
		{"maxQty", r.MaxQty.String, r.MaxQty.Valid},
		{"lotQty", r.LotQty.String, r.LotQty.Valid},
		{"minNotional", r.MinNotional.String, r.MinNotional.Valid},
		{"tickSize", r.TickSize.String, r.TickSize.Valid},
		{"maxNumOrders", strconv.FormatInt(r.MaxNumOrders.Int64, 10), r.MaxNumOrders.Valid},
		{"marginAsset", r.MarginAsset.String, r.MarginAsset.Valid},
		{"underlyingType", r.UnderlyingType.String, r.UnderlyingType.Valid},
		{"contractType", r.ContractType.String, r.ContractType.Valid},
	}
}

// Fields returns the names of the fields present on this record, in
// declaration order.
func (r InstrumentRecord) Fields() []string {
	fields := r.fieldValues()
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		if field.present {
			names = append(names, field.name)
		}
	}

	return names
}

// Value returns the stringified value for a field and whether the field
// is present on this record.
func (r InstrumentRecord) Value(name string) (string, bool) {
	for _, field := range r.fieldValues() {
		if field.name == name {
			if !field.present {
				return "", false
			}

			return field.value, true
		}
	}

	return "", false
}
