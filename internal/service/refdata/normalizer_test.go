package refdata

import (
	"testing"

	"github.com/krobus00/refdata-service/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spotFixture() *entity.ExchangeInfo {
	return &entity.ExchangeInfo{
		Symbols: []entity.RawSymbol{
			{
				Symbol:              "BTCUSDT",
				BaseAsset:           "BTC",
				QuoteAsset:          "USDT",
				BaseAssetPrecision:  8,
				QuoteAssetPrecision: 8,
				Status:              "TRADING",
				Filters: []entity.SymbolFilter{
					{FilterType: "PRICE_FILTER", TickSize: "0.01000000"},
					{FilterType: "LOT_SIZE", MinQty: "0.00001000", MaxQty: "9000.00000000", StepSize: "0.00001000"},
					{FilterType: "MIN_NOTIONAL", MinNotional: "5.00000000"},
					{FilterType: "MAX_NUM_ORDERS", MaxNumOrders: 200},
					{FilterType: "ICEBERG_PARTS"},
				},
			},
		},
	}
}

func TestNormalizeSpot(t *testing.T) {
	normalizer := NewNormalizer(nil)

	records := normalizer.NormalizeSpot(spotFixture(), "binance")
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "BTCUSDT", rec.Symbol)
	assert.Equal(t, "BTC/USDT.BNC", rec.InstID)
	assert.Equal(t, entity.AssetTypeCoinpair, rec.Type)
	assert.Equal(t, "binance", rec.Venue)
	assert.Equal(t, "BTC", rec.BaseAsset)
	assert.Equal(t, "USDT", rec.QuoteAsset)
	assert.Equal(t, 8, rec.QuoteAssetPrecision)
	assert.Equal(t, 8, rec.BaseAssetPrecision)
	assert.Equal(t, "TRADING", rec.Status)

	assert.Equal(t, "0.00001000", rec.MinQty.String)
	assert.Equal(t, "9000.00000000", rec.MaxQty.String)
	assert.Equal(t, "0.00001000", rec.LotQty.String)
	assert.Equal(t, "5.00000000", rec.MinNotional.String)
	assert.Equal(t, "0.01000000", rec.TickSize.String)
	assert.Equal(t, int64(200), rec.MaxNumOrders.Int64)

	assert.False(t, rec.MarginAsset.Valid)
	assert.False(t, rec.UnderlyingType.Valid)
	assert.False(t, rec.ContractType.Valid)

	// ignored filter produced no diagnostic
	assert.Empty(t, normalizer.Warnings().Emitted())
}

func TestNormalizeSpotWarnsOncePerUnknownFilter(t *testing.T) {
	doc := &entity.ExchangeInfo{}
	for i := 0; i < 3; i++ {
		doc.Symbols = append(doc.Symbols, entity.RawSymbol{
			Symbol:     "BTCUSDT",
			BaseAsset:  "BTC",
			QuoteAsset: "USDT",
			Status:     "TRADING",
			Filters: []entity.SymbolFilter{
				{FilterType: "NOTIONAL_BRACKET"},
			},
		})
	}

	normalizer := NewNormalizer(nil)
	records := normalizer.NormalizeSpot(doc, "binance")

	assert.Len(t, records, 3)
	assert.Equal(t, []string{"ignoring binance filter 'NOTIONAL_BRACKET'"}, normalizer.Warnings().Emitted())
}

func TestNormalizeSpotDropsUnparsableNumericValue(t *testing.T) {
	doc := spotFixture()
	doc.Symbols[0].Filters = []entity.SymbolFilter{
		{FilterType: "PRICE_FILTER", TickSize: "not-a-number"},
	}

	normalizer := NewNormalizer(nil)
	records := normalizer.NormalizeSpot(doc, "binance")

	require.Len(t, records, 1)
	assert.False(t, records[0].TickSize.Valid)
	assert.Len(t, normalizer.Warnings().Emitted(), 1)
}

func TestNormalizeDerivativesPerp(t *testing.T) {
	doc := &entity.ExchangeInfo{
		Symbols: []entity.RawSymbol{
			{
				Symbol:             "BTCUSD_PERP",
				BaseAsset:          "BTC",
				QuoteAsset:         "USD",
				ContractType:       "PERPETUAL",
				MarginAsset:        "BTC",
				BaseAssetPrecision: 8,
				QuotePrecision:     8,
				ContractStatus:     "TRADING",
				UnderlyingType:     "COIN",
				Filters: []entity.SymbolFilter{
					{FilterType: "LOT_SIZE", MinQty: "1", MaxQty: "1000000", StepSize: "1"},
					{FilterType: "MIN_NOTIONAL", Notional: "10"},
					{FilterType: "MAX_NUM_ORDERS", Limit: 200},
				},
			},
		},
	}

	normalizer := NewNormalizer(nil)
	records, err := normalizer.NormalizeDerivatives(doc, "binance_coinfut")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "BTC/USD.PF.BNC", rec.InstID)
	assert.Equal(t, entity.AssetTypePerp, rec.Type)
	assert.Equal(t, "binance_coinfut", rec.Venue)
	assert.Equal(t, "BTC", rec.MarginAsset.String)
	assert.Equal(t, "TRADING", rec.Status)
	assert.Equal(t, "COIN", rec.UnderlyingType.String)
	assert.Equal(t, "PERPETUAL", rec.ContractType.String)
	assert.Equal(t, "10", rec.MinNotional.String)
	assert.Equal(t, int64(200), rec.MaxNumOrders.Int64)
}

func TestNormalizeDerivativesFuture(t *testing.T) {
	doc := &entity.ExchangeInfo{
		Symbols: []entity.RawSymbol{
			{
				Symbol:             "BTCUSD_240329",
				BaseAsset:          "BTC",
				QuoteAsset:         "USD",
				ContractType:       "CURRENT_QUARTER",
				MarginAsset:        "BTC",
				BaseAssetPrecision: 8,
				QuotePrecision:     8,
				Status:             "TRADING",
			},
		},
	}

	normalizer := NewNormalizer(nil)
	records, err := normalizer.NormalizeDerivatives(doc, "binance_coinfut")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "BTC/USD.H4.BNC", records[0].InstID)
	assert.Equal(t, entity.AssetTypeFuture, records[0].Type)
}

func TestNormalizeDerivativesSkipsUnclassifiable(t *testing.T) {
	doc := &entity.ExchangeInfo{
		Symbols: []entity.RawSymbol{
			{
				Symbol:       "BTCUSDT_LEVERAGED",
				BaseAsset:    "BTC",
				QuoteAsset:   "USDT",
				ContractType: "LEVERAGED_TOKEN",
			},
			{
				Symbol:       "BTCUSDT",
				BaseAsset:    "BTC",
				QuoteAsset:   "USDT",
				ContractType: "PERPETUAL",
				Status:       "TRADING",
			},
		},
	}

	normalizer := NewNormalizer(nil)
	records, err := normalizer.NormalizeDerivatives(doc, "binance_usdfut")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "BTCUSDT", records[0].Symbol)
}

func TestNormalizeDerivativesMalformedFutureSymbolAborts(t *testing.T) {
	doc := &entity.ExchangeInfo{
		Symbols: []entity.RawSymbol{
			{
				Symbol:       "BTCUSD_2403",
				BaseAsset:    "BTC",
				QuoteAsset:   "USD",
				ContractType: "NEXT_QUARTER",
			},
		},
	}

	normalizer := NewNormalizer(nil)
	_, err := normalizer.NormalizeDerivatives(doc, "binance_coinfut")
	require.Error(t, err)

	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestNormalizeDerivativesStatusFallback(t *testing.T) {
	tests := []struct {
		name     string
		item     entity.RawSymbol
		expected string
	}{
		{
			name: "status wins",
			item: entity.RawSymbol{
				Symbol: "BTCUSDT", BaseAsset: "BTC", QuoteAsset: "USDT",
				ContractType: "PERPETUAL", Status: "TRADING", ContractStatus: "PENDING_TRADING",
			},
			expected: "TRADING",
		},
		{
			name: "contract status fallback",
			item: entity.RawSymbol{
				Symbol: "BTCUSDT", BaseAsset: "BTC", QuoteAsset: "USDT",
				ContractType: "PERPETUAL", ContractStatus: "PENDING_TRADING",
			},
			expected: "PENDING_TRADING",
		},
		{
			name: "unknown fallback",
			item: entity.RawSymbol{
				Symbol: "BTCUSDT", BaseAsset: "BTC", QuoteAsset: "USDT",
				ContractType: "PERPETUAL",
			},
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalizer := NewNormalizer(nil)
			records, err := normalizer.NormalizeDerivatives(&entity.ExchangeInfo{Symbols: []entity.RawSymbol{tt.item}}, "binance_usdfut")
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.expected, records[0].Status)
		})
	}
}

func TestDecodeExchangeInfo(t *testing.T) {
	doc, err := DecodeExchangeInfo([]byte(`{"symbols":[{"symbol":"BTCUSDT","baseAsset":"BTC","quoteAsset":"USDT","filters":[{"filterType":"PRICE_FILTER","tickSize":"0.01"}]}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Symbols, 1)
	assert.Equal(t, "BTCUSDT", doc.Symbols[0].Symbol)
	assert.Equal(t, "0.01", doc.Symbols[0].Filters[0].TickSize)
}

func TestDecodeExchangeInfoMalformed(t *testing.T) {
	_, err := DecodeExchangeInfo([]byte(`{"symbols":`))
	require.Error(t, err)
}
