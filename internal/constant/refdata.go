package constant

const (
	ProductionEnvironment = "production"

	// VenueIDSuffix terminates every canonical instrument id.
	VenueIDSuffix = "BNC"

	VenueBinanceSpot    = "binance"
	VenueBinanceUSDFut  = "binance_usdfut"
	VenueBinanceCoinFut = "binance_coinfut"

	SegmentKindSpot       = "spot"
	SegmentKindDerivative = "derivative"

	ContractTypePerpetual      = "PERPETUAL"
	ContractTypeCurrentQuarter = "CURRENT_QUARTER"
	ContractTypeNextQuarter    = "NEXT_QUARTER"

	// PerpShortCode is the compact contract code for perpetual swaps,
	// analogous to the month/year code of dated futures.
	PerpShortCode = "PF"

	StatusUnknown = "unknown"

	FilterLotSize      = "LOT_SIZE"
	FilterMinNotional  = "MIN_NOTIONAL"
	FilterPriceFilter  = "PRICE_FILTER"
	FilterMaxNumOrders = "MAX_NUM_ORDERS"
)

// Filter tags that are known but deliberately not extracted. The two
// segments ignore different sets because the venue reuses tag names with
// different semantics per segment.
var (
	SpotIgnoredFilters = []string{
		"MAX_NUM_ALGO_ORDERS",
		"ICEBERG_PARTS",
		"MARKET_LOT_SIZE",
		"PERCENT_PRICE",
		"TRAILING_DELTA",
		"PERCENT_PRICE_BY_SIDE",
		"MAX_POSITION",
	}

	DerivativeIgnoredFilters = []string{
		"MAX_NUM_ALGO_ORDERS",
		"ICEBERG_PARTS",
		"MARKET_LOT_SIZE",
		"PERCENT_PRICE",
	}
)
