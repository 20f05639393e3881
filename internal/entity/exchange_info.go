package entity

// ExchangeInfo is one venue segment's raw instrument metadata document,
// already parsed from JSON.
type ExchangeInfo struct {
	Symbols []RawSymbol `json:"symbols"`
}

// RawSymbol is one instrument as the venue reports it. The spot and
// derivative segments disagree on several field names (quote precision,
// status), so both spellings are carried and the normalizer picks per
// segment.
type RawSymbol struct {
	Symbol              string         `json:"symbol"`
	BaseAsset           string         `json:"baseAsset"`
	QuoteAsset          string         `json:"quoteAsset"`
	ContractType        string         `json:"contractType"`
	MarginAsset         string         `json:"marginAsset"`
	BaseAssetPrecision  int            `json:"baseAssetPrecision"`
	QuoteAssetPrecision int            `json:"quoteAssetPrecision"`
	QuotePrecision      int            `json:"quotePrecision"`
	Status              string         `json:"status"`
	ContractStatus      string         `json:"contractStatus"`
	UnderlyingType      string         `json:"underlyingType"`
	Filters             []SymbolFilter `json:"filters"`
}

// SymbolFilter is a tagged trading-constraint entry. FilterType selects
// which of the remaining fields carry data; everything else is left at
// its zero value by the decoder.
type SymbolFilter struct {
	FilterType   string `json:"filterType"`
	MinQty       string `json:"minQty"`
	MaxQty       string `json:"maxQty"`
	StepSize     string `json:"stepSize"`
	MinNotional  string `json:"minNotional"`
	Notional     string `json:"notional"`
	TickSize     string `json:"tickSize"`
	MaxNumOrders int64  `json:"maxNumOrders"`
	Limit        int64  `json:"limit"`
}
