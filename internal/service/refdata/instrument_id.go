package refdata

import (
	"github.com/krobus00/refdata-service/internal/constant"
	"github.com/krobus00/refdata-service/internal/entity"
)

// BuildInstrumentID derives the canonical cross-venue identifier for a
// derivative instrument. Perpetuals always normalize to
// <base>/<quote>.PF.BNC regardless of the native _PERP suffix; dated
// futures embed the simplified month/year code. The result is a pure
// function of its inputs.
func BuildInstrumentID(assetType entity.AssetType, symbol, baseAsset, quoteAsset string) (string, error) {
	root := baseAsset + "/" + quoteAsset

	switch assetType {
	case entity.AssetTypePerp:
		return root + "." + constant.PerpShortCode + "." + constant.VenueIDSuffix, nil
	case entity.AssetTypeFuture:
		code, err := SimplifyFutureCode(symbol)
		if err != nil {
			return "", err
		}

		return root + "." + code + "." + constant.VenueIDSuffix, nil
	default:
		return root + "." + constant.VenueIDSuffix, nil
	}
}
