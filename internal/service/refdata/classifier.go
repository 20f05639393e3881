package refdata

import (
	"github.com/krobus00/refdata-service/internal/constant"
	"github.com/krobus00/refdata-service/internal/entity"
)

// ClassifyContractType maps a raw venue contract-type tag to the
// canonical asset type and its short contract code. Unknown tags return
// ok=false; the caller skips the instrument, never the run.
func ClassifyContractType(contractType string) (assetType entity.AssetType, shortCode string, ok bool) {
	switch contractType {
	case constant.ContractTypePerpetual:
		return entity.AssetTypePerp, constant.PerpShortCode, true
	case constant.ContractTypeCurrentQuarter, constant.ContractTypeNextQuarter:
		return entity.AssetTypeFuture, "", true
	default:
		return "", "", false
	}
}
