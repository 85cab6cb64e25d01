package txinfo

import (
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txview"
)

// Item is everything the detail view of one transaction needs. A published
// Item is never modified; every update publishes a new one.
type Item struct {
	Version uint64

	Record         txrecord.Record
	ExternalStatus *txrecord.Status
	LastBlockInfo  *txrecord.LastBlockInfo
	Explorer       txview.ExplorerData
	StatusURL      *txview.ExplorerData

	// Rates maps coin uids to their fiat rate at the time of the transaction.
	Rates       map[string]txrecord.CurrencyValue
	NftMetadata map[txrecord.NftUID]txrecord.NftMetadata
	HideAmount  bool
}

// ViewContext builds the classification context of the item.
func (i Item) ViewContext(resendEnabled bool, contacts txview.ContactBook) txview.Context {
	return txview.Context{
		Rates:          i.Rates,
		NftMetadata:    i.NftMetadata,
		LastBlockInfo:  i.LastBlockInfo,
		ExternalStatus: i.ExternalStatus,
		HideAmount:     i.HideAmount,
		ResendEnabled:  resendEnabled,
		Explorer:       i.Explorer,
		StatusURL:      i.StatusURL,
		Contacts:       contacts,
	}
}
