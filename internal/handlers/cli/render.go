package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
	"github.com/gabapcia/txhistory/internal/txview"
)

type viewItemJSON struct {
	Type string          `json:"type"`
	Item txview.ViewItem `json:"item"`
}

type sectionsJSON struct {
	UID      string           `json:"uid"`
	Sections [][]viewItemJSON `json:"sections"`
}

type itemJSON struct {
	UID           string                  `json:"uid"`
	Blockchain    string                  `json:"blockchain"`
	Hash          string                  `json:"hash"`
	Timestamp     int64                   `json:"timestamp"`
	Spam          bool                    `json:"spam,omitempty"`
	Status        txrecord.Status         `json:"status"`
	MainValue     *txrecord.Value         `json:"mainValue,omitempty"`
	CurrencyValue *txrecord.CurrencyValue `json:"currencyValue,omitempty"`
}

type snapshotJSON struct {
	Version uint64     `json:"version"`
	Items   []itemJSON `json:"items"`
}

type rawTransactionJSON struct {
	UID string `json:"uid"`
	Raw string `json:"raw"`
}

// viewItemType names an item after its Go type, e.g. "Amount".
func viewItemType(item txview.ViewItem) string {
	name := fmt.Sprintf("%T", item)
	return name[strings.LastIndex(name, ".")+1:]
}

func renderSections(uid string, sections []txview.Section) sectionsJSON {
	out := sectionsJSON{UID: uid, Sections: make([][]viewItemJSON, 0, len(sections))}
	for _, section := range sections {
		items := make([]viewItemJSON, 0, len(section))
		for _, item := range section {
			items = append(items, viewItemJSON{Type: viewItemType(item), Item: item})
		}
		out.Sections = append(out.Sections, items)
	}
	return out
}

func renderSnapshot(s txstream.Snapshot) snapshotJSON {
	out := snapshotJSON{Version: s.Version, Items: make([]itemJSON, 0, len(s.Items))}
	for _, item := range s.Items {
		b := item.Record.Common()
		out.Items = append(out.Items, itemJSON{
			UID:           b.UID,
			Blockchain:    string(b.Source.Blockchain),
			Hash:          b.TransactionHash,
			Timestamp:     b.Timestamp,
			Spam:          b.Spam,
			Status:        txrecord.StatusOf(item.Record, item.LastBlockInfo.HeightPtr()),
			MainValue:     b.MainValue,
			CurrencyValue: item.CurrencyValue,
		})
	}
	return out
}

func printJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
