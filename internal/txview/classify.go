package txview

import (
	"strings"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

// Classify maps a record and its context to display sections, in order:
// spam warning, family sections, misc section, status section, resend
// sections and explorer links.
//
// Missing optional data never fails classification. A sub-type that lacks a
// field it structurally needs simply contributes no section.
func Classify(record txrecord.Record, c Context) []Section {
	base := record.Common()
	b := &builder{c: c, blockchain: base.Source.Blockchain}

	if base.Spam {
		b.add(Section{Warning{Message: spamWarning}})
	}

	switch tx := record.(type) {
	case *txrecord.EvmRecord:
		b.evm(tx)
	case *txrecord.BitcoinRecord:
		b.bitcoin(tx)
	case *txrecord.BinanceChainRecord:
		b.simple(tx.Kind, tx.MainValue, tx.From, tx.To, tx.SentToSelf, tx.Memo, tx.OperationType)
	case *txrecord.SolanaRecord:
		b.solana(tx)
	case *txrecord.TronRecord:
		b.tron(tx)
	case *txrecord.TonRecord:
		b.ton(tx)
	case *txrecord.StellarRecord:
		b.stellar(tx)
	case *txrecord.MoneroRecord:
		b.simple(tx.Kind, tx.MainValue, tx.From, tx.To, tx.SentToSelf, tx.Memo, tx.OperationType)
		if tx.Subaddress != "" {
			b.misc = append(b.misc, KeyValue{Title: titleSubaddress, Value: tx.Subaddress})
		}
	}

	if b.sentToSelf {
		b.misc = append(b.misc, SentToSelf{})
	}
	b.add(b.misc)

	status := statusOf(record, c)
	b.add(b.statusSection(record, status))

	if resendEligible(record, status) && c.ResendEnabled {
		b.add(Section{SpeedUpCancel{TransactionHash: base.TransactionHash, Blockchain: b.blockchain}})
		b.add(Section{Description{Text: speedUpText}})
	}

	b.add(Section{Explorer{Title: "View on " + c.Explorer.Title, URL: c.Explorer.URL}})
	if c.StatusURL != nil {
		b.add(Section{Explorer{Title: "View on " + c.StatusURL.Title, URL: c.StatusURL.URL}})
	}

	return b.sections
}

// statusOf prefers the external status over the chain-derived one.
func statusOf(record txrecord.Record, c Context) txrecord.Status {
	if c.ExternalStatus != nil {
		return *c.ExternalStatus
	}
	return txrecord.StatusOf(record, c.LastBlockInfo.HeightPtr())
}

func resendEligible(record txrecord.Record, status txrecord.Status) bool {
	switch tx := record.(type) {
	case *txrecord.EvmRecord:
		return !tx.ForeignTransaction && status.Kind == txrecord.StatusPending
	case *txrecord.BitcoinRecord:
		return tx.Kind == txrecord.BitcoinOutgoing && tx.Replaceable
	}
	return false
}

func (b *builder) evm(tx *txrecord.EvmRecord) {
	switch tx.Kind {
	case txrecord.EvmContractCreation:
		b.add(Section{Header{Title: titleContractCreate, Blockchain: b.blockchain}})
	case txrecord.EvmIncoming:
		b.add(b.receiveSection(tx.Value, tx.From))
	case txrecord.EvmOutgoing:
		b.sentToSelf = tx.SentToSelf
		b.add(b.sendSection(tx.Value, tx.To, tx.SentToSelf))
	case txrecord.EvmSwap:
		b.add(b.swapEventSection(tx.ValueIn, tx.ValueOut, tx.AmountIn, tx.Recipient != ""))
		b.add(b.swapDetailsSection(tx.ExchangeAddress, tx.ValueIn, tx.ValueOut))
	case txrecord.EvmUnknownSwap:
		b.add(b.swapEventSection(tx.ValueIn, tx.ValueOut, nil, false))
		b.add(b.swapDetailsSection(tx.ExchangeAddress, tx.ValueIn, tx.ValueOut))
	case txrecord.EvmApprove:
		b.add(b.approveSection(tx.Value, tx.Spender))
	case txrecord.EvmContractCall:
		b.add(b.contractHeader(tx.Method, tx.ContractAddress))
		b.eventSections(tx.OutgoingEvents, tx.IncomingEvents)
	case txrecord.EvmExternalContractCall:
		b.eventSections(tx.OutgoingEvents, tx.IncomingEvents)
	}
}

func (b *builder) bitcoin(tx *txrecord.BitcoinRecord) {
	switch tx.Kind {
	case txrecord.BitcoinIncoming:
		b.add(b.receiveSection(tx.MainValue, tx.From))
	case txrecord.BitcoinOutgoing:
		b.sentToSelf = tx.SentToSelf
		b.add(b.sendSection(tx.MainValue, tx.To, tx.SentToSelf))
	default:
		return
	}

	b.bitcoinMisc(tx)
	b.addMemo(tx.Memo)
}

func (b *builder) solana(tx *txrecord.SolanaRecord) {
	switch tx.Kind {
	case txrecord.AccountIncoming:
		b.add(b.receiveSection(tx.MainValue, tx.From))
	case txrecord.AccountOutgoing:
		b.sentToSelf = tx.SentToSelf
		b.add(b.sendSection(tx.MainValue, tx.To, tx.SentToSelf))
	case txrecord.AccountApprove:
		b.add(b.approveSection(tx.MainValue, tx.Spender))
	case txrecord.AccountContractCall:
		b.add(b.contractHeader(tx.Method, tx.ProgramAddress))
		b.eventSections(tx.Outgoing, tx.Incoming)
	case txrecord.AccountExternalContractCall, txrecord.AccountUnknown:
		b.eventSections(tx.Outgoing, tx.Incoming)
	}
}

func (b *builder) tron(tx *txrecord.TronRecord) {
	switch tx.Kind {
	case txrecord.AccountIncoming:
		b.add(b.receiveSection(tx.MainValue, tx.From))
	case txrecord.AccountOutgoing:
		b.sentToSelf = tx.SentToSelf
		b.add(b.sendSection(tx.MainValue, tx.To, tx.SentToSelf))
	case txrecord.AccountApprove:
		b.add(b.approveSection(tx.MainValue, tx.Spender))
	case txrecord.AccountContractCall:
		b.add(b.contractHeader(tx.Method, tx.ContractAddress))
		b.eventSections(tx.OutgoingEvents, tx.IncomingEvents)
	case txrecord.AccountExternalContractCall:
		b.eventSections(tx.OutgoingEvents, tx.IncomingEvents)
	case txrecord.AccountUnknown:
		if len(tx.OutgoingEvents)+len(tx.IncomingEvents) > 0 {
			b.eventSections(tx.OutgoingEvents, tx.IncomingEvents)
			return
		}

		title := tx.ContractLabel
		if title == "" {
			title = titleContractCall
		}
		b.add(Section{Header{Title: title, Blockchain: b.blockchain}})
	}
}

func (b *builder) ton(tx *txrecord.TonRecord) {
	for i := range tx.Actions {
		b.add(b.tonAction(&tx.Actions[i]))
	}
	b.addMemo(tx.Memo)
}

func (b *builder) tonAction(a *txrecord.TonAction) Section {
	var s Section
	switch a.Kind {
	case txrecord.TonSend:
		b.sentToSelf = b.sentToSelf || a.SentToSelf
		s = b.sendSection(a.Value, a.Address, a.SentToSelf)
		if s != nil && a.Comment != "" {
			s = append(s, KeyValue{Title: titleMemo, Value: a.Comment})
		}
	case txrecord.TonReceive:
		s = b.receiveSection(a.Value, a.Address)
		if s != nil && a.Comment != "" {
			s = append(s, KeyValue{Title: titleMemo, Value: a.Comment})
		}
	case txrecord.TonBurn:
		s = b.transferSection(a.Value, "", false, false, true)
	case txrecord.TonMint:
		s = b.transferSection(a.Value, "", true, false, true)
	case txrecord.TonSwap:
		s = b.swapEventSection(a.ValueIn, a.ValueOut, nil, false)
	case txrecord.TonContractDeploy:
		s = Section{Header{Title: titleContractDeploy, Subtitle: strings.Join(a.Interfaces, ", ")}}
	case txrecord.TonContractCall:
		if a.Value == nil {
			break
		}
		s = Section{Header{Title: titleContractCall, Subtitle: a.Operation, Blockchain: b.blockchain}}
		if a.Address != "" {
			s = append(s, Address{Title: titleTo, Address: a.Address, Blockchain: b.blockchain})
		}
		s = append(s, b.sendSection(a.Value, "", false)...)
	case txrecord.TonUnsupported:
		s = Section{KeyValue{Title: titleAction, Value: a.Description}}
	}

	if len(s) > 0 && a.Failed {
		s = append(s, StatusItem{Status: txrecord.Failed})
	}
	return s
}

func (b *builder) stellar(tx *txrecord.StellarRecord) {
	if tx.Kind == txrecord.SimpleChangeTrust {
		s := Section{Header{Title: titleChangeTrust, Blockchain: b.blockchain}}
		if tx.TrustLimit != nil {
			s = append(s, b.approvedAmount(*tx.TrustLimit))
		}
		if tx.AssetIssuer != "" {
			s = append(s, b.addressItems(titleIssuer, tx.AssetIssuer)...)
		}
		b.add(s)
		b.addMemo(tx.Memo)
		return
	}

	b.simple(tx.Kind, tx.MainValue, tx.From, tx.To, tx.SentToSelf, tx.Memo, tx.OperationType)
	if tx.AccountCreated {
		b.add(Section{Description{Text: accountCreatedTxt}})
	}
}

// simple handles the families that only know incoming, outgoing and
// unsupported operations.
func (b *builder) simple(kind txrecord.SimpleKind, v *txrecord.Value, from, to string, sentToSelf bool, memo, operation string) {
	switch kind {
	case txrecord.SimpleIncoming:
		b.add(b.receiveSection(v, from))
	case txrecord.SimpleOutgoing:
		b.sentToSelf = sentToSelf
		b.add(b.sendSection(v, to, sentToSelf))
	case txrecord.SimpleUnsupported, txrecord.SimpleChangeTrust:
		if operation != "" {
			b.add(Section{KeyValue{Title: titleAction, Value: operation}})
		}
	}
	b.addMemo(memo)
}

func (b *builder) statusSection(record txrecord.Record, status txrecord.Status) Section {
	base := record.Common()
	var s Section

	if tx, ok := record.(*txrecord.EvmRecord); ok && tx.Kind == txrecord.EvmSwap && tx.ValueOut != nil && tx.Recipient != "" {
		s = append(s, b.addressItems(titleRecipient, tx.Recipient)...)
	}

	s = append(s,
		KeyValue{Title: titleDate, Value: formatDate(base.Timestamp)},
		StatusItem{Status: status},
	)

	if fee, title, ok := b.feeFor(record, status); ok {
		s = append(s, b.feeItem(*fee, title))
	}

	return append(s, TransactionHash{Hash: base.TransactionHash})
}

// feeFor decides whether the status section shows a fee and under which
// title. Foreign transactions never show the fee.
func (b *builder) feeFor(record txrecord.Record, status txrecord.Status) (*txrecord.Value, string, bool) {
	fee := txrecord.Fee(record)
	if fee == nil {
		return nil, "", false
	}

	switch tx := record.(type) {
	case *txrecord.EvmRecord:
		return fee, feeTitle(status), !tx.ForeignTransaction
	case *txrecord.TronRecord:
		return fee, feeTitle(status), !tx.ForeignTransaction
	case *txrecord.TonRecord:
		return fee, feeTitle(status), true
	case *txrecord.BitcoinRecord:
		return fee, titleFee, tx.Kind == txrecord.BitcoinOutgoing
	case *txrecord.BinanceChainRecord:
		return fee, titleFee, tx.Kind == txrecord.SimpleOutgoing
	case *txrecord.SolanaRecord:
		return fee, feeTitle(status), tx.Kind == txrecord.AccountOutgoing
	case *txrecord.StellarRecord:
		return fee, feeTitle(status), tx.Kind != txrecord.SimpleIncoming
	case *txrecord.MoneroRecord:
		return fee, feeTitle(status), tx.Kind == txrecord.SimpleOutgoing
	}
	return nil, "", false
}
