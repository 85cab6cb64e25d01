package txview

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

const (
	titleReceive        = "Receive"
	titleMint           = "Mint"
	titleSend           = "Send"
	titleBurn           = "Burn"
	titleApprove        = "Approve"
	titleYouSent        = "You Sent"
	titleYouGot         = "You Got"
	titleFrom           = "From"
	titleTo             = "To"
	titleSpender        = "Spender"
	titleRecipient      = "Recipient"
	titleIssuer         = "Issuer"
	titleHistoricalRate = "Historical Rate"
	titleService        = "Service"
	titlePrice          = "Price"
	titleDate           = "Date"
	titleFee            = "Fee"
	titleEstimatedFee   = "Estimated Fee"
	titleMemo           = "Memo"
	titleSubaddress     = "Subaddress"
	titleAction         = "Action"
	titleContractCall   = "Contract Call"
	titleContractCreate = "Contract Creation"
	titleContractDeploy = "Contract Deploy"
	titleChangeTrust    = "Change Trust"

	spamWarning       = "This transaction looks like spam. Do not interact with the addresses or tokens it mentions."
	speedUpText       = "You can speed up or cancel this transaction while it is pending by replacing it with a higher fee."
	accountCreatedTxt = "This payment created the destination account."
	notAvailable      = "n/a"
	unknownValue      = "---"
	maxBound          = "max"
)

// builder collects the sections of one classification run.
type builder struct {
	c          Context
	blockchain txrecord.BlockchainType
	sections   []Section
	misc       Section
	sentToSelf bool
}

func (b *builder) add(s Section) {
	if len(s) > 0 {
		b.sections = append(b.sections, s)
	}
}

func (b *builder) rate(v txrecord.Value) *txrecord.CurrencyValue {
	r, ok := b.c.Rates[v.CoinUID]
	if !ok {
		return nil
	}
	return &r
}

// addressItems returns the address line and, when known, the contact name.
func (b *builder) addressItems(title, addr string) Section {
	item := Address{
		Title:      title,
		Address:    DisplayAddress(b.blockchain, addr),
		Blockchain: b.blockchain,
	}

	if b.c.Contacts == nil {
		return Section{item}
	}

	name, ok := b.c.Contacts.ContactName(b.blockchain, addr)
	if !ok {
		return Section{item}
	}

	item.InContacts = true
	return Section{item, Contact{Name: name}}
}

func toneOf(incoming *bool) Tone {
	switch {
	case incoming == nil:
		return ToneNeutral
	case *incoming:
		return ToneIncoming
	default:
		return ToneOutgoing
	}
}

func signOf(incoming *bool) Sign {
	switch {
	case incoming == nil:
		return SignNone
	case *incoming:
		return SignPositive
	default:
		return SignNegative
	}
}

func direction(incoming bool) *bool { return &incoming }

func (b *builder) amount(title string, kind AmountKind, v txrecord.Value, incoming *bool) Amount {
	a := Amount{
		Title: title,
		Kind:  kind,
		Coin:  v.Abs(),
		Sign:  signOf(incoming),
		Tone:  toneOf(incoming),
	}

	if b.c.HideAmount {
		a.Coin.Amount = nil
		a.Hidden = true
		return a
	}

	if r := b.rate(v); r != nil {
		a.Fiat = r.Times(a.Coin)
	}
	return a
}

func (b *builder) nftAmount(title string, v txrecord.Value, incoming *bool) NftAmount {
	item := NftAmount{
		Title: title,
		Coin:  v.Abs(),
		Tone:  toneOf(incoming),
	}

	if incoming != nil && v.Amount != nil {
		switch v.Amount.Sign() {
		case -1:
			item.Sign = SignNegative
		case 1:
			item.Sign = SignPositive
		}
	}

	meta, ok := b.c.NftMetadata[*v.NFT]
	switch {
	case ok && meta.Name != "":
		item.Name = meta.Name
	case v.TokenName != "":
		item.Name = fmt.Sprintf("%s #%s", v.TokenName, v.NFT.TokenID)
	default:
		item.Name = "#" + v.NFT.TokenID
	}
	if ok {
		item.PreviewImageURL = meta.PreviewImageURL
	}

	if b.c.HideAmount {
		item.Coin.Amount = nil
		item.Sign = SignNone
		item.Hidden = true
	}
	return item
}

func (b *builder) historicalRate(v txrecord.Value) KeyValue {
	r := b.rate(v)
	if r == nil {
		return KeyValue{Title: titleHistoricalRate, Value: unknownValue}
	}
	return KeyValue{Title: titleHistoricalRate, Value: fmt.Sprintf("%s %s per %s", r.Value.String(), r.Currency, v.CoinCode)}
}

// transferSection builds a receive or send section. The counterparty line is
// left out for mints, burns and unknown counterparties.
func (b *builder) transferSection(v *txrecord.Value, counterparty string, incoming, sentToSelf, forceMint bool) Section {
	if v == nil {
		return nil
	}

	zero := forceMint || isZeroAddress(counterparty)
	var title, addrTitle string
	var kind AmountKind
	var dir *bool
	if incoming {
		title, addrTitle, kind, dir = titleReceive, titleFrom, AmountReceived, direction(true)
		if zero {
			title = titleMint
		}
	} else {
		title, addrTitle, kind, dir = titleSend, titleTo, AmountSent, direction(false)
		if zero {
			title = titleBurn
		}
		if sentToSelf {
			dir = nil
		}
	}

	var s Section
	if v.IsNFT() {
		s = append(s, b.nftAmount(title, *v, dir))
	} else {
		s = append(s, b.amount(title, kind, *v, dir))
	}

	if !zero && counterparty != "" {
		s = append(s, b.addressItems(addrTitle, counterparty)...)
	}

	if !v.IsNFT() {
		s = append(s, b.historicalRate(*v))
	}
	return s
}

func (b *builder) receiveSection(v *txrecord.Value, from string) Section {
	return b.transferSection(v, from, true, false, false)
}

func (b *builder) sendSection(v *txrecord.Value, to string, sentToSelf bool) Section {
	return b.transferSection(v, to, false, sentToSelf, false)
}

func (b *builder) eventSections(outgoing, incoming []txrecord.TransferEvent) {
	for i := range outgoing {
		b.add(b.sendSection(&outgoing[i].Value, outgoing[i].Address, false))
	}
	for i := range incoming {
		b.add(b.receiveSection(&incoming[i].Value, incoming[i].Address))
	}
}

func (b *builder) swapEventSection(in, out *txrecord.Value, amountIn *txrecord.SwapAmountKind, hasRecipient bool) Section {
	var s Section
	if in != nil {
		a := b.amount(titleYouSent, AmountYouSent, *in, direction(false))
		if amountIn != nil && *amountIn == txrecord.SwapAmountExtremum {
			a.Bound = maxBound
		}
		s = append(s, a)
	}

	if out != nil {
		a := b.amount(titleYouGot, AmountYouGot, *out, direction(true))
		if hasRecipient {
			a.Tone = ToneOutgoing
		}
		s = append(s, a)
	}
	return s
}

// price formats "1 base = x quote" for a swap, with the fiat value of x when
// the quote rate is known.
func (b *builder) price(base, quote txrecord.Value, baseAmount, quoteAmount decimal.Decimal, places int32) string {
	if baseAmount.IsZero() {
		return notAvailable
	}

	p := quoteAmount.Div(baseAmount).RoundBank(places).Abs()
	text := fmt.Sprintf("%s = %s %s", base.CoinCode, p.String(), quote.CoinCode)
	if r := b.rate(quote); r != nil {
		text += fmt.Sprintf(" (%s %s)", p.Mul(r.Value).String(), r.Currency)
	}
	return text
}

func (b *builder) swapDetailsSection(exchange string, in, out *txrecord.Value) Section {
	if exchange == "" {
		return nil
	}

	s := Section{KeyValue{Title: titleService, Value: DisplayAddress(b.blockchain, exchange)}}
	if in == nil || out == nil || in.Amount == nil || out.Amount == nil {
		return s
	}

	places := min(in.Decimals, out.Decimals)
	return append(s,
		KeyValue{Title: titlePrice, Value: b.price(*out, *in, *out.Amount, *in.Amount, places)},
		KeyValue{Title: titlePrice, Value: b.price(*in, *out, *in.Amount, *out.Amount, places)},
	)
}

func (b *builder) approveSection(v *txrecord.Value, spender string) Section {
	if v == nil || spender == "" {
		return nil
	}

	return append(Section{b.approvedAmount(*v)}, b.addressItems(titleSpender, spender)...)
}

// approvedAmount renders an allowance. Unlimited allowances carry no amount.
func (b *builder) approvedAmount(v txrecord.Value) Amount {
	a := b.amount(titleApprove, AmountApproved, v, nil)
	if v.MaxValue {
		a.Unlimited = true
		a.Coin.Amount = nil
		a.Fiat = nil
	}
	return a
}

func (b *builder) contractHeader(method, contract string) Section {
	if contract == "" {
		return nil
	}

	title := method
	if title == "" {
		title = titleContractCall
	}
	return Section{Header{Title: title, Subtitle: DisplayAddress(b.blockchain, contract), Blockchain: b.blockchain}}
}

func (b *builder) addMemo(memo string) {
	if memo != "" {
		b.misc = append(b.misc, KeyValue{Title: titleMemo, Value: memo})
	}
}

func (b *builder) bitcoinMisc(tx *txrecord.BitcoinRecord) {
	if tx.ConflictingHash != "" {
		b.misc = append(b.misc, DoubleSpend{
			TransactionHash: normalizeTxHash(tx.TransactionHash),
			ConflictingHash: normalizeTxHash(tx.ConflictingHash),
		})
	}

	if tx.ShowRawTransaction {
		b.misc = append(b.misc, RawTransaction{})
	}

	if ls := tx.LockState(b.c.LastBlockInfo.TimestampPtr()); ls != nil {
		b.misc = append(b.misc, LockState{Locked: ls.Locked, Date: ls.Date})
	}
}

func (b *builder) feeItem(fee txrecord.Value, title string) KeyValue {
	text := unknownValue
	if fee.Amount != nil {
		text = fmt.Sprintf("%s %s", fee.Amount.Abs().String(), fee.CoinCode)
		if r := b.rate(fee); r != nil {
			text += fmt.Sprintf(" | %s %s", fee.Amount.Mul(r.Value).Abs().String(), r.Currency)
		}
	}
	return KeyValue{Title: title, Value: text}
}

func feeTitle(status txrecord.Status) string {
	if status.Kind == txrecord.StatusPending {
		return titleEstimatedFee
	}
	return titleFee
}

func formatDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05 MST")
}
