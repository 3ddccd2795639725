package domain

import "context"

// Payment is a confirmed payment transaction observed on the ledger.
type Payment struct {
	TxID     string
	Sender   string
	Receiver string
	Amount   uint64
	// ConfirmedRound is zero while the transaction is still pending.
	ConfirmedRound uint64
}

// AssetLedger is the external token capability: minting ticket assets,
// moving single ticket units out of the service account's holding, and
// querying balances. The ledger, not the registry, is the sole authority
// over per-buyer ticket balances.
type AssetLedger interface {
	// MintTicketAsset creates a fungible ticket asset with the given total
	// supply, zero decimals, and all administrative authorities assigned to
	// the service account. Returns the new asset id.
	MintTicketAsset(ctx context.Context, eventName string, total uint64) (uint64, error)

	// TransferTicket moves exactly one unit of the asset from the service
	// account to the recipient. The recipient must already hold an opt-in
	// slot for the asset; if not, the ledger rejects the transfer.
	TransferTicket(ctx context.Context, assetID uint64, recipient string) error

	// AssetBalance returns the recipient's holding of the asset and whether
	// a holding slot exists at all.
	AssetBalance(ctx context.Context, address string, assetID uint64) (uint64, bool, error)

	// GetPayment looks up a payment transaction by id.
	GetPayment(ctx context.Context, txID string) (*Payment, error)
}
