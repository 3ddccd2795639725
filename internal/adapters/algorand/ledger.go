// Package algorand implements the external asset ledger capability against an
// Algorand node: minting ticket assets, transferring single ticket units from
// the service account, and querying holdings and payments.
package algorand

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/client/v2/common/models"
	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"algosphere/internal/domain"
)

const (
	// ticketUnitName and ticketMetadataURL are fixed asset parameters for
	// every ticket asset minted by the registry.
	ticketUnitName    = "TKT"
	ticketMetadataURL = "https://campus-tix.algo"

	// Flat fees covering the ledger cost of mint and transfer transactions.
	mintFlatFee     = 15000
	transferFlatFee = 2000

	confirmationRounds = 10
)

// Ledger is a domain.AssetLedger backed by an algod node and a funded service
// account that holds and administers all ticket assets.
type Ledger struct {
	client  *algod.Client
	account crypto.Account
	logger  *slog.Logger
}

// New connects to the algod node at address and derives the service account
// from the given mnemonic phrase.
func New(address, token, serviceMnemonic string, logger *slog.Logger) (*Ledger, error) {
	client, err := algod.MakeClient(address, token)
	if err != nil {
		return nil, fmt.Errorf("make algod client: %w", err)
	}
	sk, err := mnemonic.ToPrivateKey(serviceMnemonic)
	if err != nil {
		return nil, fmt.Errorf("derive service key: %w", err)
	}
	account, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		return nil, fmt.Errorf("derive service account: %w", err)
	}
	return &Ledger{client: client, account: account, logger: logger}, nil
}

// ServiceAddress returns the address holding and administering ticket assets.
func (l *Ledger) ServiceAddress() string {
	return l.account.Address.String()
}

// MintTicketAsset creates a ticket asset with the given supply, zero decimals
// (tickets are indivisible), and every administrative authority pointed at the
// service account.
func (l *Ledger) MintTicketAsset(ctx context.Context, eventName string, total uint64) (uint64, error) {
	sp, err := l.suggestedParams(ctx, mintFlatFee)
	if err != nil {
		return 0, err
	}
	addr := l.account.Address.String()
	txn, err := transaction.MakeAssetCreateTxn(
		addr, nil, sp,
		total, 0, false,
		addr, addr, addr, addr,
		ticketUnitName, eventName, ticketMetadataURL, "",
	)
	if err != nil {
		return 0, fmt.Errorf("build asset create txn: %w", err)
	}
	resp, err := l.submit(ctx, txn)
	if err != nil {
		return 0, fmt.Errorf("mint ticket asset: %w", err)
	}
	l.logger.InfoContext(ctx, "ticket asset minted",
		"asset_id", resp.AssetIndex, "event_name", eventName, "total", total)
	return resp.AssetIndex, nil
}

// TransferTicket moves exactly one unit of the asset from the service account
// to the recipient. The ledger rejects the transfer if the recipient has not
// opted in to the asset.
func (l *Ledger) TransferTicket(ctx context.Context, assetID uint64, recipient string) error {
	sp, err := l.suggestedParams(ctx, transferFlatFee)
	if err != nil {
		return err
	}
	txn, err := transaction.MakeAssetTransferTxn(
		l.account.Address.String(), recipient, 1, nil, sp, "", assetID,
	)
	if err != nil {
		return fmt.Errorf("build asset transfer txn: %w", err)
	}
	if _, err := l.submit(ctx, txn); err != nil {
		return fmt.Errorf("transfer ticket: %w", err)
	}
	l.logger.InfoContext(ctx, "ticket transferred", "asset_id", assetID, "recipient", recipient)
	return nil
}

// AssetBalance returns the address's holding of the asset. A missing holding
// slot (no opt-in) reports exists=false rather than an error.
func (l *Ledger) AssetBalance(ctx context.Context, address string, assetID uint64) (uint64, bool, error) {
	info, err := l.client.AccountAssetInformation(address, assetID).Do(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("account asset information: %w", err)
	}
	if info.AssetHolding == (models.AssetHolding{}) {
		return 0, false, nil
	}
	return info.AssetHolding.Amount, true, nil
}

// GetPayment looks up a payment transaction by id.
func (l *Ledger) GetPayment(ctx context.Context, txID string) (*domain.Payment, error) {
	resp, _, err := l.client.PendingTransactionInformation(txID).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup payment %s: %w", txID, err)
	}
	txn := resp.Transaction.Txn
	if txn.Type != types.PaymentTx {
		return nil, fmt.Errorf("transaction %s is not a payment", txID)
	}
	return &domain.Payment{
		TxID:           txID,
		Sender:         txn.Sender.String(),
		Receiver:       txn.PaymentTxnFields.Receiver.String(),
		Amount:         uint64(txn.PaymentTxnFields.Amount),
		ConfirmedRound: resp.ConfirmedRound,
	}, nil
}

func (l *Ledger) suggestedParams(ctx context.Context, flatFee uint64) (types.SuggestedParams, error) {
	sp, err := l.client.SuggestedParams().Do(ctx)
	if err != nil {
		return types.SuggestedParams{}, fmt.Errorf("suggested params: %w", err)
	}
	sp.FlatFee = true
	sp.Fee = types.MicroAlgos(flatFee)
	return sp, nil
}

func (l *Ledger) submit(ctx context.Context, txn types.Transaction) (models.PendingTransactionInfoResponse, error) {
	txID, stx, err := crypto.SignTransaction(l.account.PrivateKey, txn)
	if err != nil {
		return models.PendingTransactionInfoResponse{}, fmt.Errorf("sign txn: %w", err)
	}
	if _, err := l.client.SendRawTransaction(stx).Do(ctx); err != nil {
		return models.PendingTransactionInfoResponse{}, fmt.Errorf("send txn: %w", err)
	}
	resp, err := transaction.WaitForConfirmation(l.client, txID, confirmationRounds, ctx)
	if err != nil {
		return models.PendingTransactionInfoResponse{}, fmt.Errorf("wait for confirmation of %s: %w", txID, err)
	}
	return resp, nil
}
