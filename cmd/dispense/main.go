// Package main sends ALGOs from a dispenser account to a target account on a
// local test network and reports the confirmation status.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/algorand/go-algorand-sdk/v2/transaction"
	"github.com/algorand/go-algorand-sdk/v2/types"

	"algosphere/config"
)

const (
	microAlgosPerAlgo = 1_000_000

	// Confirmation polling is best-effort: after maxPollRounds the
	// transaction is reported as pending, not failed.
	maxPollRounds = 10
	pollDelay     = time.Second
)

func main() {
	logger := config.NewLogger()

	var (
		algodAddress = flag.String("algod", envOr("ALGOD_ADDRESS", "http://localhost:4001"), "algod endpoint")
		algodToken   = flag.String("token", envOr("ALGOD_TOKEN", strings.Repeat("a", 64)), "algod API token")
		receiver     = flag.String("to", os.Getenv("DISPENSE_RECEIVER"), "receiver address")
		amountAlgo   = flag.Uint64("algo", 1000, "amount in ALGO")
	)
	flag.Parse()

	dispenserMnemonic := os.Getenv("DISPENSER_MNEMONIC")
	if dispenserMnemonic == "" {
		logger.Error("DISPENSER_MNEMONIC is required")
		os.Exit(1)
	}
	if *receiver == "" {
		logger.Error("receiver address is required (-to or DISPENSE_RECEIVER)")
		os.Exit(1)
	}
	if _, err := types.DecodeAddress(*receiver); err != nil {
		logger.Error("invalid receiver address", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := algod.MakeClient(*algodAddress, *algodToken)
	if err != nil {
		logger.Error("make algod client", "err", err)
		os.Exit(1)
	}

	sk, err := mnemonic.ToPrivateKey(dispenserMnemonic)
	if err != nil {
		logger.Error("derive dispenser key", "err", err)
		os.Exit(1)
	}
	account, err := crypto.AccountFromPrivateKey(sk)
	if err != nil {
		logger.Error("derive dispenser account", "err", err)
		os.Exit(1)
	}

	sp, err := client.SuggestedParams().Do(ctx)
	if err != nil {
		logger.Error("suggested params", "err", err)
		os.Exit(1)
	}

	amount := *amountAlgo * microAlgosPerAlgo
	txn, err := transaction.MakePaymentTxn(account.Address.String(), *receiver, amount, nil, "", sp)
	if err != nil {
		logger.Error("build payment txn", "err", err)
		os.Exit(1)
	}

	txID, stx, err := crypto.SignTransaction(sk, txn)
	if err != nil {
		logger.Error("sign payment txn", "err", err)
		os.Exit(1)
	}
	if _, err := client.SendRawTransaction(stx).Do(ctx); err != nil {
		logger.Error("submit payment txn", "err", err)
		os.Exit(1)
	}

	logger.Info("payment submitted",
		"txid", txID, "from", account.Address.String(), "to", *receiver, "algo", *amountAlgo)

	for round := 0; round < maxPollRounds; round++ {
		pending, _, err := client.PendingTransactionInformation(txID).Do(ctx)
		if err == nil && pending.ConfirmedRound > 0 {
			logger.Info("payment confirmed", "txid", txID, "round", pending.ConfirmedRound)
			return
		}
		time.Sleep(pollDelay)
	}

	logger.Warn("payment still pending, check status later", "txid", txID)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
