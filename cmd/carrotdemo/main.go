// Command carrotdemo is a thin, wallet-less harness for the carrot address
// and enote core: it derives a key hierarchy from a random seed, builds a
// small two-output transaction, scans both outputs back with the owning
// view-balance device, and prints what it recovered. It persists nothing
// and talks to no network.
//
// Usage:
//
//	carrotdemo [flags]
//
// Flags:
//
//	--major      subaddress major index to pay (default: 0)
//	--minor      subaddress minor index to pay (default: 0)
//	--amount     payment amount in atomic units (default: 1000000)
//	--change     change amount in atomic units (default: 25000)
//	--log-format  text, json or color (default: json)
//	--version    print version and exit
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/t1amak/salvium/pkg/carrot"
	"github.com/t1amak/salvium/pkg/log"
	"github.com/t1amak/salvium/pkg/xcrypto"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}

	log.SetDefault(log.NewWithFormat(slog.LevelInfo, cfg.LogFormat))
	logger := log.Default().Module("carrotdemo")

	var seed [32]byte
	copy(seed[:], xcrypto.RandomBytes(32))

	secrets := carrot.DeriveAll(seed)
	defer secrets.Zeroize()

	// index (0,0) is the main address: scanning classifies any enote whose
	// recovered K_s^j equals the account spend key as non-subaddress (§4.6),
	// so it must be addressed via DestinationOf, not DestinationOfSubaddress,
	// or the sender and scanner would disagree about is_subaddress.
	var dest carrot.Destination
	if cfg.Major == 0 && cfg.Minor == 0 {
		dest = carrot.DestinationOf(carrot.MakeMainAddress(secrets))
	} else {
		sub := carrot.MakeSubaddress(secrets, cfg.Major, cfg.Minor)
		dest = carrot.DestinationOfSubaddress(sub.Ksj, sub.Kvj)
	}

	var firstKeyImage carrot.KeyImage
	copy(firstKeyImage[:], xcrypto.RandomBytes(32))

	var randomness carrot.JanusAnchor
	copy(randomness[:], xcrypto.RandomBytes(16))

	payment := carrot.NormalProposal{Destination: dest, Amount: cfg.Amount, Randomness: randomness}
	paymentEnote, pidEnc, err := carrot.GetOutputProposalNormalV1(payment.Destination, payment.Amount, payment.Randomness, firstKeyImage)
	if err != nil {
		logger.Error("failed to construct payment output", "error", err)
		return 1
	}

	balanceDevice := carrot.NewMemoryViewBalanceDevice(secrets)

	var changeDe xcrypto.PointX
	copy(changeDe[:], xcrypto.RandomBytes(32))
	change := carrot.SelfSendProposal{
		AddressSpendPubkey: secrets.Ks,
		Amount:             cfg.Change,
		EnoteType:          carrot.EnoteTypeChange,
		De:                 changeDe,
	}
	changeEnote, _, err := carrot.GetOutputProposalInternalV1(change, firstKeyImage, balanceDevice)
	if err != nil {
		logger.Error("failed to construct change output", "error", err)
		return 1
	}

	logger.Info("built output set",
		"subaddress_major", cfg.Major,
		"subaddress_minor", cfg.Minor,
		"payment_amount", cfg.Amount,
		"change_amount", cfg.Change,
	)

	paymentResult := carrot.TryScanCarrotEnoteExternal(paymentEnote, balanceDevice, secrets.Ks, pidEnc)
	changeResult := carrot.TryScanCarrotEnoteInternal(changeEnote, balanceDevice, carrot.EncryptedPaymentId{})

	printResult(logger, "payment", paymentEnote.Ko[:], paymentResult)
	printResult(logger, "change", changeEnote.Ko[:], changeResult)

	return 0
}

func printResult(logger *log.Logger, label string, onetimeAddress []byte, result carrot.ScanResult) {
	logger.Info("scanned enote",
		"output", label,
		"onetime_address", hex.EncodeToString(onetimeAddress),
		"outcome", result.Outcome.String(),
		"amount", result.Amount,
		"enote_type", result.EnoteType.String(),
		"payment_id", hex.EncodeToString(result.PaymentID[:]),
	)
}

type demoConfig struct {
	Major     uint32
	Minor     uint32
	Amount    uint64
	Change    uint64
	LogFormat string
}

// parseFlags parses CLI arguments into a demoConfig. Returns the config,
// whether the caller should exit immediately, and the exit code.
func parseFlags(args []string) (demoConfig, bool, int) {
	var cfg demoConfig

	fs := flag.NewFlagSet("carrotdemo", flag.ContinueOnError)
	fs.Func("major", "subaddress major index to pay (default 0)", func(s string) error {
		return scanUint32(s, &cfg.Major)
	})
	fs.Func("minor", "subaddress minor index to pay (default 0)", func(s string) error {
		return scanUint32(s, &cfg.Minor)
	})
	fs.Uint64Var(&cfg.Amount, "amount", 1_000_000, "payment amount in atomic units")
	fs.Uint64Var(&cfg.Change, "change", 25_000, "change amount in atomic units")
	fs.StringVar(&cfg.LogFormat, "log-format", "json", "log output format: text, json or color")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, true, 2
	}

	if *showVersion {
		fmt.Printf("carrotdemo %s (commit %s)\n", version, commit)
		return cfg, true, 0
	}

	return cfg, false, 0
}

func scanUint32(s string, out *uint32) error {
	var v uint32
	_, err := fmt.Sscanf(s, "%d", &v)
	if err != nil {
		return err
	}
	*out = v
	return nil
}
