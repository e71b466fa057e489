package carrot

import "fmt"

// ScanOutcome is the two-valued result of a scan attempt: a wrong view tag
// or an unrecoverable commitment is a negative result, not a Go error (§7).
type ScanOutcome int

const (
	// ScanMatched means the enote belongs to the scanning key and the
	// recovered fields are valid.
	ScanMatched ScanOutcome = iota
	// ScanMiss means no precondition of a programmer error was violated;
	// the enote simply does not belong to this key (wrong view tag, or no
	// enote-type candidate reproduced the commitment).
	ScanMiss
	// ScanJanusFail means the enote decrypted and matched the commitment,
	// but failed the Janus anchor check: the ephemeral pubkey doesn't derive
	// back to the one a non-adversarial sender would have used. Distinct
	// from ScanMiss so callers can log and investigate rather than silently
	// skip.
	ScanJanusFail
)

func (o ScanOutcome) String() string {
	switch o {
	case ScanMatched:
		return "matched"
	case ScanMiss:
		return "miss"
	case ScanJanusFail:
		return "janus_fail"
	default:
		return "unknown"
	}
}

// InvalidProposalReason enumerates the preconditions proposal validation and
// construction check before doing any cryptographic work.
type InvalidProposalReason int

const (
	ReasonZeroAnchor InvalidProposalReason = iota
	ReasonSubaddressInCoinbase
	ReasonIntegratedInCoinbase
	ReasonPaymentIDInCoinbase
	ReasonDuplicateRandomness
	ReasonTooFewOutputs
	ReasonTooManyOutputs
	ReasonNoSelfSend
	ReasonMultipleIntegrated
)

func (r InvalidProposalReason) String() string {
	switch r {
	case ReasonZeroAnchor:
		return "zero janus anchor"
	case ReasonSubaddressInCoinbase:
		return "subaddress destination in coinbase proposal"
	case ReasonIntegratedInCoinbase:
		return "integrated-address destination in coinbase proposal"
	case ReasonPaymentIDInCoinbase:
		return "nonzero payment id in coinbase proposal"
	case ReasonDuplicateRandomness:
		return "duplicate randomness across normal proposals"
	case ReasonTooFewOutputs:
		return "fewer than CarrotMinTxOutputs outputs"
	case ReasonTooManyOutputs:
		return "more than CarrotMaxTxOutputs outputs"
	case ReasonNoSelfSend:
		return "output set has no self-send"
	case ReasonMultipleIntegrated:
		return "more than one integrated-address proposal"
	default:
		return "unknown"
	}
}

// ErrInvalidProposal is returned by proposal validation and construction
// entry points. It indicates the caller violated a documented precondition,
// not that adversary-controlled input was encountered (that case is a
// ScanOutcome, not an error).
type ErrInvalidProposal struct {
	Reason InvalidProposalReason
}

func (e *ErrInvalidProposal) Error() string {
	return fmt.Sprintf("carrot: invalid proposal: %s", e.Reason)
}

func invalidProposal(reason InvalidProposalReason) error {
	return &ErrInvalidProposal{Reason: reason}
}

// ErrFatal signals an internal inconsistency in output-set finalization,
// such as being asked to finalize a set that already exceeds
// CarrotMaxTxOutputs. It always indicates a caller/programmer error.
type ErrFatal struct {
	Msg string
}

func (e *ErrFatal) Error() string {
	return fmt.Sprintf("carrot: fatal: %s", e.Msg)
}

func fatalf(format string, args ...any) error {
	return &ErrFatal{Msg: fmt.Sprintf(format, args...)}
}
