package carrot

// CarrotMinTxOutputs and CarrotMaxTxOutputs bound the size of a finalized
// output set (§6, §4.7).
const (
	CarrotMinTxOutputs = 2
	CarrotMaxTxOutputs = 16
)

// Domain strings, preserved byte-for-byte per §6. Every hash_scalar/hash32
// call in this package passes one of these as its label.
const (
	domainProveSpendKey      = "Carrot prove-spend key"
	domainViewBalanceSecret  = "Carrot view-balance secret"
	domainGenerateImageKey   = "Carrot generate-image key"
	domainIncomingViewKey    = "Carrot incoming view key"
	domainGenerateAddrSecret = "Carrot generate-address secret"
	domainSubaddrM           = "Carrot subaddr m"
	domainSubaddrD           = "Carrot subaddr d"
	domainDe                 = "d_e"
	domainSCtxSr             = "s_ctx_sr"
	domainKa                 = "k_a"
	domainKoG                = "k_o^g"
	domainKoT                = "k_o^t"
	domainEncAmount          = "enc_a"
	domainEncPaymentID       = "enc_pid"
	domainViewTag            = "vt"
	domainEncAnchor          = "enc_anchor"
	domainAnchorSpecial      = "anchor_sp"
	domainZKP                = "ZKP"
)
