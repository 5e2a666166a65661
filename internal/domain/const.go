package domain

const (
	// Default gateways for the supported pinning services
	DEFAULT_PINATA_API_URL          = "https://api.pinata.cloud"
	DEFAULT_PINATA_GATEWAY          = "https://gateway.pinata.cloud"
	DEFAULT_WEB3STORAGE_API_URL     = "https://api.web3.storage"
	DEFAULT_WEB3STORAGE_GATEWAY     = "https://w3s.link"
	DEFAULT_TESTNET_ALGOD_URL       = "https://testnet-api.algonode.cloud"
	DEFAULT_TESTNET_INDEXER_URL     = "https://testnet-idx.algonode.cloud"
	DEFAULT_TESTNET_EXPLORER_URL    = "https://testnet.explorer.perawallet.app"
	IPFS_SCHEME                     = "ipfs://"
	TITLE_UNIT_NAME                 = "ARDHI"
	CONTRACT_ADMIN_GLOBAL_STATE_KEY = "admin"
)
