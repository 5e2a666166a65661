package ledger_test

import (
	"os"
	"testing"
	"time"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/golang/mock/gomock"

	"github.com/ardhichain/ardhi-registry/internal/ledger"
	"github.com/ardhichain/ardhi-registry/internal/logger"
	"github.com/ardhichain/ardhi-registry/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testAppID uint64 = 123456

type fixture struct {
	algod   *mocks.MockAlgod
	indexer *mocks.MockIndexer
	signer  *mocks.MockSigner
	clock   *mocks.MockClock
	client  *ledger.Client

	admin      crypto.Account
	user       crypto.Account
	appAddress string
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		algod:      mocks.NewMockAlgod(ctrl),
		indexer:    mocks.NewMockIndexer(ctrl),
		signer:     mocks.NewMockSigner(ctrl),
		clock:      mocks.NewMockClock(ctrl),
		admin:      crypto.GenerateAccount(),
		user:       crypto.GenerateAccount(),
		appAddress: ledger.ApplicationAddress(testAppID),
	}

	f.client = ledger.NewClient(ledger.Config{
		AppID:          testAppID,
		ExplorerURL:    "https://explorer.test",
		VerifyAttempts: 3,
		VerifyDelay:    2 * time.Second,
		AssetInfoDelay: time.Millisecond,
	}, f.algod, f.indexer, f.signer, f.clock)
	t.Cleanup(f.client.Close)

	return f
}

func suggestedParams() types.SuggestedParams {
	return types.SuggestedParams{
		Fee:             0,
		GenesisID:       "testnet-v1.0",
		GenesisHash:     make([]byte, 32),
		FirstRoundValid: 1000,
		LastRoundValid:  2000,
		MinFee:          1000,
	}
}
