package transport

import (
	"context"
	"fmt"
	"log"

	"arup/internal/config"
	uperrors "arup/internal/errors"
	"arup/pkg/types"

	"github.com/everFinance/goar"
	artypes "github.com/everFinance/goar/types"
	"github.com/everFinance/goar/utils"
)

// ArweaveClient implements Client on top of a goar wallet
type ArweaveClient struct {
	wallet *goar.Wallet
}

// NewArweaveClient creates a client that signs with the given JWK wallet
func NewArweaveClient(cfg *config.ArweaveConfig, wallet []byte) (*ArweaveClient, error) {
	w, err := goar.NewWallet(wallet, cfg.NodeURL())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", uperrors.ErrCredentialInvalid, err)
	}

	log.Printf("Using wallet %s on %s", w.Signer.Address, cfg.NodeURL())
	return &ArweaveClient{wallet: w}, nil
}

// NewArweaveClientFactory returns a ClientFactory bound to cfg
func NewArweaveClientFactory(cfg *config.ArweaveConfig) ClientFactory {
	return func(wallet []byte) (Client, error) {
		return NewArweaveClient(cfg, wallet)
	}
}

// CreateTransaction builds a format 2 data transaction with the node's current reward and anchor
func (a *ArweaveClient) CreateTransaction(ctx context.Context, payload []byte) (Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reward, err := a.wallet.Client.GetTransactionPrice(len(payload), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction price: %w", err)
	}

	anchor, err := a.wallet.Client.GetTransactionAnchor()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction anchor: %w", err)
	}

	tx := &artypes.Transaction{
		Format:   2,
		Target:   "",
		Quantity: "0",
		Data:     utils.Base64Encode(payload),
		DataSize: fmt.Sprintf("%d", len(payload)),
		Reward:   fmt.Sprintf("%d", reward),
		LastTx:   anchor,
		Owner:    a.wallet.Owner(),
	}

	return &arweaveTransaction{tx: tx}, nil
}

// Sign encodes the collected tags into the transaction and signs it
func (a *ArweaveClient) Sign(ctx context.Context, tx Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	atx, err := unwrap(tx)
	if err != nil {
		return err
	}

	atx.tx.Tags = utils.TagsEncode(atx.rawTags())
	if err := a.wallet.Signer.SignTx(atx.tx); err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	return nil
}

// Uploader creates a goar chunk uploader for a signed transaction
func (a *ArweaveClient) Uploader(ctx context.Context, tx Transaction) (ChunkUploader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	atx, err := unwrap(tx)
	if err != nil {
		return nil, err
	}
	if atx.tx.ID == "" {
		return nil, fmt.Errorf("transaction must be signed before upload")
	}

	uploader, err := goar.CreateUploader(a.wallet.Client, atx.tx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create uploader: %w", err)
	}
	return uploader, nil
}

// arweaveTransaction wraps a goar transaction together with its unencoded tags
type arweaveTransaction struct {
	tx   *artypes.Transaction
	tags []types.Tag
}

func (t *arweaveTransaction) ID() string {
	return t.tx.ID
}

func (t *arweaveTransaction) AddTag(name, value string) {
	t.tags = append(t.tags, types.Tag{Name: name, Value: value})
}

func (t *arweaveTransaction) rawTags() []artypes.Tag {
	raw := make([]artypes.Tag, 0, len(t.tags))
	for _, tag := range t.tags {
		raw = append(raw, artypes.Tag{Name: tag.Name, Value: tag.Value})
	}
	return raw
}

func unwrap(tx Transaction) (*arweaveTransaction, error) {
	atx, ok := tx.(*arweaveTransaction)
	if !ok {
		return nil, fmt.Errorf("transaction %T was not created by this client", tx)
	}
	return atx, nil
}
