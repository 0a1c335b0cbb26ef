package transport

import "context"

// Client is the storage network capability the uploader depends on.
// A Transaction returned by CreateTransaction is single-use: it is tagged,
// signed and uploaded exactly once.
type Client interface {
	// CreateTransaction builds an unsigned data transaction for payload
	CreateTransaction(ctx context.Context, payload []byte) (Transaction, error)

	// Sign signs tx with the client's wallet
	Sign(ctx context.Context, tx Transaction) error

	// Uploader returns a chunk uploader for a signed transaction
	Uploader(ctx context.Context, tx Transaction) (ChunkUploader, error)
}

// Transaction is a data transaction under construction
type Transaction interface {
	// ID returns the transaction id, available once signed
	ID() string

	// AddTag attaches a metadata tag; tags must be added before signing
	AddTag(name, value string)
}

// ChunkUploader pushes a signed transaction to the network one chunk at a time
type ChunkUploader interface {
	// UploadChunk sends the next chunk
	UploadChunk() error

	// IsComplete reports whether every chunk has been accepted
	IsComplete() bool

	// TotalChunks returns the number of chunks, or 0 when not yet known
	TotalChunks() int

	// UploadedChunks returns the number of chunks accepted so far
	UploadedChunks() int
}

// ClientFactory opens a Client for the given wallet key material
type ClientFactory func(wallet []byte) (Client, error)
