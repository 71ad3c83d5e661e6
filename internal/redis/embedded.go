package redis

import (
	"github.com/alicebob/miniredis/v2"
)

// MemoryURL selects an in-process server whose data lives only as long
// as the process
const MemoryURL = "memory://"

// NewEmbedded starts an in-process Redis server and connects to it. The
// returned func stops both.
func NewEmbedded() (Client, func(), error) {
	mr, err := miniredis.Run()
	if err != nil {
		return nil, nil, err
	}

	client, err := NewClient(mr.Addr(), nil)
	if err != nil {
		mr.Close()
		return nil, nil, err
	}

	return client, func() {
		_ = client.Close()
		mr.Close()
	}, nil
}

// Open connects to rawURL, or starts an embedded server for MemoryURL
func Open(rawURL string) (Client, func(), error) {
	if rawURL == MemoryURL {
		return NewEmbedded()
	}

	client, err := NewClientFromURL(rawURL)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}
