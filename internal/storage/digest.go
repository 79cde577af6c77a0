package storage

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

type PageDigest struct {
	Index int
	Sum   [blake2b.Size256]byte
}

func (d PageDigest) Hex() string {
	return hex.EncodeToString(d.Sum[:])
}

// Digests hashes every materialized page in index order.
func (pager *Pager) Digests() []PageDigest {
	var out []PageDigest
	for i := range pager.slots {
		s := &pager.slots[i]
		if s.page == nil {
			continue
		}
		s.acquireShared(i)
		out = append(out, PageDigest{Index: i, Sum: blake2b.Sum256(s.page.Data)})
		s.readers--
	}
	return out
}
