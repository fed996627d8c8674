// Package paging implements the per-kind page loaders.
//
// A Pager decides for every request whether to read from the network or the
// local cache:
//
//   - online: fetch one remote page, apply the transform (favorite overlay for
//     characters), drop duplicate ids, persist, and return the page. The next
//     key is the remote cursor only when the source reports more data.
//   - offline: return the whole cache as a single page with no next key.
//
// Failures and panics become the Err of that one LoadResult; other requests
// are unaffected. Concurrent loads of the same key share one fetch.
//
// Sequence walks the pages of one generation. Invalidate starts a new
// generation: existing sequences stop with ErrInvalidated and subscribers
// receive a fresh Sequence.
package paging
