// Package state shares the loaded roster between the reloader and the UI.
//
// The reloader goroutine calls Store.Update after every load attempt; the
// UI reads Store.Snapshot on its refresh tick. A failed load keeps the
// previous records and only records the error, so the table never empties
// because a file was briefly unreadable mid-write:
//
//	store.Update(recs, "patients.yaml", nil)  // replace records, Generation++
//	store.Update(nil, "", err)                // keep records, ConsecutiveFailures++
//
// Snapshots are copies. Callers may modify the returned records freely.
//
// Generation starts at zero and increases on each successful load. The UI
// compares it with the generation it last rendered and only rebuilds its
// session when it moved, which keeps the user's query, sort and page
// across unrelated ticks.
//
// The zero Store is ready to use.
package state
