// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package directory loads the candidate list from the registry.

	loader := directory.NewLoader(tallyClient)
	candidates, err := loader.Load(ctx)

The first Load issues a single GET; every later call returns the memoized
result without another request. A failed load leaves the list empty and
reports a *tally.NetworkError. The loader never panics and never notifies
the voter; the caller decides what to show.

Duplicate candidate ids in the registry response keep their first
occurrence.
*/
package directory
