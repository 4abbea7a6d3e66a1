// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides a fake tallying service and shared fixtures.

	f := testutil.NewFakeTally(t, testutil.DefaultCandidates()...)
	client := tally.NewClient(testutil.GetTestConfig(f.BaseURL()))

	f.SetCountResponse(http.StatusConflict, `{"status": "duplicate vote"}`)
	// ... submit ...
	ballots := f.Ballots() // every decoded count_ballot request

The server is closed automatically through t.Cleanup.
*/
package testutil
