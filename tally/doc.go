// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally is the HTTP client for the tallying service.

# Endpoints

	GET  {base}/get_all_candidates → []models.Candidate
	POST {base}/count_ballot       ← models.CountBallotRequest

Create a client from config; it logs every request and stamps it with an
X-Request-ID:

	client := tally.NewClient(cfg)
	candidates, err := client.GetAllCandidates(ctx)
	msg, err := client.CountBallot(ctx, req, requestID)

# Errors

  - *NetworkError: unreachable service, non-success candidate response,
    or a body that does not parse
  - *SubmissionRejected: count_ballot answered with a non-success status;
    Status carries the server's {"status": "..."} message verbatim

Neither operation retries.
*/
package tally
