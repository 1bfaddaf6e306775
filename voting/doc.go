// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting is the transactional core of the service.

# Vote Algorithm

CastVote enforces every voting invariant in order:

 1. Load the poll (ErrPollNotFound if absent).
 2. Reject when the caller owns the poll (ErrOwnVote); polls without a
    recorded owner skip this check.
 3. Reject when the ledger already lists the caller (ErrAlreadyVoted).
 4. Reject an unknown option id (ErrOptionNotFound).
 5. Increment exactly that option's counter by one.
 6. Persist the poll, then record the vote in the ledger.

# Concurrency

The store's file lock only serializes raw byte I/O; it cannot make the
read-check-increment-write sequence atomic. The service therefore keeps
an in-memory mutex per poll id and holds it across the whole sequence,
ledger mutation included. Two concurrent votes on the same poll

	go svc.CastVote(5, 10, "bob")
	go svc.CastVote(5, 10, "carol")

serialize fully: no lost update, and a duplicate identity loses the
ledger race deterministically.

CreatePoll and DeletePoll take the same per-poll lock, so a create
cannot race a delete of the same id.
*/
package voting
