// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger records which identities have voted on each poll.

One JSON file per poll (poll_<id>_voters.json) holds the set of
identity strings that have cast a vote. The file is created lazily on
the first vote and removed when the poll is deleted, so a recreated
poll id always starts with an empty ledger.

The ledger is a plain data structure: it does not itself prevent a
double append. Check-then-record is made safe by the voting service,
which runs both inside the same per-poll critical section as the poll
mutation.
*/
package ledger
