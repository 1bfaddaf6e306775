// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the on-disk directory of poll documents.

# Layout

Each poll lives in its own file, keyed by id:

	data/
	  poll_1.xml
	  poll_5.xml
	  data.lock

ListIDs recognizes only the poll_<id>.xml pattern; anything else in
the directory is silently skipped.

# Locking

A single named file lock (data.lock) serializes all raw byte reads
and writes store-wide. The lock is held only around the file I/O, not
around encoding or validation, to keep hold times short. It guards
against interleaved partial writes; it does not make a
read-modify-write sequence atomic. That is the voting service's job
via its per-poll critical sections.

# Validation Asymmetry

Write validates the encoded document against the schema before
touching the disk and refuses to persist anything that fails. Read
validates too, but only logs a warning and continues with a lenient
decode, so a corrupt-but-parseable historical document stays readable.
*/
package store
