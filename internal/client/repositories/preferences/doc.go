// Package preferences stores small client-local key/value settings in SQLite:
// the persisted session, the last used username and the single-use
// navigation hint.
//
// Repositories work on top of dbx.DBTX, so the same code runs against a
// *sql.DB or inside a transaction started with dbx.WithTx.
package preferences
