/*
Package app contains the glue that turns extensions into a running ledger.

A Router dispatches a transaction to the handler registered for its message
path. ChainDecorators stacks decorators (signatures, funds, logging,
recovery) in front of the router. BaseApp executes every transaction as a
single block on top of a CommitKVStore: the handlers run inside a cache
wrap that is written and committed only when the transaction succeeds, so a
failed transaction never leaves partial state behind.
*/
package app
