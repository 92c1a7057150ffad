/*
Package htlc defines the interfaces shared by every extension of the escrow
chain: storage, transactions, handlers, addresses and block context.

Extensions live under x/. Each one registers its handlers with a Registry and
reads the block facts (height, time, chain id, logger) from the context that the
app package prepares for every transaction.
*/
package htlc
