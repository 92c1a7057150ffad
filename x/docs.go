/*
Package x contains helpers shared by the extensions.

Extensions implement the handlers and decorators that the application is
combined from. The sub-packages provide signature based authentication
(sigs), token balances (cash) and destination chain escrows (dstescrow).

An Authenticator tells a handler which conditions signed the current
transaction. Handlers never trust addresses carried by the message itself.
*/
package x
