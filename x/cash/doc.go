/*
Package cash defines a simple implementation of wallets holding coins of many
denominations.

There is no logic in the coins, except that the balance of any coin may not
go below zero. Thus, this implementation is referred to as cash. Simple and
safe.

The FundsDecorator moves the funds attached to a transaction into the account
named by its message, before the message handler is called. Handlers read the
attached funds with the Funds function and release coins with a Controller.
*/
package cash
