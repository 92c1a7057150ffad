/*
Package dstescrow implements the destination chain half of a hash time locked
cross chain swap.

A resolver deposits a fixed token amount into an escrow instance together with
an immutable description of the order: the hashlock committing to a secret,
the maker and taker addresses and four timelock thresholds. The taker can
withdraw the deposit by revealing the secret inside the withdrawal window.
Once the public withdrawal threshold passes anyone holding the secret can
release the deposit to the taker. After the cancellation threshold the taker
can only return the deposit to the maker.

Every escrow instance lives at an address derived from its immutables, so the
address is known before the escrow is funded and every instance owns a
disjoint part of the store.

	withdrawal      public_withdrawal      dest_cancellation
	    |  taker withdraws  |  anyone withdraws   |  taker cancels
	----+-------------------+--------------------+------------------->

The escrow is released exactly once. Any further release attempt fails with
ErrClosed. A rescue operation lets the taker recover coins stuck at the
escrow address once the rescue delay has passed since the deployment.
*/
package dstescrow
