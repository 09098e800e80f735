package khash

import "math/big"

// bigMulMod returns (a*b) mod m without overflowing int64.
func bigMulMod(a, b, m int64) int64 {
	var ba, bb, bm big.Int
	ba.SetInt64(a)
	bb.SetInt64(b)
	bm.SetInt64(m)
	ba.Mul(&ba, &bb)
	ba.Mod(&ba, &bm)

	return ba.Int64()
}
