package secp256r1

import (
	"github.com/holiman/uint256"
)

// ecmultTable is the per-call precomputed table for the two-scalar
// multiplication u1*G + u2*P. Entry i, written as i = (a << 2) | b with
// a, b in 0..3, holds a*G + b*P. The table is rebuilt for every operation:
// 11 additions and 2 doublings are cheap, and sharing the table across calls
// would couple otherwise independent operations.
type ecmultTable [16]GroupElementJacobian

// build fills the table for the point p. When p is the generator itself the
// mixed entries with a == b (indices 5, 10 and 15) add a point to itself and
// come out as the identity, but mixed indices are only reachable when
// u1 != 0, and the generator-only path always runs with u1 = 0.
func (t *ecmultTable) build(p *GroupElementAffine) {
	t[0].setInfinity()
	t[1].setGE(p)
	t[4].setGE(&generator)

	t[2].double(&t[1])
	t[8].double(&t[4])

	t[3].addVar(&t[1], &t[2])

	t[5].addVar(&t[1], &t[4])
	t[6].addVar(&t[2], &t[4])
	t[7].addVar(&t[3], &t[4])

	t[9].addVar(&t[1], &t[8])
	t[10].addVar(&t[2], &t[8])
	t[11].addVar(&t[3], &t[8])

	t[12].addVar(&t[4], &t[8])

	t[13].addVar(&t[1], &t[12])
	t[14].addVar(&t[2], &t[12])
	t[15].addVar(&t[3], &t[12])
}

// ecmultShamir computes u1*G + u2*P into r, where P is the point the table
// was built for. Both scalars are consumed two bits at a time from the most
// significant end (Strauss-Shamir): each of the 128 iterations doubles the
// accumulator twice and then adds the table entry selected by the current
// window of both scalars, so the loop costs one addition per window instead
// of two.
func ecmultShamir(r *GroupElementAffine, t *ecmultTable, u1, u2 *Scalar) {
	var acc GroupElementJacobian
	var k1, k2 uint256.Int

	acc.setInfinity()
	k1.Set(&u1.d)
	k2.Set(&u2.d)

	for i := 0; i < 128; i++ {
		if !acc.isInfinity() {
			acc.double(&acc)
			acc.double(&acc)
		}
		idx := (k1[3]>>62)<<2 | k2[3]>>62
		k1.Lsh(&k1, 2)
		k2.Lsh(&k2, 2)
		if idx != 0 {
			acc.addVar(&acc, &t[idx])
		}
	}
	r.setGEJ(&acc)
}

// ecmultGen computes d*G into r, reusing the table machinery with the
// generator in the P slot and a zero G-side scalar.
func ecmultGen(r *GroupElementAffine, d *Scalar) {
	var t ecmultTable
	var zero Scalar

	t.build(&generator)
	ecmultShamir(r, &t, &zero, d)
}
