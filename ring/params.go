// Package ring implements the convolution rings R_q = Z/qZ[X]/(X^N-1)
// and R_3 = Z/3Z[X]/(X^N-1) used by the NTRU KEM, along with the
// polynomial inverter used to build keys.
package ring

// Fixed parameter set (spec §3). N is prime, q is a power of two.
const (
	N = 101
	Q = 4096
	D = 67

	LogQ      = 12 // log2(Q)
	Pack3Size = (N + 4) / 5
	PackQSize = (N*LogQ + 7) / 8
)

func init() {
	if 1<<LogQ != Q {
		panic("ring: Q must equal 2^LogQ")
	}
}
