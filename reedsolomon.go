/*
 * Reed-Solomon error-correction generation over GF(256) (spec §4.3).
 *
 * The generator-polynomial representation here (coefficients stored in
 * GF(256) exponent/log form, consumed against precomputed log/antilog
 * tables) is grounded in AshokShau-qrcode/reedsolomon.go's GF(256) table
 * technique — the teacher (grkuntzmd/qrcodegen) instead multiplies in byte
 * form via repeated Russian-peasant multiplication, which does not match
 * spec §4.3's explicit "generator coefficients in GF(256) exponent form"
 * requirement. The surrounding structure (package-level init-time tables,
 * panic on invariant violation) follows the teacher's package.go idiom.
 */

package qrencode

// GF(256) with primitive polynomial 0x11D, as used throughout ISO/IEC 18004.
const gfPrimitive = 0x11D

var (
	gfExp [256]byte // gfExp[i] = generator^i, i in [0, 255).
	gfLog [256]int  // gfLog[generator^i] = i, for nonzero x.

	// rsBufferSize bounds the working buffer used by computeECCodewords: the
	// largest data-word count of any single RS block across all versions and
	// levels (spec §4.3).
	rsBufferSize = 123

	// generatorLog[k] holds the degree-k generator polynomial's k
	// coefficients (excluding the implicit leading 1 term) in exponent form,
	// indexed by EC word count k (spec §3 "the Reed-Solomon generator-
	// polynomial coefficients indexed by EC word count").
	generatorLog = make(map[int][]int)
)

func initGFTables() {
	val := 1
	for i := 0; i < 255; i++ {
		gfExp[i] = byte(val)
		gfLog[val] = i
		val <<= 1
		if val >= 256 {
			val ^= gfPrimitive
		}
	}
}

func gfMultiply(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return gfExp[(gfLog[int(x)]+gfLog[int(y)])%255]
}

// initGeneratorPolynomials precomputes, for every distinct EC-codeword count
// used by any (version, level), the generator polynomial in exponent form.
func initGeneratorPolynomials() {
	seen := make(map[int]bool)
	for e := Level(0); e <= LevelH; e++ {
		for v := 1; v <= 40; v++ {
			k := eccCodewordsPerBlock[e][v]
			if seen[k] {
				continue
			}
			seen[k] = true
			generatorLog[k] = computeGeneratorLog(k)
		}
	}
}

// computeGeneratorPolyBytes computes the degree-k generator polynomial's k
// trailing coefficients (the leading x^k coefficient, always 1, is omitted)
// in byte form: the product (x - g^0)(x - g^1)...(x - g^(k-1)) over GF(256),
// where g = 0x02 is a generator element of the field.
func computeGeneratorPolyBytes(k int) []byte {
	if k < 1 || k > 255 {
		panic("generator degree out of range")
	}

	coeffs := make([]byte, k)
	coeffs[k-1] = 1 // x^0 term of the running product.

	root := byte(1)
	for i := 0; i < k; i++ {
		for j := 0; j < len(coeffs); j++ {
			coeffs[j] = gfMultiply(coeffs[j], root)
			if j+1 < len(coeffs) {
				coeffs[j] ^= coeffs[j+1]
			}
		}
		root = gfMultiply(root, 0x02)
	}
	return coeffs
}

// computeGeneratorLog converts the byte-form generator coefficients to
// exponent form for storage in generatorLog.
func computeGeneratorLog(k int) []int {
	bytes := computeGeneratorPolyBytes(k)
	logs := make([]int, k)
	for i, b := range bytes {
		if b == 0 {
			panic("generator coefficient unexpectedly zero")
		}
		logs[i] = gfLog[int(b)]
	}
	return logs
}

// computeECCodewords returns the ecWords Reed-Solomon error-correction
// codewords for one block's data bytes, per spec §4.3's shift-register
// algorithm.
func computeECCodewords(data []byte, ecWords int) []byte {
	gen, ok := generatorLog[ecWords]
	if !ok || len(gen) != ecWords {
		panic("no generator polynomial for this EC word count")
	}

	var buf [123]byte
	if len(data) > rsBufferSize {
		panic("data exceeds Reed-Solomon working buffer")
	}
	copy(buf[:], data)

	for step := 0; step < len(data); step++ {
		lead := buf[0]
		copy(buf[:rsBufferSize-1], buf[1:rsBufferSize])
		buf[rsBufferSize-1] = 0

		if lead != 0 {
			e := gfLog[int(lead)]
			for m := 0; m < ecWords; m++ {
				buf[m] ^= gfExp[(gen[m]+e)%255]
			}
		}
	}

	return append([]byte(nil), buf[:ecWords]...)
}
