// altmap.go implements the ALTMAP region layout: buffers are stored as
// 8 contiguous byte-planes (one per byte position of a 64-bit element)
// instead of a flat array of little-endian words, which is the layout
// the reference library's SIMD table-lookup kernels need so a single
// vector load gathers the same byte position from many elements at
// once.
//
// This port has no real vector kernel (see simd_detect.go), so rather
// than hand-roll a shuffle-table simulation that still has to agree
// byte-for-byte with the reference layout without a way to check it,
// ALTMAP support here is a layout adapter: convert the altmap buffer to
// the ordinary linear layout, run the already-correct linear kernel,
// convert back. The external contract - buffers laid out as 8
// byte-planes, ExtractWord reading them correctly - is what §4.7/§4.9
// actually specify; how the multiply loop gets there internally is not
// observable from outside the package.
package gf64

// bytesToAltmap reshapes n little-endian 64-bit words into 8 contiguous
// byte-planes: plane p holds byte p of every word, in word order.
func bytesToAltmap(linear []byte) []byte {
	n := len(linear) / 8
	out := make([]byte, len(linear))
	for w := 0; w < n; w++ {
		word := linear[w*8 : w*8+8]
		for plane := 0; plane < 8; plane++ {
			out[plane*n+w] = word[plane]
		}
	}
	return out
}

// altmapToBytes is bytesToAltmap's inverse.
func altmapToBytes(alt []byte, nWords int) []byte {
	out := make([]byte, nWords*8)
	for w := 0; w < nWords; w++ {
		for plane := 0; plane < 8; plane++ {
			out[w*8+plane] = alt[plane*nWords+w]
		}
	}
	return out
}

// extractWordAltmap reads the logical element at index out of an
// altmap-laid-out buffer of nWords elements.
func extractWordAltmap(buf []byte, nWords, index int) uint64 {
	var b [8]byte
	for plane := 0; plane < 8; plane++ {
		b[plane] = buf[plane*nWords+index]
	}
	return decodeWord(b[:])
}

// extractWordSplitAltmap is the extract_word variant bound to
// SPLIT_TABLE(4,64) | ALTMAP fields: the whole buffer is one altmap
// block, so nWords is derived from its length.
func extractWordSplitAltmap(buf []byte, index int) uint64 {
	return extractWordAltmap(buf, len(buf)/8, index)
}

// split4AltmapRegion runs the ordinary split-4x64 lazy region kernel
// against the linear un-shuffled view of an altmap-laid-out buffer,
// then reshuffles the result back, so callers seeing altmap-formatted
// memory get altmap-formatted results.
func split4AltmapRegion(p uint64, ld *splitLazyScratch, src, dst []byte, val uint64, xorFlag bool) {
	n := len(src) / 8
	linearSrc := altmapToBytes(src, n)
	var linearDst []byte
	if xorFlag {
		linearDst = altmapToBytes(dst, n)
	} else {
		linearDst = make([]byte, len(linearSrc))
	}
	splitLazyRegion(p, ld, linearSrc, linearDst, val, xorFlag)
	copy(dst, bytesToAltmap(linearDst))
}
