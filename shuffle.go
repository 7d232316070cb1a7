package ephtile

// Deinterleave reinterprets the first nb*size bytes of p as an nb x size
// row-major byte matrix and rewrites them in place as the transposed
// size x nb matrix. Producers shuffle row tables this way before
// compression to group same-significance bytes together; applying the
// transform with swapped dimensions restores the natural layout, making
// the operation its own inverse across a producer/consumer pair.
//
// p must hold at least nb*size bytes.
func Deinterleave(p []byte, nb, size int) {
	if nb <= 1 || size <= 1 {
		return // transpose of a vector is a no-op
	}

	buf := make([]byte, nb*size)
	copy(buf, p)
	for j := 0; j < size; j++ {
		for i := 0; i < nb; i++ {
			p[j*nb+i] = buf[i*size+j]
		}
	}
}
