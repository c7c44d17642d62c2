package simd

// Float is the set of element types the kernels operate on.
type Float interface {
	~float32 | ~float64
}

// VecAdd performs dst += src.
func VecAdd[F Float](dst, src []F) {
	// Unrolled loop for better pipelining
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] += src[i]
		dst[i+1] += src[i+1]
		dst[i+2] += src[i+2]
		dst[i+3] += src[i+3]
	}
	// Handle remainder
	for ; i < len(dst); i++ {
		dst[i] += src[i]
	}
}

// VecSub performs dst -= src.
func VecSub[F Float](dst, src []F) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] -= src[i]
		dst[i+1] -= src[i+1]
		dst[i+2] -= src[i+2]
		dst[i+3] -= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] -= src[i]
	}
}

// VecRSub performs dst = src - dst.
func VecRSub[F Float](dst, src []F) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] = src[i] - dst[i]
		dst[i+1] = src[i+1] - dst[i+1]
		dst[i+2] = src[i+2] - dst[i+2]
		dst[i+3] = src[i+3] - dst[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = src[i] - dst[i]
	}
}

// VecScale performs dst *= scale.
func VecScale[F Float](dst []F, scale F) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] *= scale
		dst[i+1] *= scale
		dst[i+2] *= scale
		dst[i+3] *= scale
	}
	for ; i < len(dst); i++ {
		dst[i] *= scale
	}
}

// VecDivScalar performs dst /= div. Kept separate from VecScale so that
// dividing by a scalar rounds exactly like element-wise division.
func VecDivScalar[F Float](dst []F, div F) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] /= div
		dst[i+1] /= div
		dst[i+2] /= div
		dst[i+3] /= div
	}
	for ; i < len(dst); i++ {
		dst[i] /= div
	}
}

// VecNeg negates every element of dst.
func VecNeg[F Float](dst []F) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// VecAddScaled performs dst += src * scale.
func VecAddScaled[F Float](dst, src []F, scale F) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] += src[i] * scale
		dst[i+1] += src[i+1] * scale
		dst[i+2] += src[i+2] * scale
		dst[i+3] += src[i+3] * scale
	}
	for ; i < len(dst); i++ {
		dst[i] += src[i] * scale
	}
}

// VecAxpby performs dst = a*src + b*dst.
func VecAxpby[F Float](dst, src []F, a, b F) {
	i := 0
	for ; i <= len(dst)-4; i += 4 {
		dst[i] = a*src[i] + b*dst[i]
		dst[i+1] = a*src[i+1] + b*dst[i+1]
		dst[i+2] = a*src[i+2] + b*dst[i+2]
		dst[i+3] = a*src[i+3] + b*dst[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a*src[i] + b*dst[i]
	}
}

// Fill sets every element of dst to v.
func Fill[F Float](dst []F, v F) {
	for i := range dst {
		dst[i] = v
	}
}

// AllClose reports whether |a[i]-b[i]| <= atol for every i.
// Both slices must have the same length.
func AllClose[F Float](a, b []F, atol F) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		// NaN never compares as close
		if !(d <= atol) {
			return false
		}
	}
	return true
}
