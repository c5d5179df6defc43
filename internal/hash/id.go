package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a token string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 over parts, each terminated by a NUL byte so that
// ("ab", "c") and ("a", "bc") hash differently.
func Sum(parts ...string) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.WriteString(p)
		_, _ = d.Write([]byte{0})
	}

	return d.Sum64()
}
