package decode

import "testing"

func BenchmarkDecode(b *testing.B) {
	dec, err := New()
	if err != nil {
		b.Fatal(err)
	}

	for _, bm := range []struct {
		name  string
		token string
	}{
		{"Standard", steelToken},
		{"Sentinel", worldstoneToken},
	} {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := dec.Decode(bm.token); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMeasure(b *testing.B) {
	dec, err := New()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, _, err := dec.Measure(worldstoneToken); err != nil {
			b.Fatal(err)
		}
	}
}
