package corpus

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/runeword/decode"
	"github.com/arloliu/runeword/errs"
	"github.com/arloliu/runeword/estimate"
)

const goldenPath = "testdata/golden.yaml"

func loadGolden(t *testing.T) *File {
	t.Helper()

	f, err := Load(goldenPath)
	require.NoError(t, err)

	return f
}

func newDecoder(t *testing.T) *decode.Decoder {
	t.Helper()

	dec, err := decode.New()
	require.NoError(t, err)

	return dec
}

func TestLoad_Golden(t *testing.T) {
	f := loadGolden(t)

	require.Len(t, f.Vectors, 42)
	require.Equal(t, uint64(1152469), f.TotalCeiling)
	require.Zero(t, f.TableFingerprint)

	steel := f.Vectors[0]
	require.Equal(t, "Steel", steel.Name)
	require.Equal(t, uint32(1), steel.Item)
	require.Equal(t, uint8(3), steel.AttributeCount)
	require.Equal(t, []uint16{1, 2, 3, 0, 0, 0, 0, 0}, steel.AttributeTypes)
	require.Equal(t, []uint32{15, 3, 0, 0, 0, 0, 0, 0}, steel.AttributeValues)
}

func TestVerify_Golden(t *testing.T) {
	f := loadGolden(t)
	dec := newDecoder(t)

	r := Verify(dec, f)
	require.True(t, r.OK(), "failures: %v", r.Joined())
	require.NoError(t, r.Joined())
	require.Len(t, r.Outcomes, 42)
	require.Equal(t, uint64(895432), r.Total)
	require.LessOrEqual(t, r.Total, r.TotalCeiling)
	require.False(t, r.FingerprintMismatch)

	steel := r.Outcomes[0]
	require.Equal(t, "Steel", steel.Name)
	require.Equal(t, uint64(21309), steel.Cost)
	require.True(t, steel.Item.Equivalent(f.Vectors[0].Expected()))

	for _, o := range r.Outcomes {
		require.LessOrEqual(t, o.Cost, o.Ceiling, o.Name)
	}
}

func TestVerify_Mismatch(t *testing.T) {
	f := loadGolden(t)
	f.Vectors[0].AttributeValues[0] = 16

	r := Verify(newDecoder(t), f)
	require.False(t, r.OK())

	failed := r.Failed()
	require.Len(t, failed, 1)
	require.Equal(t, "Steel", failed[0].Name)
	require.ErrorIs(t, failed[0].Err, errs.ErrGoldenMismatch)
	require.Contains(t, failed[0].Err.Error(), "-want +got")
	require.ErrorIs(t, r.Joined(), errs.ErrGoldenMismatch)
}

func TestVerify_VectorCeiling(t *testing.T) {
	f := loadGolden(t)
	f.Vectors[0].Ceiling = 21308

	r := Verify(newDecoder(t), f)
	require.False(t, r.OK())

	failed := r.Failed()
	require.Len(t, failed, 1)
	require.ErrorIs(t, failed[0].Err, errs.ErrCostCeilingExceeded)
	require.Equal(t, uint64(21309), failed[0].Cost)
}

func TestVerify_TotalCeiling(t *testing.T) {
	f := loadGolden(t)
	f.TotalCeiling = 895431

	r := Verify(newDecoder(t), f)
	require.Empty(t, r.Failed())
	require.False(t, r.OK())
	require.ErrorIs(t, r.Err, errs.ErrCostCeilingExceeded)
	require.ErrorIs(t, r.Joined(), errs.ErrCostCeilingExceeded)
}

func TestVerify_DecodeFailure(t *testing.T) {
	f := loadGolden(t)
	f.Vectors[1].Token = "1004" + f.Vectors[1].Token[4:]

	r := Verify(newDecoder(t), f)

	failed := r.Failed()
	require.Len(t, failed, 1)
	require.Equal(t, "Fury", failed[0].Name)
	require.ErrorIs(t, failed[0].Err, errs.ErrMalformedHeader)
	require.NotZero(t, failed[0].Cost)
}

func TestVerify_FingerprintMismatch(t *testing.T) {
	f := loadGolden(t)
	dec := newDecoder(t)

	f.TableFingerprint = dec.Table().Fingerprint()
	require.False(t, Verify(dec, f).FingerprintMismatch)

	f.TableFingerprint = dec.Table().Fingerprint() + 1
	r := Verify(dec, f)
	require.True(t, r.FingerprintMismatch)
	require.True(t, r.OK())
}

func TestFile_IDCollision(t *testing.T) {
	f := loadGolden(t)
	require.False(t, f.HasIDCollision())
	require.False(t, Verify(newDecoder(t), f).IDCollision)

	tracker, err := f.track(func(string) uint64 { return 7 })
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())

	f.Vectors[1].Token = f.Vectors[0].Token
	_, err = f.track(func(string) uint64 { return 7 })
	require.ErrorIs(t, err, errs.ErrDuplicateVector)
	require.False(t, f.HasIDCollision())
}

func TestRecord(t *testing.T) {
	f := loadGolden(t)
	dec := newDecoder(t)

	recorded, err := Record(dec, f, 10)
	require.NoError(t, err)
	require.Equal(t, dec.Table().Fingerprint(), recorded.TableFingerprint)
	require.Len(t, recorded.Vectors, len(f.Vectors))
	require.Equal(t, uint64(23440), recorded.Vectors[0].Ceiling)
	require.Equal(t, withMargin(895432, 10), recorded.TotalCeiling)

	r := Verify(dec, recorded)
	require.True(t, r.OK(), "failures: %v", r.Joined())
	require.False(t, r.FingerprintMismatch)

	exact, err := Record(dec, f, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(21309), exact.Vectors[0].Ceiling)
	require.Equal(t, uint64(895432), exact.TotalCeiling)
}

func TestRecord_IgnoresOldCeilings(t *testing.T) {
	f := loadGolden(t)
	f.Vectors[0].Ceiling = 1

	recorded, err := Record(newDecoder(t), f, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(21309), recorded.Vectors[0].Ceiling)
}

func TestRecord_Errors(t *testing.T) {
	dec := newDecoder(t)

	_, err := Record(dec, loadGolden(t), -1)
	require.Error(t, err)

	f := loadGolden(t)
	f.Vectors[0].Item = 99
	_, err = Record(dec, f, 0)
	require.ErrorIs(t, err, errs.ErrGoldenMismatch)
	require.Contains(t, err.Error(), "Steel")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	f := loadGolden(t)
	dir := t.TempDir()

	for _, name := range []string{"golden.yaml", "golden.yaml.zst", "golden.yaml.s2", "golden.yaml.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)

			stats, err := Save(path, f)
			require.NoError(t, err)
			require.Positive(t, stats.OriginalSize)

			got, err := Load(path)
			require.NoError(t, err)
			if diff := cmp.Diff(f, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSave_Invalid(t *testing.T) {
	_, err := Save(filepath.Join(t.TempDir(), "empty.yaml"), &File{})
	require.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "UnknownField",
			yaml: `vectors:
  - name: A
    token: "1"
    colour: red
    attribute_types: [0, 0, 0, 0, 0, 0, 0, 0]
    attribute_values: [0, 0, 0, 0, 0, 0, 0, 0]
`,
		},
		{
			name: "ShortArrays",
			yaml: `vectors:
  - name: A
    token: "1"
    attribute_types: [0, 0, 0]
    attribute_values: [0, 0, 0, 0, 0, 0, 0, 0]
`,
		},
		{
			name: "CountTooLarge",
			yaml: `vectors:
  - name: A
    token: "1"
    attribute_count: 9
    attribute_types: [0, 0, 0, 0, 0, 0, 0, 0]
    attribute_values: [0, 0, 0, 0, 0, 0, 0, 0]
`,
		},
		{
			name: "NoVectors",
			yaml: "vectors: []\n",
		},
		{
			name: "DuplicateName",
			yaml: `vectors:
  - name: A
    token: "1"
    attribute_types: [0, 0, 0, 0, 0, 0, 0, 0]
    attribute_values: [0, 0, 0, 0, 0, 0, 0, 0]
  - name: A
    token: "2"
    attribute_types: [0, 0, 0, 0, 0, 0, 0, 0]
    attribute_values: [0, 0, 0, 0, 0, 0, 0, 0]
`,
			wantErr: errs.ErrDuplicateVector,
		},
		{
			name: "DuplicateToken",
			yaml: `vectors:
  - name: A
    token: "1"
    attribute_types: [0, 0, 0, 0, 0, 0, 0, 0]
    attribute_values: [0, 0, 0, 0, 0, 0, 0, 0]
  - name: B
    token: "1"
    attribute_types: [0, 0, 0, 0, 0, 0, 0, 0]
    attribute_values: [0, 0, 0, 0, 0, 0, 0, 0]
`,
			wantErr: errs.ErrDuplicateVector,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestVectorFromItem(t *testing.T) {
	f := loadGolden(t)
	dec := newDecoder(t)

	want := f.Vectors[0]
	item, err := dec.Decode(want.Token)
	require.NoError(t, err)

	got := VectorFromItem(want.Name, item, want.Ceiling)
	require.Equal(t, want, got)
	require.Equal(t, item, got.Expected())
}

func TestSamples(t *testing.T) {
	f := loadGolden(t)
	f.Vectors[1].Token = "bad"

	samples := Samples(newDecoder(t), f)
	require.Len(t, samples, 41)
	require.Equal(t, estimate.Sample{AttributeCount: 3, Digits: 78, Cost: 21309}, samples[0])

	result, err := estimate.Analyze(Samples(newDecoder(t), loadGolden(t)))
	require.NoError(t, err)
	require.Greater(t, result.BestFit.RSquared, 0.9)
}

func TestTokens(t *testing.T) {
	data := []byte("# header\n1003000010100\n\n  1003000020100  \n# trailing\n1003")
	require.Equal(t, []string{"1003000010100", "1003000020100", "1003"}, Tokens(data))
	require.Empty(t, Tokens([]byte("\n# only comments\n")))
}
