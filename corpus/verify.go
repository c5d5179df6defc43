package corpus

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/arloliu/runeword/decode"
	"github.com/arloliu/runeword/errs"
	"github.com/arloliu/runeword/estimate"
)

// Outcome is the verification result of one vector.
type Outcome struct {
	Name    string
	Token   string
	Item    decode.Item
	Cost    uint64
	Ceiling uint64
	// Err is nil on success, or wraps ErrGoldenMismatch, ErrCostCeilingExceeded
	// or the decode error.
	Err error
}

// Report is the verification result of a golden file.
type Report struct {
	Outcomes     []Outcome
	Total        uint64
	TotalCeiling uint64
	// FingerprintMismatch is set when the file records a table fingerprint
	// different from the decoder's. Ceilings may not apply in that case.
	FingerprintMismatch bool
	// IDCollision is set when two distinct tokens of the file share a token id.
	IDCollision bool
	// Err wraps ErrCostCeilingExceeded when Total exceeds TotalCeiling.
	Err error
}

// Failed returns the outcomes with an error.
func (r *Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}

	return failed
}

// OK reports whether every vector passed and the cumulative ceiling held.
func (r *Report) OK() bool {
	return r.Err == nil && len(r.Failed()) == 0
}

// Joined joins every failure into one error, or returns nil if OK.
func (r *Report) Joined() error {
	errList := make([]error, 0, len(r.Outcomes)+1)
	for _, o := range r.Failed() {
		errList = append(errList, fmt.Errorf("%s: %w", o.Name, o.Err))
	}
	if r.Err != nil {
		errList = append(errList, r.Err)
	}

	return errors.Join(errList...)
}

// Verify decodes every vector of f with dec and checks the decoded record
// against the expected one and the metered cost against the ceilings.
//
// Verification never stops early: every vector gets an Outcome.
func Verify(dec *decode.Decoder, f *File) *Report {
	r := &Report{
		Outcomes:            make([]Outcome, 0, len(f.Vectors)),
		TotalCeiling:        f.TotalCeiling,
		FingerprintMismatch: f.TableFingerprint != 0 && f.TableFingerprint != dec.Table().Fingerprint(),
		IDCollision:         f.HasIDCollision(),
	}

	for _, v := range f.Vectors {
		o := verifyVector(dec, v)
		r.Total += o.Cost
		r.Outcomes = append(r.Outcomes, o)
	}

	if r.TotalCeiling > 0 && r.Total > r.TotalCeiling {
		r.Err = fmt.Errorf("%w: cumulative cost %d, ceiling %d", errs.ErrCostCeilingExceeded, r.Total, r.TotalCeiling)
	}

	return r
}

func verifyVector(dec *decode.Decoder, v Vector) Outcome {
	o := Outcome{Name: v.Name, Token: v.Token, Ceiling: v.Ceiling}

	got, report, err := dec.Measure(v.Token)
	o.Cost = report.Total
	if err != nil {
		o.Err = err
		return o
	}
	o.Item = got

	if diff := cmp.Diff(v.Expected(), got); diff != "" {
		o.Err = fmt.Errorf("%w (-want +got):\n%s", errs.ErrGoldenMismatch, diff)
		return o
	}
	if v.Ceiling > 0 && o.Cost > v.Ceiling {
		o.Err = fmt.Errorf("%w: cost %d, ceiling %d", errs.ErrCostCeilingExceeded, o.Cost, v.Ceiling)
	}

	return o
}

// Record re-measures every vector and returns a copy of f with fresh ceilings.
//
// Parameters:
//   - dec: Decoder to measure with
//   - f: Golden file whose expected records must still match
//   - marginPct: Headroom added to each measured cost, in percent
//
// Returns:
//   - *File: Copy of f with new ceilings and the decoder's table fingerprint
//   - error: The joined failures if any vector no longer decodes to its expected record
func Record(dec *decode.Decoder, f *File, marginPct float64) (*File, error) {
	if marginPct < 0 {
		return nil, fmt.Errorf("negative margin %.2f", marginPct)
	}

	out := &File{
		TableFingerprint: dec.Table().Fingerprint(),
		Vectors:          make([]Vector, 0, len(f.Vectors)),
	}

	var total uint64
	var errList []error
	for _, v := range f.Vectors {
		unbounded := v
		unbounded.Ceiling = 0
		o := verifyVector(dec, unbounded)
		if o.Err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", v.Name, o.Err))
			continue
		}
		total += o.Cost

		nv := v
		nv.Ceiling = withMargin(o.Cost, marginPct)
		out.Vectors = append(out.Vectors, nv)
	}
	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}
	out.TotalCeiling = withMargin(total, marginPct)

	return out, nil
}

func withMargin(cost uint64, marginPct float64) uint64 {
	return uint64(math.Ceil(float64(cost) * (1 + marginPct/100)))
}

// Samples measures every vector that decodes and returns the cost samples
// for estimate.Analyze. Vectors that fail to decode are skipped.
func Samples(dec *decode.Decoder, f *File) []estimate.Sample {
	samples := make([]estimate.Sample, 0, len(f.Vectors))
	for _, v := range f.Vectors {
		item, report, err := dec.Measure(v.Token)
		if err != nil {
			continue
		}
		samples = append(samples, estimate.Sample{
			AttributeCount: int(item.AttributeCount),
			Digits:         len(v.Token),
			Cost:           report.Total,
		})
	}

	return samples
}
