package reporter

import "math"

// ProgressState tracks chunk progress for a single file
type ProgressState struct {
	TotalChunks    int
	UploadedChunks int
}

// NewProgressState creates the state for a file whose uploader reports total chunks.
// An unknown total (0) counts as one chunk remaining.
func NewProgressState(total int) *ProgressState {
	return &ProgressState{TotalChunks: max(total, 1)}
}

// Advance records the uploader's counters after a chunk-upload call.
// Neither the uploaded count nor the total ever shrinks.
func (s *ProgressState) Advance(uploaded, reportedTotal int) {
	s.UploadedChunks = max(s.UploadedChunks, uploaded)
	s.TotalChunks = max(s.TotalChunks, reportedTotal)
}

// Finalize marks every chunk uploaded once the uploader reports completion.
// The uploader's own chunk count becomes the total when it reports one.
func (s *ProgressState) Finalize(reportedTotal int) {
	if reportedTotal > 0 {
		s.TotalChunks = reportedTotal
	}
	s.UploadedChunks = s.TotalChunks
}

// Percent returns the rounded completion percentage, clamped to 100
func (s *ProgressState) Percent() int {
	return Percent(s.UploadedChunks, s.TotalChunks)
}

// Percent computes min(100, round(uploaded/total*100)); a non-positive total counts as 1
func Percent(uploaded, total int) int {
	if total <= 0 {
		total = 1
	}
	if uploaded <= 0 {
		return 0
	}
	percent := int(math.Round(float64(uploaded) / float64(total) * 100))
	return min(percent, 100)
}
