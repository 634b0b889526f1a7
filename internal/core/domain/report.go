package domain

// Report is the accumulated result of one synchronization run.
type Report struct {
	TotalIcons     int
	ConvertedPNGs  int
	ConvertedWEBPs int
	RemovedPNGs    []string
	RemovedWEBPs   []string
	Failed         []string
	VectorLess     []string
	Outcomes       []Outcome
}

// Record appends o and updates the counters it affects.
func (r *Report) Record(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch {
	case o.Failed():
		r.Failed = append(r.Failed, o.Source)
	case o.Status == StatusConverted && o.Stage == StageIntermediate:
		r.ConvertedPNGs++
	case o.Status == StatusConverted && o.Stage == StageFinal:
		r.ConvertedWEBPs++
	}
}

// UpToDate reports whether the run neither converted nor removed anything.
func (r *Report) UpToDate() bool {
	return r.ConvertedPNGs == 0 && r.ConvertedWEBPs == 0 &&
		len(r.RemovedPNGs) == 0 && len(r.RemovedWEBPs) == 0
}
