package metrics

import "encoding/json"

// Averages is the averages block of an operation report.
type Averages struct {
	Latency      float64 `json:"latency"`
	LatencyUnits string  `json:"latency_units"`
}

// OperationReport is the wire form of OperationMetrics.
type OperationReport struct {
	InvocationsSuccess uint64   `json:"invocations_success"`
	InvocationsError   uint64   `json:"invocations_error"`
	InvocationsTotal   uint64   `json:"invocations_total"`
	Averages           Averages `json:"averages"`
}

// Report maps operation names to their reports. encoding/json writes map
// keys in sorted order, so the serialised form is deterministic.
type Report map[string]OperationReport

// Report builds the serialisable metrics structure from a snapshot.
func (a *Aggregator) Report() Report {
	snap := a.Snapshot()
	rep := make(Report, len(snap))
	for op, m := range snap {
		rep[string(op)] = OperationReport{
			InvocationsSuccess: m.InvocationsSuccess,
			InvocationsError:   m.InvocationsError,
			InvocationsTotal:   m.InvocationsTotal,
			Averages: Averages{
				Latency:      m.AverageLatency,
				LatencyUnits: LatencyUnits,
			},
		}
	}
	return rep
}

// JSON returns the report as JSON text.
func (r Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}
