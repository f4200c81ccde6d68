package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SimParams holds open-ended tuning knobs for perception and tasking: the
// kind of value an operator edits in a checked-in JSON file rather than
// passes on a command line. Grounded on
// coreengine/config/execution_config.go's JSON-tagged struct with a
// DefaultSimParams constructor. No binary in this module reads SimParams:
// the ticket table capacity, report interval and maximum report size in
// effect are constants in internal/state, and cmd/agent builds its
// GridPerceiver with fixed arguments.
type SimParams struct {
	// PerceptionScanResolution is the GridPerceiver scan resolution: grid
	// cells per axis, so scanResolution^3 candidates per Perceive call.
	PerceptionScanResolution uint32 `json:"perception_scan_resolution"`
	// PerceptionNoiseLevel is the detection-probability noise factor
	// GridPerceiver applies; 0 is noiseless, 1 is maximally noisy.
	PerceptionNoiseLevel float64 `json:"perception_noise_level"`
	// TicketTableCapacity is a ticket-table bound value; the orchestrator's
	// ticket table uses its own fixed capacity and does not read it.
	TicketTableCapacity int `json:"ticket_table_capacity"`
	// ReportIntervalMs is a recommended agent report cadence value;
	// RegisterResponse carries the constant RegisterAgent sets, not this.
	ReportIntervalMs uint32 `json:"report_interval_ms"`
	// MaxReportBytes is a maximum report payload size value; it is not
	// enforced on incoming reports.
	MaxReportBytes uint32 `json:"max_report_bytes"`
}

// DefaultSimParams returns the module's built-in tuning defaults.
func DefaultSimParams() *SimParams {
	return &SimParams{
		PerceptionScanResolution: 64,
		PerceptionNoiseLevel:     0.05,
		TicketTableCapacity:      1024,
		ReportIntervalMs:         500,
		MaxReportBytes:           1 << 20,
	}
}

// LoadSimParams reads and decodes SimParams from path, falling back to
// DefaultSimParams when path is empty. A malformed or unreadable file is
// always an error: unlike the process-wiring config, there is no sensible
// per-field fallback for a corrupt tuning file.
func LoadSimParams(path string) (*SimParams, error) {
	if path == "" {
		return DefaultSimParams(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read sim params: %w", err)
	}

	params := DefaultSimParams()
	if err := json.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("config: decode sim params: %w", err)
	}
	return params, nil
}
