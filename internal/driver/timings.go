package driver

import (
	"encoding/json"
	"fmt"

	"angle/internal/diag"
	"angle/internal/observ"
	"angle/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// appendTimingDiagnostic кладёт отчёт таймера в Bag как OBS6001.
// Заметка содержит JSON с фазами; лимит Bag для неё расширяется.
func appendTimingDiagnostic(bag *diag.Bag, kind, path string, report observ.Report) {
	if bag == nil {
		return
	}
	payload := timingPayload{Kind: kind, Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", kind, report.TotalMS)
	if path != "" {
		msg += " for " + path
	}
	entry := diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.ObsTimings,
		Message:  msg,
		Primary:  source.Span{},
		Notes:    []diag.Note{{Span: source.Span{}, Msg: string(data)}},
	}
	if bag.Add(entry) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(entry)
	bag.Merge(overflow)
}
