package dashboard

import (
	"Steelcheck/internal/calc/analysis"
	"Steelcheck/internal/calc/batch"
	"Steelcheck/internal/calc/capacity"
	"Steelcheck/internal/calc/deflection"
	"Steelcheck/internal/calc/design"
	"Steelcheck/internal/calc/factors"
	"Steelcheck/internal/calc/loads"
	"Steelcheck/internal/calc/material"
	"Steelcheck/internal/calc/report"
	"Steelcheck/internal/calc/safety"
	"Steelcheck/internal/metrics"
	"Steelcheck/internal/validate"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const MaxUploadSize = 10 << 20 // 10MB

type calculator func(raw validate.Raw, d validate.Defaults) (any, error)

// calculators are keyed by calculation_type.
var calculators = map[string]calculator{
	"factored_load": func(raw validate.Raw, _ validate.Defaults) (any, error) {
		in, err := validate.LoadInputs(raw)
		if err != nil {
			return nil, err
		}
		return loads.Calculate(in)
	},
	"safety_factor": func(raw validate.Raw, _ validate.Defaults) (any, error) {
		actual, permissible, err := validate.SafetyInputs(raw)
		if err != nil {
			return nil, err
		}
		return safety.CheckSafetyFactor(actual, permissible)
	},
	"utilization": func(raw validate.Raw, _ validate.Defaults) (any, error) {
		demand, capacity, err := validate.UtilizationInputs(raw)
		if err != nil {
			return nil, err
		}
		return safety.CheckUtilization(demand, capacity)
	},
	"moment_capacity": func(raw validate.Raw, d validate.Defaults) (any, error) {
		in, err := validate.MomentInputs(raw, d)
		if err != nil {
			return nil, err
		}
		return capacity.Moment(in)
	},
	"shear_capacity": func(raw validate.Raw, d validate.Defaults) (any, error) {
		in, err := validate.ShearInputs(raw, d)
		if err != nil {
			return nil, err
		}
		return capacity.Shear(in)
	},
	"deflection": func(raw validate.Raw, d validate.Defaults) (any, error) {
		in, err := validate.DeflectionInputs(raw, d)
		if err != nil {
			return nil, err
		}
		return deflection.Check(in)
	},
	"section_design": func(raw validate.Raw, d validate.Defaults) (any, error) {
		in, err := validate.DesignInputs(raw, d)
		if err != nil {
			return nil, err
		}
		return design.RequiredModulus(in)
	},
	"material_properties": func(raw validate.Raw, _ validate.Defaults) (any, error) {
		grade, err := validate.Grade(raw)
		if err != nil {
			return nil, err
		}
		return material.Lookup(grade)
	},
}

// CalculationTypes lists the accepted calculation_type values.
func CalculationTypes() []string {
	out := make([]string, 0, len(calculators))
	for k := range calculators {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type Handler struct {
	Defaults validate.Defaults
	Log      *zap.Logger
}

func (h *Handler) run(w http.ResponseWriter, name string, raw validate.Raw) (any, bool) {
	calc, ok := calculators[name]
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error: fmt.Sprintf("Unknown calculation type: %s. Must be one of: %s", name, strings.Join(CalculationTypes(), ", ")),
			Field: "calculation_type",
		})
		return nil, false
	}
	res, err := calc(raw, h.Defaults)
	if err != nil {
		metrics.RecordFailure(name, err)
		h.writeError(w, err)
		return nil, false
	}
	return res, true
}

// Calculate serves the dashboard form: calculation_type picks the calculator.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	raw, err := readRaw(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request payload"})
		return
	}
	name := raw.Text("calculation_type")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Please select a calculation type", Field: "calculation_type"})
		return
	}
	res, ok := h.run(w, name, raw)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"calculation_type": name,
		"result":           res,
	})
}

// Tool is the JSON API form of Calculate with the type in the path.
func (h *Handler) Tool(w http.ResponseWriter, r *http.Request) {
	raw, err := readRaw(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request payload"})
		return
	}
	res, ok := h.run(w, mux.Vars(r)["tool"], raw)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) CompleteAnalysis(w http.ResponseWriter, r *http.Request) {
	raw, err := readRaw(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request payload"})
		return
	}
	rep, err := h.analyze(raw)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "result": rep})
}

func (h *Handler) analyze(raw validate.Raw) (analysis.Report, error) {
	in, err := validate.AnalysisInputs(raw, h.Defaults)
	if err != nil {
		metrics.RecordFailure("complete_analysis", err)
		return analysis.Report{}, err
	}
	rep, err := analysis.Complete(in)
	if err != nil {
		metrics.RecordFailure("complete_analysis", err)
		return analysis.Report{}, err
	}
	return rep, nil
}

// ReportPDF runs a complete analysis and returns it as a PDF attachment.
func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	raw, err := readRaw(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request payload"})
		return
	}
	rep, err := h.analyze(raw)
	if err != nil {
		h.writeError(w, err)
		return
	}
	meta := report.Meta{
		Project: raw.Text("project"),
		Author:  raw.Text("author"),
		Title:   raw.Text("title"),
		Notes:   raw.Text("notes"),
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := report.Write(w, meta, rep); err != nil {
		h.Log.Error("report generation failed", zap.Error(err))
		http.Error(w, "Report generation error", http.StatusInternalServerError)
	}
}

type batchRequest struct {
	Items []validate.Raw `json:"items"`
}

// BatchLoads accepts either an xlsx upload in field "file" or a JSON body
// {"items": [...]}.
func (h *Handler) BatchLoads(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	var (
		res batch.Result
		err error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
			http.Error(w, "File too big", http.StatusBadRequest)
			return
		}
		file, _, ferr := r.FormFile("file")
		if ferr != nil {
			http.Error(w, "File required", http.StatusBadRequest)
			return
		}
		defer file.Close()
		res, err = batch.ReadXLSX(file)
	} else {
		var req batchRequest
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if derr := dec.Decode(&req); derr != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request payload"})
			return
		}
		res, err = batch.FromRaw(req.Items)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) BatchTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"loads.xlsx\"")
	if err := batch.Template(w); err != nil {
		h.Log.Error("template generation failed", zap.Error(err))
		http.Error(w, "Template generation error", http.StatusInternalServerError)
	}
}

func (h *Handler) SteelGrades(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "steel_grades": material.All()})
}

type combinationInfo struct {
	Name        loads.Combination `json:"name"`
	Description string            `json:"description"`
}

func (h *Handler) LoadCombinations(w http.ResponseWriter, r *http.Request) {
	out := make([]combinationInfo, 0, len(loads.Combinations))
	for _, c := range loads.Combinations {
		out = append(out, combinationInfo{Name: c, Description: c.Description()})
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "load_combinations": out})
}

func (h *Handler) DeflectionLimits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"deflection_limits": deflection.Limits(),
		"default_ratio":     h.Defaults.Normalized().LimitRatio,
	})
}

func (h *Handler) SafetyFactors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "safety_factors": factors.Defaults()})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
