package dmath

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := LogSink{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}
	rt := &fakeRuntime{name: "ball", time: 1.5, phase: PhaseEvent}

	sink.Log(rt, CategoryDivideByZero, "divide", "v/h", "num = 1, den = 0")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log record %q: %v", buf.String(), err)
	}
	want := map[string]any{
		"level":    "WARN",
		"msg":      "domain violation",
		"category": CategoryDivideByZero,
		"name":     "divide",
		"message":  "v/h",
		"value":    "num = 1, den = 0",
		"runtime":  "ball",
		"time":     1.5,
		"phase":    "event",
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("record[%q] = %v, want %v", k, rec[k], v)
		}
	}
}

func TestLogSinkFunctionContext(t *testing.T) {
	var buf bytes.Buffer
	sink := LogSink{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	sink.Log(nil, CategorySqrtDomain, "f", "sqrt(x)", "x = -1")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log record %q: %v", buf.String(), err)
	}
	if _, ok := rec["runtime"]; ok {
		t.Errorf("function context record has a runtime attribute: %v", rec)
	}
}

func TestLogSinkRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
	LogSink{Logger: logger}.Log(nil, CategorySqrtDomain, "f", "sqrt(x)", "x = -1")
	if buf.Len() != 0 {
		t.Errorf("record written below the handler level: %s", buf.String())
	}
}
