package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

// TestParseLevel はログレベル文字列の変換を検証する。
func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.input); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

// TestSetup_EmitsJSON は出力がJSON形式であり、属性が含まれることを検証する。
func TestSetup_EmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, slog.LevelInfo)

	log.Info("session restored", slog.String("principal_id", "1"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "session restored" {
		t.Errorf("msg = %v, want session restored", record["msg"])
	}
	if record["principal_id"] != "1" {
		t.Errorf("principal_id = %v, want 1", record["principal_id"])
	}
	if record["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", record["level"])
	}
}

// TestSetup_RespectsLevel は閾値未満のレコードが出力されないことを検証する。
func TestSetup_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, slog.LevelWarn)

	log.Info("should be suppressed")
	if buf.Len() != 0 {
		t.Errorf("info record emitted below warn threshold: %q", buf.String())
	}

	log.Warn("should be emitted")
	if buf.Len() == 0 {
		t.Error("warn record was not emitted")
	}
}

// TestSetup_NilWriterDefaults はnil writerでもロガーが生成されることを検証する。
func TestSetup_NilWriterDefaults(t *testing.T) {
	log := Setup(nil, slog.LevelInfo)
	if log == nil {
		t.Fatal("expected non-nil logger")
	}
}
