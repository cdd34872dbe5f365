package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/use-agent/seoscan/config"
	"github.com/use-agent/seoscan/models"
)

type stubScanner struct {
	calls  int
	result *models.ScanResult
	err    error
}

func (s *stubScanner) Scan(_ context.Context, _ string) (*models.ScanResult, error) {
	s.calls++
	return s.result, s.err
}

func withScanner(t *testing.T, s scanner) {
	t.Helper()
	orig := newScanner
	newScanner = func(*config.Config) scanner { return s }
	t.Cleanup(func() { newScanner = orig })
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScanCmd_JSON(t *testing.T) {
	stub := &stubScanner{result: &models.ScanResult{Title: "Example Domain", Performance: 87, SEOScore: 100}}
	withScanner(t, stub)

	out, err := execute("scan", "https://example.com")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `"title": "Example Domain"`) || !strings.Contains(out, `"performance": 87`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestScanCmd_Markdown(t *testing.T) {
	withScanner(t, &stubScanner{result: &models.ScanResult{Title: "Example Domain", Performance: 40}})

	out, err := execute("scan", "--markdown", "https://example.com")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "# SEO Report") || !strings.Contains(out, "Needs significant improvement") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestScanCmd_InvalidURL(t *testing.T) {
	stub := &stubScanner{}
	withScanner(t, stub)

	_, err := execute("scan", "example.com")
	if err == nil || err.Error() != models.MsgURLInvalid {
		t.Errorf("err = %v, want %q", err, models.MsgURLInvalid)
	}
	if stub.calls != 0 {
		t.Error("scanner must not run for invalid input")
	}
}

func TestScanCmd_ScanError(t *testing.T) {
	withScanner(t, &stubScanner{err: models.NewProviderError(models.ErrCodeAuditQuota, models.MsgAuditQuota, "")})

	_, err := execute("scan", "https://example.com")
	if err == nil || err.Error() != models.MsgAuditQuota {
		t.Errorf("err = %v, want %q", err, models.MsgAuditQuota)
	}
}

func TestScanCmd_RequiresOneArg(t *testing.T) {
	if _, err := execute("scan"); err == nil {
		t.Error("expected an error without a url")
	}
}
