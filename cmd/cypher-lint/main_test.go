package main

import (
	"strings"
	"testing"
)

func TestRunSuccessExitsZero(t *testing.T) {
	var out, errOut strings.Builder

	code := run(nil, strings.NewReader("RETURN 1;"), &out, &errOut)

	if code != exitSuccess {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, errOut.String())
	}
}

func TestRunNoDirectivesExitsOne(t *testing.T) {
	var out, errOut strings.Builder

	code := run(nil, strings.NewReader("   "), &out, &errOut)

	if code != exitNoResult {
		t.Fatalf("expected exit 1, got %d", code)
	}
}

func TestRunPrintsASTWhenRequested(t *testing.T) {
	var out, errOut strings.Builder

	code := run([]string{"--ast"}, strings.NewReader("RETURN 1;"), &out, &errOut)

	if code != exitSuccess {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, errOut.String())
	}

	if !strings.Contains(out.String(), "QUERY") {
		t.Errorf("expected --ast output to include the query node, got:\n%s", out.String())
	}
}

func TestRunReportsSyntaxErrorsOnStderr(t *testing.T) {
	var out, errOut strings.Builder

	// the first statement parses cleanly into a directive; the second
	// fails, so the overall parse still succeeds (>=1 directive) while
	// still reporting the second statement's diagnostic on stderr.
	code := run(nil, strings.NewReader("RETURN 1; RETURN 1 +;"), &out, &errOut)

	if code != exitSuccess {
		t.Fatalf("expected exit 0 (at least one directive still parsed), got %d", code)
	}

	if !strings.Contains(errOut.String(), "error at") {
		t.Errorf("expected a diagnostic on stderr, got:\n%s", errOut.String())
	}
}

func TestRunAllStatementsFailingExitsNoResult(t *testing.T) {
	var out, errOut strings.Builder

	code := run(nil, strings.NewReader("RETURN 1 +;"), &out, &errOut)

	if code != exitNoResult {
		t.Fatalf("expected exit 1 (no directive survived), got %d", code)
	}
}

func TestRunVersionExitsZero(t *testing.T) {
	var out, errOut strings.Builder

	code := run([]string{"--version"}, strings.NewReader(""), &out, &errOut)

	if code != exitSuccess {
		t.Fatalf("expected --version to exit 0, got %d", code)
	}

	if !strings.Contains(out.String(), "cypherast") {
		t.Errorf("expected version output to mention the library, got:\n%s", out.String())
	}
}

func TestRunHelpExitsZero(t *testing.T) {
	var out, errOut strings.Builder

	code := run([]string{"--help"}, strings.NewReader(""), &out, &errOut)

	if code != exitSuccess {
		t.Fatalf("expected --help to exit 0, got %d", code)
	}

	if !strings.Contains(out.String(), "cypher-lint") {
		t.Errorf("expected usage text to mention the tool name, got:\n%s", out.String())
	}
}
