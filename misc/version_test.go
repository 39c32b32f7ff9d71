package misc

import "testing"

func TestIdentity(t *testing.T) {
	if got := GetAppName(); got != "ssmlc" {
		t.Errorf("GetAppName() = %q, want %q", got, "ssmlc")
	}
	if GetVersion() == "" {
		t.Error("GetVersion() returned empty string")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() returned empty string")
	}
}
