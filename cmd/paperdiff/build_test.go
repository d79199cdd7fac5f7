package main

import "testing"

func TestBuildCommandRendersErrorsOnce(t *testing.T) {
	// Fatal build errors are rendered by the reporter; cobra must not
	// repeat them or dump usage text after a runtime failure.
	if !buildCmd.SilenceErrors {
		t.Error("build command must set SilenceErrors")
	}
	if !buildCmd.SilenceUsage {
		t.Error("build command must set SilenceUsage")
	}
}
