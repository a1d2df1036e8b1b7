// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

// NotAvailable stands in for build metadata that was not linked in.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit injected with -ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo keeps the linked values as given. Empty or "N/A" values
// read back as [NotAvailable].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

// HasVersion reports whether a real version was linked.
func (a AppBuildInfo) HasVersion() bool {
	return a.BuildVersion() != NotAvailable
}

// Print writes the startup banner lines.
func (a AppBuildInfo) Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", a.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", a.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", a.BuildCommit())
}
