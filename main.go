/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package main

import (
	"github.com/jhuix-go/ipconv/ipconv"
	"github.com/jhuix-go/ipconv/pkg/app"
)

func init() {
	app.Version = Version
	if len(GoVersion) > 0 {
		app.GoVersion = GoVersion
	}
	if len(BuildTime) > 0 {
		app.BuildTime = BuildTime
	}
	if len(CommitHash) > 0 {
		app.CommitHash = CommitHash
	}
}

func main() {
	app.Start(ipconv.SelfName, app.ConfigTypeToml, ipconv.NewService())
}
