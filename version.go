/*
 * Copyright (c) 2024 jhuix. All rights reserved.
 * Use of this source code is governed by a license
 * that can be found in the LICENSE file.
 */

package main

// set by -ldflags "-X main.Version=... -X main.CommitHash=..."
var (
	Version    = "v1.0.0"
	GoVersion  string
	BuildTime  string
	CommitHash string
)
