/*
Copyright © 2025 Lyric Atlas Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/IamFurina/Lyric-Atlas-API/pkg/cli"

func main() {
	cli.Execute()
}
