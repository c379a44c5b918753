// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/lodestone/lodestone/cmd/lodestone"

func main() {
	cmd.Execute()
}
